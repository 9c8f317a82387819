package image

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// TypeID ...
type TypeID uint8

const (
	TypeNone TypeID = iota
	TypeGIF
	TypeJPEG
	TypePNG
)

const (
	sigGIF = "GIF8"
	sigJPG = "\xff\xd8\xff"
	sigPNG = "\211PNG\r\n\032\n"
)

func (t TypeID) String() string {
	switch t {
	case TypeGIF:
		return "gif"
	case TypeJPEG:
		return "jpeg"
	case TypePNG:
		return "png"
	}
	return "unknown"
}

// Ext returns the canonical extension with leading dot
func (t TypeID) Ext() string {
	switch t {
	case TypeGIF:
		return ".gif"
	case TypeJPEG:
		return ".jpg"
	case TypePNG:
		return ".png"
	}
	return ""
}

// TypeByExt maps a file name or extension to the format it must be written in
func TypeByExt(name string) TypeID {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = "." + strings.ToLower(strings.TrimPrefix(name, "."))
	}
	switch ext {
	case ".jpg", ".jpeg":
		return TypeJPEG
	case ".png":
		return TypePNG
	case ".gif":
		return TypeGIF
	}
	return TypeNone
}

// IsSupportedExt reports whether name carries one of .jpg, .jpeg, .png
func IsSupportedExt(name string) bool {
	t := TypeByExt(name)
	return t == TypeJPEG || t == TypePNG
}

const headSize = 8

// A reader is an io.Reader that can also peek ahead.
type reader interface {
	io.Reader
	Peek(int) ([]byte, error)
}

// asReader converts an io.Reader to a reader.
func asReader(r io.Reader) reader {
	if rr, ok := r.(reader); ok {
		return rr
	}
	return bufio.NewReaderSize(r, headSize*2)
}

// GuessType sniffs the content signature, it consumes from r unless r can peek
func GuessType(r io.Reader) (TypeID, error) {
	head, err := asReader(r).Peek(headSize)
	if err != nil && err != io.EOF {
		return TypeNone, err
	}
	return guessHead(head), nil
}

func guessHead(head []byte) TypeID {
	switch {
	case bytes.HasPrefix(head, []byte(sigGIF)):
		return TypeGIF
	case bytes.HasPrefix(head, []byte(sigJPG)):
		return TypeJPEG
	case bytes.HasPrefix(head, []byte(sigPNG)):
		return TypePNG
	}
	return TypeNone
}
