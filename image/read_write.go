package image

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime"

	"github.com/liut/jpegquality"

	zlog "github.com/eugenmik/bulk-image-resizer/log"
)

const (
	MinJPEGQuality     = 1
	MaxJPEGQuality     = 95
	DefaultJPEGQuality = jpeg.DefaultQuality // 75
)

// WriteOption ...
type WriteOption struct {
	Format  TypeID
	Quality Quality
}

// Image a decoded picture with its attributes, metadata is not retained
type Image struct {
	m    image.Image
	Attr *Attr
	Type TypeID
}

// Image returns the decoded pixels
func (im *Image) Image() image.Image {
	return im.m
}

// Open decodes a JPEG or PNG from rs. Attr.Quality is left empty, Probe
// estimates it.
func Open(rs io.ReadSeeker) (*Image, error) {
	t, size, err := sniff(rs)
	if err != nil {
		return nil, err
	}

	m, _, err := image.Decode(rs)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", t, err)
	}
	b := m.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	im := &Image{m: m, Type: t, Attr: NewAttr(uint(b.Dx()), uint(b.Dy()), 0)}
	fillAttr(im.Attr, t, size)
	return im, nil
}

// Probe reads the attributes of rs without decoding pixels
func Probe(rs io.ReadSeeker) (*Attr, error) {
	t, size, err := sniff(rs)
	if err != nil {
		return nil, err
	}
	c, _, err := image.DecodeConfig(rs)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", t, err)
	}
	a := NewAttr(uint(c.Width), uint(c.Height), 0)
	fillAttr(a, t, size)
	if t == TypeJPEG {
		estimateQuality(a, rs)
	}
	return a, nil
}

func sniff(rs io.ReadSeeker) (t TypeID, size int64, err error) {
	size, err = rs.Seek(0, io.SeekEnd)
	if err != nil {
		return
	}
	if _, err = rs.Seek(0, io.SeekStart); err != nil {
		return
	}
	head := make([]byte, headSize)
	n, _ := io.ReadFull(rs, head)
	t = guessHead(head[:n])
	if t != TypeJPEG && t != TypePNG {
		return TypeNone, size, ErrorFormat
	}
	_, err = rs.Seek(0, io.SeekStart)
	return
}

func fillAttr(a *Attr, t TypeID, size int64) {
	a.Ext = t.Ext()
	a.Mime = mime.TypeByExtension(a.Ext)
	a.Size = Size(size)
}

func estimateQuality(a *Attr, rs io.ReadSeeker) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return
	}
	jq, err := jpegquality.New(rs)
	if err != nil {
		zlog.Debugw("jpeg quality estimate fail", "err", err)
		return
	}
	if q := jq.Quality(); q > 0 && q <= 100 {
		a.Quality = Quality(q)
	}
}

// SaveTo encodes m into w in opt.Format, returns the bytes written
func SaveTo(w io.Writer, m image.Image, opt WriteOption) (int, error) {
	cw := NewCountWriter(w)
	var err error
	switch opt.Format {
	case TypeJPEG:
		q := int(opt.Quality)
		if q == 0 {
			q = DefaultJPEGQuality
		} else if q > 100 {
			q = 100
		}
		err = jpeg.Encode(cw, Flatten(m), &jpeg.Options{Quality: q})
	case TypePNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(cw, m)
	default:
		return 0, fmt.Errorf("%w: %s", ErrorFormat, opt.Format)
	}
	if err != nil {
		return cw.Len(), err
	}
	return cw.Len(), nil
}
