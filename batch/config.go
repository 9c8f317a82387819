package batch

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	cimg "github.com/eugenmik/bulk-image-resizer/image"
	"github.com/eugenmik/bulk-image-resizer/utils"
)

var (
	ErrInvalidSource  = errors.New("invalid source folder")
	ErrInvalidDest    = errors.New("invalid destination folder")
	ErrInvalidSize    = errors.New("please enter a valid number greater than 0 for the image size")
	ErrInvalidQuality = errors.New("image quality must be a number between 1 and 95")
)

// ErrorLine renders a validation error the way it shows up in the log
func ErrorLine(err error) string {
	msg := err.Error()
	if msg == "" {
		return "Error."
	}
	return "Error: " + strings.ToUpper(msg[:1]) + msg[1:] + "."
}

// Config of one run, immutable once the task starts
type Config struct {
	Source    string
	Dest      string
	MaxSide   int
	Quality   int
	Overwrite bool
}

// Validate checks the constraints in the order the form shows them and
// returns the first one violated
func (c Config) Validate() error {
	if c.Source == "" || !utils.IsDir(c.Source) {
		return ErrInvalidSource
	}
	if !c.Overwrite && (c.Dest == "" || !utils.IsDir(c.Dest)) {
		return ErrInvalidDest
	}
	if c.MaxSide <= 0 {
		return ErrInvalidSize
	}
	if c.Quality < cimg.MinJPEGQuality || c.Quality > cimg.MaxJPEGQuality {
		return ErrInvalidQuality
	}
	return nil
}

// OutputPath is where the result for src lands
func (c Config) OutputPath(src string) string {
	if c.Overwrite {
		return src
	}
	return filepath.Join(c.Dest, filepath.Base(src))
}

// Input holds the raw form values
type Input struct {
	Source    string
	Dest      string
	Size      string
	Quality   string
	Overwrite bool
}

// ParseInput trims and converts the form values, then validates them.
// Non numeric size or quality turn into -1 so Validate names the field.
func ParseInput(in Input) (Config, error) {
	c := Config{
		Source:    strings.TrimSpace(in.Source),
		Dest:      strings.TrimSpace(in.Dest),
		MaxSide:   -1,
		Quality:   -1,
		Overwrite: in.Overwrite,
	}
	if n, ok := parseDigits(in.Size); ok {
		c.MaxSide = n
	}
	if n, ok := parseDigits(in.Quality); ok {
		c.Quality = n
	}
	return c, c.Validate()
}

// parseDigits accepts only plain decimal digits, no sign or spaces inside
func parseDigits(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
