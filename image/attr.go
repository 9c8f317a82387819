package image

import (
	"fmt"
)

type Dimension uint32
type Size uint32
type Quality uint8

// Attr ...
type Attr struct {
	Width   Dimension `json:"width"`
	Height  Dimension `json:"height"`
	Quality Quality   `json:"quality,omitempty"`
	Size    Size      `json:"size"`
	Ext     string    `json:"ext,omitempty"`
	Mime    string    `json:"mime,omitempty"`
	Name    string    `json:"name,omitempty"`
}

func (a Attr) String() string {
	s := fmt.Sprintf("%dx%d %s %s %d bytes", a.Width, a.Height, a.Ext, a.Mime, a.Size)
	if a.Quality > 0 {
		s += fmt.Sprintf(" q%d", a.Quality)
	}
	return s
}

// NewAttr ...
func NewAttr(w, h uint, q uint8) *Attr {
	return &Attr{
		Width:   Dimension(w),
		Height:  Dimension(h),
		Quality: Quality(q),
	}
}
