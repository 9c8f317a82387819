package image

import (
	"errors"
)

var (
	ErrorFormat   = errors.New("invalid or unsupported image format")
	ErrEmptyImage = errors.New("image has no pixels")
	ErrBadTarget  = errors.New("target size must be greater than 0")
)
