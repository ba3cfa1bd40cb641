package editor

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/vegetor/geom"
)

var (
	// ErrBufferSizeExceeds reports welcome content that does not fit strictly
	// inside the display area.
	ErrBufferSizeExceeds = errors.New("buffer size exceeds display area")
	// ErrUnsupportedMove reports a recognized caret move with no behavior yet.
	ErrUnsupportedMove = errors.New("caret move not supported")
)

// SizeError carries the sizes behind an ErrBufferSizeExceeds failure.
type SizeError struct {
	BufferSize geom.Size
	AreaSize   geom.Size
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("buffer size %v exceeds the display area size %v", e.BufferSize, e.AreaSize)
}

func (e *SizeError) Unwrap() error { return ErrBufferSizeExceeds }
