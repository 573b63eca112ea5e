package renderer

import "errors"

var (
	ErrInvalidConfig     = errors.New("renderer: invalid configuration")
	ErrFrameSizeMismatch = errors.New("renderer: frame size mismatch")
	ErrWorkerPanic       = errors.New("renderer: worker panicked while rendering sample")
	ErrPoolClosed        = errors.New("renderer: worker pool closed unexpectedly")
)
