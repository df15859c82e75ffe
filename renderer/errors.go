package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrEmptyFrame       = errors.New("renderer: frame width and height must both be greater than zero")
	ErrInterrupted      = errors.New("renderer: interrupted while rendering")
)
