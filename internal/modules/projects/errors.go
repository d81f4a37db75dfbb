package projects

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("project not found")
)
