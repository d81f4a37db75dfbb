package equipment

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("equipment not found")
	ErrNameTaken  = errors.New("equipment name already exists")
)
