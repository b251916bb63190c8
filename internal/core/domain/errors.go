package domain

import "errors"

var ErrInvalidInput = errors.New("invalid input")
var ErrForbidden = errors.New("access forbidden")
