package question

import "errors"

var ErrInvalidQuery = errors.New("invalid questions query")
