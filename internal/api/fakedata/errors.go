package fakedata

import "errors"

var ErrInvalidOptions = errors.New("invalid test data options")
