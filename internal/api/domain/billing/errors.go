package billing

import "errors"

var ErrInvalidPeriodKey = errors.New("invalid billing period key")
