package shipment

import "errors"

var ErrInvalidUrgency = errors.New("invalid urgency")
