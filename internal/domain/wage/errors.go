package wage

import "errors"

var (
	ErrUnknownOccupation = errors.New("unknown occupation")
	ErrUnknownGeography  = errors.New("unknown geography")
	ErrUnknownMeasure    = errors.New("unknown measure")
	ErrInvalidSeriesID   = errors.New("invalid series id")
)
