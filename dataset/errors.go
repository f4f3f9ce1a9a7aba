package dataset

import "errors"

var (
	ErrReadingSource      = errors.New("error reading city data")
	ErrUnsupportedFormat  = errors.New("unsupported city file format")
	ErrMissingColumn      = errors.New("missing required column")
	ErrInvalidStartTime   = errors.New("invalid start time")
	ErrInvalidStationData = errors.New("invalid station data")
)
