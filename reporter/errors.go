package reporter

import "errors"

var ErrInvalidReporterType = errors.New("invalid reporter type")
