package input

import "errors"

// ErrAborted is returned when the input stream ends or fails while waiting for an answer
var ErrAborted = errors.New("input aborted")
