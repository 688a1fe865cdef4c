package capture

import "errors"

// ErrUnavailable means no renderer can produce a snapshot here.
var ErrUnavailable = errors.New("capture unavailable")
