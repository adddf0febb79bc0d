package domain

import "errors"

// ErrContentTooLong is returned when body text reaches the content length limit.
var ErrContentTooLong = errors.New("content too long")

// ErrMissingPageID is returned when an append targets a blank page id.
var ErrMissingPageID = errors.New("page id is required")

// ErrTransport wraps network level failures talking to the workspace.
var ErrTransport = errors.New("request to workspace failed")
