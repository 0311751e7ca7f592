package entity

import (
	"io"

	"vidvault/pkg/byterange"
)

// Stream is an open, range-resolved view over a video blob. Body is
// positioned at the start of the resolved interval; the caller owns it and
// must close it on every exit path.
type Stream struct {
	Body        io.ReadSeekCloser
	Resolution  byterange.Resolution
	TotalSize   int64
	ContentType string
}
