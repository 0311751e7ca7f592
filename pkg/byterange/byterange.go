// Package byterange resolves HTTP Range headers (RFC 7233, single-range
// form only) into concrete byte intervals of a resource.
package byterange

import (
	"strconv"
	"strings"
)

// Kind tells the caller which response shape to produce.
type Kind int

const (
	// NoRange means no usable range was requested: serve the full body
	// with status 200. Malformed headers resolve to NoRange on purpose,
	// matching permissive client expectations.
	NoRange Kind = iota
	// Partial means a satisfiable single range: serve status 206 with
	// Content-Range and the resolved interval.
	Partial
	// Unsatisfiable means the requested range lies outside the resource:
	// serve status 416 with "Content-Range: bytes */<size>".
	Unsatisfiable
)

// Resolution is the outcome of resolving a Range header against a resource
// of a known total size. Start and End are inclusive byte offsets, only
// meaningful when Kind is Partial.
type Resolution struct {
	Kind  Kind
	Start int64
	End   int64
}

// Length returns the number of bytes covered by a Partial resolution.
func (r Resolution) Length() int64 {
	return r.End - r.Start + 1
}

// Resolve translates header (the raw Range header value, possibly empty)
// and size (total resource length in bytes) into a Resolution.
//
// Supported forms: "bytes=S-E", "bytes=S-" (to end of file) and "bytes=-N"
// (last N bytes). Multi-range and non-bytes units are treated as absent.
func Resolve(header string, size int64) Resolution {
	if header == "" {
		return Resolution{Kind: NoRange}
	}

	spec, ok := strings.CutPrefix(strings.TrimSpace(header), "bytes=")
	if !ok {
		return Resolution{Kind: NoRange}
	}
	if strings.Contains(spec, ",") {
		return Resolution{Kind: NoRange}
	}

	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok {
		return Resolution{Kind: NoRange}
	}
	startStr = strings.TrimSpace(startStr)
	endStr = strings.TrimSpace(endStr)

	if startStr == "" && endStr == "" {
		return Resolution{Kind: NoRange}
	}

	if startStr == "" {
		return resolveSuffix(endStr, size)
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return Resolution{Kind: NoRange}
	}

	end := size - 1
	if endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil {
			return Resolution{Kind: NoRange}
		}
	}

	if size == 0 || start >= size || start > end {
		return Resolution{Kind: Unsatisfiable}
	}
	if end > size-1 {
		end = size - 1
	}

	return Resolution{Kind: Partial, Start: start, End: end}
}

// resolveSuffix handles the "bytes=-N" form: the last N bytes of the file.
func resolveSuffix(lengthStr string, size int64) Resolution {
	n, err := strconv.ParseInt(lengthStr, 10, 64)
	if err != nil || n < 0 {
		return Resolution{Kind: NoRange}
	}

	if size == 0 || n == 0 {
		return Resolution{Kind: Unsatisfiable}
	}

	start := size - n
	if start < 0 {
		start = 0
	}

	return Resolution{Kind: Partial, Start: start, End: size - 1}
}
