package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		name     string
		size     int64
		expected string
	}{
		{"zero", 0, "0.0 B"},
		{"bytes", 512, "512.0 B"},
		{"kilobytes", 2048, "2.0 KB"},
		{"megabytes", 12898459, "12.3 MB"},
		{"gigabytes", 3 * 1024 * 1024 * 1024, "3.0 GB"},
		{"terabytes", 2199023255552, "2.0 TB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatSize(tc.size))
		})
	}
}

func TestGetMimeTypeFromExtension(t *testing.T) {
	assert.Equal(t, "video/mp4", GetMimeTypeFromExtension("mp4"))
	assert.Equal(t, "video/mp4", GetMimeTypeFromExtension(".MP4"))
	assert.Equal(t, "video/x-matroska", GetMimeTypeFromExtension("mkv"))
	assert.Equal(t, "application/octet-stream", GetMimeTypeFromExtension("exe"))
	assert.Equal(t, "application/octet-stream", GetMimeTypeFromExtension(""))
}
