package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "video.mp4", "video.mp4"},
		{"spaces", "my holiday video.mp4", "my_holiday_video.mp4"},
		{"unix traversal", "../../etc/passwd", "passwd"},
		{"windows traversal", "..\\..\\boot.ini", "boot.ini"},
		{"absolute path", "/tmp/evil.mp4", "evil.mp4"},
		{"parent reference only", "..", ""},
		{"hidden file", ".bashrc", "bashrc"},
		{"special characters", "cl!p@#$.mp4", "clp.mp4"},
		{"unicode dropped", "fïlm™.mkv", "flm.mkv"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeFilename(tc.in))
		})
	}
}
