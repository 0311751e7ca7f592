package utils

import "strings"

// extensionToMimeType maps the supported video extensions to their MIME types.
var extensionToMimeType = map[string]string{
	"mp4":  "video/mp4",
	"avi":  "video/x-msvideo",
	"mov":  "video/quicktime",
	"mkv":  "video/x-matroska",
	"webm": "video/webm",
}

// GetMimeTypeFromExtension returns the MIME type for a file extension
// (with or without a leading dot). If the extension is unknown, it
// defaults to "application/octet-stream".
func GetMimeTypeFromExtension(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if mt, ok := extensionToMimeType[ext]; ok {
		return mt
	}

	return "application/octet-stream"
}
