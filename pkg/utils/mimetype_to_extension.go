package utils

import "strings"

// mimeTypeToExtension maps the media MIME types the service accepts to their
// typical file extensions. Blob keys carry the extension so downloads keep a
// meaningful filename.
var mimeTypeToExtension = map[string]string{
	"image/bmp":        ".bmp",
	"image/gif":        ".gif",
	"image/jpeg":       ".jpg",
	"image/png":        ".png",
	"image/webp":       ".webp",
	"video/avi":        ".avi",
	"video/mpeg":       ".mpeg",
	"video/mp4":        ".mp4",
	"video/ogg":        ".ogv",
	"video/quicktime":  ".mov",
	"video/webm":       ".webm",
	"video/x-flv":      ".flv",
	"video/x-matroska": ".mkv",
	"video/x-ms-wmv":   ".wmv",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "video/mp4; charset=binary")
	cleanedMimeType := strings.Split(mimeType, ";")[0]
	if ext, ok := mimeTypeToExtension[strings.TrimSpace(cleanedMimeType)]; ok {
		return ext
	}

	return ".bin"
}
