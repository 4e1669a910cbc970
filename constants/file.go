package constants

import "strings"

// AllowedImageExtensions holds the file extensions accepted by the upload endpoint.
var AllowedImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
}

var mediaTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MediaTypeForExt maps an image extension to its MIME type, defaulting to JPEG.
func MediaTypeForExt(ext string) string {
	if mt, ok := mediaTypes[NormalizeExt(ext)]; ok {
		return mt
	}
	return "image/jpeg"
}
