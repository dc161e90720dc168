package services

import (
	"strings"

	"github.com/mgrandjean/portfolio-backend/errs"
)

// MaxFileSize is the upload size ceiling (50 MiB).
const MaxFileSize = 50 * 1024 * 1024

var (
	allowedImageTypes = []string{
		"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp",
	}
	allowedVideoTypes = []string{
		"video/mp4", "video/mpeg", "video/quicktime", "video/webm",
	}
	allowedDocumentTypes = []string{
		"application/pdf", "application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"text/plain",
	}

	// extensionMimeTypes maps a lowercase file extension to the MIME types it
	// may legitimately carry. Extensions missing from this map are never valid.
	extensionMimeTypes = map[string][]string{
		".jpg":  {"image/jpeg"},
		".jpeg": {"image/jpeg"},
		".png":  {"image/png"},
		".gif":  {"image/gif"},
		".webp": {"image/webp"},
		".mp4":  {"video/mp4"},
		".mov":  {"video/quicktime"},
		".mpeg": {"video/mpeg"},
		".webm": {"video/webm"},
		".pdf":  {"application/pdf"},
		".doc":  {"application/msword"},
		".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		".txt":  {"text/plain"},
	}
)

// ValidateFile checks an inbound upload against the size ceiling, the MIME
// allow-list and the extension/MIME pairing, in that order. Pure function of
// its inputs; no I/O.
func ValidateFile(file []byte, mimeType, originalName string) error {
	if int64(len(file)) > MaxFileSize {
		return errs.NewMaxFileSizeExceededError(MaxFileSize)
	}

	if !isAllowedMimeType(mimeType) {
		return errs.NewUnsupportedMediaTypeError(mimeType, AllowedMimeTypes())
	}

	extension := FileExtension(originalName)
	if !extensionMatchesMime(extension, mimeType) {
		return errs.NewExtensionMismatchError(extension, mimeType)
	}

	return nil
}

// AllowedMimeTypes returns the full upload allow-list.
func AllowedMimeTypes() []string {
	all := make([]string, 0, len(allowedImageTypes)+len(allowedVideoTypes)+len(allowedDocumentTypes))
	all = append(all, allowedImageTypes...)
	all = append(all, allowedVideoTypes...)
	all = append(all, allowedDocumentTypes...)
	return all
}

// FileExtension returns the extension of a file name including the leading
// dot, or the empty string when there is none.
func FileExtension(fileName string) string {
	lastDot := strings.LastIndex(fileName, ".")
	if lastDot == -1 {
		return ""
	}
	return fileName[lastDot:]
}

// FolderForMime resolves the default storage folder for a MIME type.
func FolderForMime(mimeType string) string {
	switch {
	case contains(allowedImageTypes, mimeType):
		return "images"
	case contains(allowedVideoTypes, mimeType):
		return "videos"
	case contains(allowedDocumentTypes, mimeType):
		return "documents"
	default:
		return "others"
	}
}

func isAllowedMimeType(mimeType string) bool {
	return contains(allowedImageTypes, mimeType) ||
		contains(allowedVideoTypes, mimeType) ||
		contains(allowedDocumentTypes, mimeType)
}

func extensionMatchesMime(extension, mimeType string) bool {
	allowed, ok := extensionMimeTypes[strings.ToLower(extension)]
	if !ok {
		return false
	}
	return contains(allowed, mimeType)
}

func contains(list []string, value string) bool {
	for _, entry := range list {
		if entry == value {
			return true
		}
	}
	return false
}
