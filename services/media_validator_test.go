package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrandjean/portfolio-backend/errs"
)

func TestValidateFile(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		fileSize     int
		mimeType     string
		originalName string
		wantErr      error
	}{
		{
			name:         "valid png",
			fileSize:     1024,
			mimeType:     "image/png",
			originalName: "photo.png",
		},
		{
			name:         "valid mp4",
			fileSize:     2048,
			mimeType:     "video/mp4",
			originalName: "clip.mp4",
		},
		{
			name:         "valid pdf",
			fileSize:     512,
			mimeType:     "application/pdf",
			originalName: "doc.pdf",
		},
		{
			name:         "valid docx",
			fileSize:     512,
			mimeType:     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			originalName: "report.docx",
		},
		{
			name:         "uppercase extension accepted",
			fileSize:     512,
			mimeType:     "image/jpeg",
			originalName: "IMG_0001.JPG",
		},
		{
			name:         "file too large",
			fileSize:     MaxFileSize + 1,
			mimeType:     "image/png",
			originalName: "photo.png",
			wantErr:      errs.ErrMaxFileSizeExceeded,
		},
		{
			name:         "mime not in allow list",
			fileSize:     1024,
			mimeType:     "application/zip",
			originalName: "archive.zip",
			wantErr:      errs.ErrUnsupportedMediaType,
		},
		{
			name:         "extension does not match mime",
			fileSize:     1024,
			mimeType:     "image/png",
			originalName: "photo.jpg",
			wantErr:      errs.ErrExtensionMismatch,
		},
		{
			name:         "unknown extension never valid",
			fileSize:     1024,
			mimeType:     "image/png",
			originalName: "photo.xyz",
			wantErr:      errs.ErrExtensionMismatch,
		},
		{
			name:         "no extension never valid",
			fileSize:     1024,
			mimeType:     "text/plain",
			originalName: "notes",
			wantErr:      errs.ErrExtensionMismatch,
		},
		{
			name:         "size check runs before mime check",
			fileSize:     MaxFileSize + 1,
			mimeType:     "application/zip",
			originalName: "archive.zip",
			wantErr:      errs.ErrMaxFileSizeExceeded,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateFile(make([]byte, tt.fileSize), tt.mimeType, tt.originalName)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFileExtension(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ".png", FileExtension("photo.png"))
	assert.Equal(t, ".gz", FileExtension("archive.tar.gz"))
	assert.Equal(t, "", FileExtension("no-extension"))
	assert.Equal(t, ".hidden", FileExtension(".hidden"))
}

func TestFolderForMime(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mimeType string
		folder   string
	}{
		{"image/png", "images"},
		{"image/webp", "images"},
		{"video/quicktime", "videos"},
		{"application/pdf", "documents"},
		{"text/plain", "documents"},
		{"application/zip", "others"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.folder, FolderForMime(tt.mimeType), "mime %s", tt.mimeType)
	}
}
