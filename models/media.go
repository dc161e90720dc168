package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaKind classifies an uploaded asset.
type MediaKind string

const (
	MediaKindPhoto    MediaKind = "PHOTO"
	MediaKindVideo    MediaKind = "VIDEO"
	MediaKindPdf      MediaKind = "PDF"
	MediaKindDocument MediaKind = "DOCUMENT"
)

// Media represents one uploaded asset with its storage location and metadata.
// A Media value is immutable once constructed: updates produce a new value
// with the same identity (see WithAlt).
type Media struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Kind         MediaKind `json:"type" db:"kind" gorm:"type:text;not null"`
	URL          string    `json:"url" db:"url" gorm:"type:text;not null"`
	OriginalName string    `json:"originalName" db:"original_name" gorm:"type:text;not null"`
	StoredName   string    `json:"fileName" db:"stored_name" gorm:"type:text;not null"`
	MimeType     string    `json:"mimeType" db:"mime_type" gorm:"type:text;not null"`
	SizeBytes    int64     `json:"size" db:"size_bytes" gorm:"type:bigint;not null"`
	UploadedAt   time.Time `json:"uploadedAt" db:"uploaded_at" gorm:"type:timestamp;not null"`
	Alt          *string   `json:"alt,omitempty" db:"alt" gorm:"type:text"`
	UploadedBy   *string   `json:"uploadedBy,omitempty" db:"uploaded_by" gorm:"type:text"`
}

func (Media) TableName() string {
	return "media"
}

// NewMedia constructs a Media value, enforcing its invariants.
func NewMedia(id uuid.UUID, kind MediaKind, url, originalName, storedName, mimeType string,
	sizeBytes int64, uploadedAt time.Time, alt, uploadedBy *string,
) (Media, error) {
	if id == uuid.Nil {
		return Media{}, errors.New("media id is required")
	}
	if strings.TrimSpace(url) == "" {
		return Media{}, errors.New("media url is required")
	}
	if strings.TrimSpace(originalName) == "" {
		return Media{}, errors.New("media original name is required")
	}
	if strings.TrimSpace(storedName) == "" {
		return Media{}, errors.New("media stored name is required")
	}
	if strings.TrimSpace(mimeType) == "" {
		return Media{}, errors.New("media mime type is required")
	}
	if sizeBytes <= 0 {
		return Media{}, errors.New("media size must be positive")
	}
	if uploadedAt.IsZero() {
		return Media{}, errors.New("media upload date is required")
	}

	return Media{
		ID:           id,
		Kind:         kind,
		URL:          url,
		OriginalName: originalName,
		StoredName:   storedName,
		MimeType:     mimeType,
		SizeBytes:    sizeBytes,
		UploadedAt:   uploadedAt,
		Alt:          alt,
		UploadedBy:   uploadedBy,
	}, nil
}

// MediaFromUpload builds a Media for a freshly stored upload, inferring the
// kind from the MIME type and stamping the upload time.
func MediaFromUpload(id uuid.UUID, originalName, storedName, mimeType string,
	sizeBytes int64, url string, uploadedBy, alt *string,
) (Media, error) {
	kind := MediaKindFromMime(mimeType)
	return NewMedia(id, kind, url, originalName, storedName, mimeType, sizeBytes, time.Now(), alt, uploadedBy)
}

// MediaKindFromMime classifies a MIME type into a MediaKind.
func MediaKindFromMime(mimeType string) MediaKind {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return MediaKindPhoto
	case strings.HasPrefix(mimeType, "video/"):
		return MediaKindVideo
	case mimeType == "application/pdf":
		return MediaKindPdf
	default:
		return MediaKindDocument
	}
}

// WithAlt returns a copy of the media with the caption replaced. A nil alt
// keeps the existing caption.
func (m Media) WithAlt(alt *string) Media {
	updated := m
	if alt != nil {
		updated.Alt = alt
	}
	return updated
}

// Equal reports field-wise equality between two media values.
func (m Media) Equal(other Media) bool {
	return m.ID == other.ID &&
		m.Kind == other.Kind &&
		m.URL == other.URL &&
		m.OriginalName == other.OriginalName &&
		m.StoredName == other.StoredName &&
		m.MimeType == other.MimeType &&
		m.SizeBytes == other.SizeBytes &&
		m.UploadedAt.Equal(other.UploadedAt) &&
		equalStringPtr(m.Alt, other.Alt) &&
		equalStringPtr(m.UploadedBy, other.UploadedBy)
}

func (m Media) IsImage() bool {
	return m.Kind == MediaKindPhoto
}

func (m Media) IsVideo() bool {
	return m.Kind == MediaKindVideo
}

func (m Media) IsPdf() bool {
	return m.Kind == MediaKindPdf
}

func (m Media) IsDocument() bool {
	return m.Kind == MediaKindDocument
}

// FormattedSize renders the size with a binary unit, e.g. "2.5 MB".
func (m Media) FormattedSize() string {
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(m.SizeBytes)
	unitIndex := 0
	for size >= 1024 && unitIndex < len(units)-1 {
		size /= 1024
		unitIndex++
	}
	return fmt.Sprintf("%.1f %s", size, units[unitIndex])
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
