package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mgrandjean/portfolio-backend/errs"
	"github.com/mgrandjean/portfolio-backend/models"
	"github.com/mgrandjean/portfolio-backend/storage"
)

// MediaRepository is the persistence contract the media catalog depends on.
type MediaRepository interface {
	FindAll() ([]*models.Media, error)
	FindByID(id uuid.UUID) (*models.Media, error)
	FindByProjectID(projectID uuid.UUID) ([]*models.Media, error)
	Save(media *models.Media) error
	Delete(id uuid.UUID) error
}

// UploadMediaParams carries a raw inbound file plus its optional metadata.
type UploadMediaParams struct {
	File         []byte
	OriginalName string
	MimeType     string
	UploadedBy   *string
	Alt          *string
	Folder       string
}

// MediaStats aggregates the whole catalog. Full scan, no pagination.
type MediaStats struct {
	TotalCount     int                      `json:"totalCount"`
	TotalSizeBytes int64                    `json:"totalSize"`
	ByKind         map[models.MediaKind]int `json:"byType"`
}

// MediaService owns the lifecycle of media records: validate an upload, push
// the blob to the object store, persist the metadata row, and keep blob and
// row deletions paired.
type MediaService struct {
	mediaRepo MediaRepository
	store     storage.ObjectStore
	logger    zerolog.Logger
}

func NewMediaService(mediaRepo MediaRepository, store storage.ObjectStore) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		store:     store,
		logger:    log.With().Str("serviceName", "mediaService").Logger(),
	}
}

// Upload validates the file, stores the blob and persists a media row.
// Validation failures abort before any I/O. If the blob is stored but the row
// cannot be persisted, the blob is left orphaned for administrative cleanup.
func (s *MediaService) Upload(ctx context.Context, params UploadMediaParams) (models.Media, error) {
	if err := ValidateFile(params.File, params.MimeType, params.OriginalName); err != nil {
		return models.Media{}, err
	}

	storedName := generateStoredName(params.OriginalName)
	folder := params.Folder
	if folder == "" {
		folder = FolderForMime(params.MimeType)
	}

	uploaded, err := s.store.Upload(ctx, params.File, storedName, params.MimeType, folder)
	if err != nil {
		return models.Media{}, err
	}

	media, err := models.MediaFromUpload(uuid.New(), params.OriginalName, storedName,
		params.MimeType, uploaded.Size, uploaded.URL, params.UploadedBy, params.Alt)
	if err != nil {
		return models.Media{}, errs.NewInvalidFieldError("media", err.Error())
	}

	if err := s.mediaRepo.Save(&media); err != nil {
		return models.Media{}, errs.NewDatabaseError("save", "media", err)
	}

	s.logger.Info().
		Str("mediaId", media.ID.String()).
		Str("originalName", params.OriginalName).
		Msg("media uploaded")

	return media, nil
}

// GetByID returns the media with the given id.
func (s *MediaService) GetByID(id uuid.UUID) (models.Media, error) {
	media, err := s.mediaRepo.FindByID(id)
	if err != nil {
		return models.Media{}, errs.NewDatabaseError("find", "media", err)
	}
	if media == nil {
		return models.Media{}, errs.NewNotFound(fmt.Sprintf("Media with ID %s", id))
	}
	return *media, nil
}

// ListByProject returns all media attached to a project.
func (s *MediaService) ListByProject(projectID uuid.UUID) ([]models.Media, error) {
	rows, err := s.mediaRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "media", err)
	}
	return derefMedia(rows), nil
}

// ListAll returns the full media catalog.
func (s *MediaService) ListAll() ([]models.Media, error) {
	rows, err := s.mediaRepo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "media", err)
	}
	return derefMedia(rows), nil
}

// Delete removes the blob, then the metadata row. A failed blob deletion
// keeps the row so the reference is never dangling.
func (s *MediaService) Delete(ctx context.Context, id uuid.UUID) error {
	media, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteByURL(ctx, media.URL); err != nil {
		return err
	}

	if err := s.mediaRepo.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "media", err)
	}

	s.logger.Info().Str("mediaId", id.String()).Msg("media deleted")
	return nil
}

// UpdateMetadata replaces the caption of a media, producing a new value with
// the same identity.
func (s *MediaService) UpdateMetadata(id uuid.UUID, alt *string) (models.Media, error) {
	media, err := s.GetByID(id)
	if err != nil {
		return models.Media{}, err
	}

	updated := media.WithAlt(alt)
	if err := s.mediaRepo.Save(&updated); err != nil {
		return models.Media{}, errs.NewDatabaseError("save", "media", err)
	}
	return updated, nil
}

// SignedURL returns a time-limited read URL for the media's blob, recovering
// the object key and folder from the stored URL.
func (s *MediaService) SignedURL(ctx context.Context, id uuid.UUID, expiresIn time.Duration) (string, error) {
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}

	media, err := s.GetByID(id)
	if err != nil {
		return "", err
	}

	parts := strings.Split(media.URL, "/")
	fileName := parts[len(parts)-1]
	folder := ""
	if len(parts) > 4 {
		folder = parts[len(parts)-2]
	}

	return s.store.SignedURL(ctx, fileName, folder, expiresIn)
}

// Stats aggregates count, total size and per-kind counts over the catalog.
func (s *MediaService) Stats() (MediaStats, error) {
	all, err := s.mediaRepo.FindAll()
	if err != nil {
		return MediaStats{}, errs.NewDatabaseError("find", "media", err)
	}

	stats := MediaStats{ByKind: make(map[models.MediaKind]int)}
	for _, media := range all {
		stats.TotalCount++
		stats.TotalSizeBytes += media.SizeBytes
		stats.ByKind[media.Kind]++
	}
	return stats, nil
}

// generateStoredName builds a collision-resistant object name: millisecond
// timestamp, random suffix, original extension.
func generateStoredName(originalName string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, FileExtension(originalName))
}

func derefMedia(rows []*models.Media) []models.Media {
	media := make([]models.Media, 0, len(rows))
	for _, row := range rows {
		media = append(media, *row)
	}
	return media
}
