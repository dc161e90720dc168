package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mgrandjean/portfolio-backend/models"
)

type MediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) *MediaRepo {
	return &MediaRepo{db}
}

// FindAll returns all media rows from the database
func (r *MediaRepo) FindAll() ([]*models.Media, error) {
	var media []*models.Media
	err := r.db.Find(&media).Error
	return media, err
}

// FindByID returns a media by its ID, or nil when absent
func (r *MediaRepo) FindByID(id uuid.UUID) (*models.Media, error) {
	var media models.Media
	err := r.db.First(&media, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// FindByProjectID returns all media attached to the given project
func (r *MediaRepo) FindByProjectID(projectID uuid.UUID) ([]*models.Media, error) {
	var media []*models.Media
	err := r.db.
		Joins("JOIN project_media ON project_media.media_id = media.id").
		Where("project_media.project_id = ?", projectID).
		Find(&media).Error
	return media, err
}

// Save upserts a media row
func (r *MediaRepo) Save(media *models.Media) error {
	return r.db.Save(media).Error
}

// Delete removes a media row from the database by id
func (r *MediaRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Media{}, "id = ?", id).Error
}
