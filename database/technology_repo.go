package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mgrandjean/portfolio-backend/models"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindAll returns all technologies from the database
func (r *TechnologyRepo) FindAll() ([]*models.Technology, error) {
	var technologies []*models.Technology
	err := r.db.Find(&technologies).Error
	return technologies, err
}

// FindByID returns a technology by its ID, or nil when absent
func (r *TechnologyRepo) FindByID(id uuid.UUID) (*models.Technology, error) {
	var technology models.Technology
	err := r.db.First(&technology, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &technology, nil
}

// FindByName returns a technology by its exact name, or nil when absent.
// The lookup is case-sensitive.
func (r *TechnologyRepo) FindByName(name string) (*models.Technology, error) {
	var technology models.Technology
	err := r.db.First(&technology, "technology = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &technology, nil
}

// Save upserts a technology row
func (r *TechnologyRepo) Save(technology *models.Technology) error {
	return r.db.Save(technology).Error
}

// Delete removes a technology from the database by id
func (r *TechnologyRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Technology{}, "id = ?", id).Error
}
