package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mgrandjean/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects with their media and tech stack preloaded
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Media").Preload("TechStack").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID with associations preloaded, or nil when absent
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Media").Preload("TechStack").First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database along with its association rows
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update saves the project's own columns and replaces its media and tech
// stack associations with the collections currently held on the struct.
func (r *ProjectRepo) Update(project *models.Project) error {
	if err := r.db.Omit("Media", "TechStack").Save(project).Error; err != nil {
		return err
	}
	if err := r.db.Model(project).Association("Media").Replace(project.Media); err != nil {
		return err
	}
	return r.db.Model(project).Association("TechStack").Replace(project.TechStack)
}

// Delete removes a project from the database by id. Association rows go with
// it; the referenced media and technology rows are left untouched.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	project := models.Project{ID: id}
	if err := r.db.Model(&project).Association("Media").Clear(); err != nil {
		return err
	}
	if err := r.db.Model(&project).Association("TechStack").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
