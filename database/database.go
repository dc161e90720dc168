package database

import (
	"gorm.io/gorm"

	"github.com/mgrandjean/portfolio-backend/models"
)

type Database struct {
	mediaRepo         *MediaRepo
	technologyRepo    *TechnologyRepo
	projectRepo       *ProjectRepo
	timelineEventRepo *TimelineEventRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		mediaRepo:         NewMediaRepo(db),
		technologyRepo:    NewTechnologyRepo(db),
		projectRepo:       NewProjectRepo(db),
		timelineEventRepo: NewTimelineEventRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) MediaRepo() *MediaRepo {
	return d.mediaRepo
}

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TimelineEventRepo() *TimelineEventRepo {
	return d.timelineEventRepo
}

// Migrate creates or updates the schema for every entity, including the
// project_media and project_technologies join tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Media{},
		&models.Technology{},
		&models.Project{},
		&models.TimelineEvent{},
	)
}
