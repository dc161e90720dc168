package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio entry aggregating description, publication
// state, attached media and technology tags. Media and technologies are held
// by reference: both can outlive their removal from a project.
type Project struct {
	ID               uuid.UUID    `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name             string       `json:"name" db:"name" gorm:"type:text;not null"`
	ShortDescription string       `json:"shortDescription" db:"short_description" gorm:"type:text;not null"`
	Description      string       `json:"description" db:"description" gorm:"type:text;not null"`
	Views            int          `json:"views" db:"views" gorm:"type:integer;not null;default:0"`
	IsPublished      bool         `json:"isPublished" db:"is_published" gorm:"type:boolean;not null;default:false"`
	Featured         bool         `json:"featured" db:"featured" gorm:"type:boolean;not null;default:false"`
	RepositoryLink   *string      `json:"repositoryLink,omitempty" db:"repository_link" gorm:"type:text"`
	ProjectLink      *string      `json:"projectLink,omitempty" db:"project_link" gorm:"type:text"`
	CreatedAt        time.Time    `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	Media            []Media      `json:"media" gorm:"many2many:project_media"`
	TechStack        []Technology `json:"techStack" gorm:"many2many:project_technologies"`
}

func (Project) TableName() string {
	return "projects"
}

// AddMedia appends a media reference. Adding a value-equal media twice is a
// no-op, keeping the collection free of duplicates.
func (p *Project) AddMedia(m Media) {
	for _, existing := range p.Media {
		if existing.Equal(m) {
			return
		}
	}
	p.Media = append(p.Media, m)
}

// RemoveMedia drops every media entry value-equal to m.
func (p *Project) RemoveMedia(m Media) {
	kept := p.Media[:0]
	for _, existing := range p.Media {
		if !existing.Equal(m) {
			kept = append(kept, existing)
		}
	}
	p.Media = kept
}

// FindMedia returns the attached media with the given id, if any.
func (p *Project) FindMedia(id uuid.UUID) (Media, bool) {
	for _, m := range p.Media {
		if m.ID == id {
			return m, true
		}
	}
	return Media{}, false
}

// HasMedia reports whether a media with the given id is attached.
func (p *Project) HasMedia(id uuid.UUID) bool {
	_, ok := p.FindMedia(id)
	return ok
}

// ClearMedia detaches all media references.
func (p *Project) ClearMedia() {
	p.Media = nil
}

// AddTechnology appends a technology reference. The tech stack is unique by
// id, so adding an already-attached technology is a no-op.
func (p *Project) AddTechnology(t Technology) {
	for _, existing := range p.TechStack {
		if existing.ID == t.ID {
			return
		}
	}
	p.TechStack = append(p.TechStack, t)
}

// RemoveTechnology drops the technology with the given id and reports whether
// it was attached.
func (p *Project) RemoveTechnology(id uuid.UUID) bool {
	for i, existing := range p.TechStack {
		if existing.ID == id {
			p.TechStack = append(p.TechStack[:i], p.TechStack[i+1:]...)
			return true
		}
	}
	return false
}
