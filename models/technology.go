package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Technology represents a named technology tag with an icon, attachable to projects.
type Technology struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Technology string    `json:"technology" db:"technology" gorm:"type:text;not null;unique"`
	IconURL    string    `json:"iconUrl" db:"icon_url" gorm:"type:text;not null"`
}

func (Technology) TableName() string {
	return "technologies"
}

// NewTechnology constructs a Technology value, enforcing its invariants.
func NewTechnology(id uuid.UUID, technology, iconURL string) (Technology, error) {
	if id == uuid.Nil {
		return Technology{}, errors.New("technology id is required")
	}
	if strings.TrimSpace(technology) == "" {
		return Technology{}, errors.New("technology name is required")
	}
	if strings.TrimSpace(iconURL) == "" {
		return Technology{}, errors.New("technology icon URL is required")
	}

	return Technology{
		ID:         id,
		Technology: technology,
		IconURL:    iconURL,
	}, nil
}

// Equal reports field-wise equality between two technology values.
func (t Technology) Equal(other Technology) bool {
	return t.ID == other.ID &&
		t.Technology == other.Technology &&
		t.IconURL == other.IconURL
}
