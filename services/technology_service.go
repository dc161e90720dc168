package services

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mgrandjean/portfolio-backend/errs"
	"github.com/mgrandjean/portfolio-backend/models"
)

// TechnologyRepository is the persistence contract the technology registry
// depends on. FindByName is an exact, case-sensitive lookup.
type TechnologyRepository interface {
	FindAll() ([]*models.Technology, error)
	FindByID(id uuid.UUID) (*models.Technology, error)
	FindByName(name string) (*models.Technology, error)
	Save(technology *models.Technology) error
	Delete(id uuid.UUID) error
}

// TechnologyService de-duplicates technology tags by name, creating new ones
// only when absent. No process-wide cache: every call re-queries by name.
type TechnologyService struct {
	technologyRepo TechnologyRepository
	logger         zerolog.Logger
}

func NewTechnologyService(technologyRepo TechnologyRepository) *TechnologyService {
	return &TechnologyService{
		technologyRepo: technologyRepo,
		logger:         log.With().Str("serviceName", "technologyService").Logger(),
	}
}

// ResolveOrCreate returns the technology with the given name, creating it if
// absent. When the name already exists the stored entity wins: the caller's
// iconURL is ignored on reuse.
func (s *TechnologyService) ResolveOrCreate(name, iconURL string) (models.Technology, error) {
	existing, err := s.technologyRepo.FindByName(name)
	if err != nil {
		return models.Technology{}, errs.NewDatabaseError("find", "technology", err)
	}
	if existing != nil {
		return *existing, nil
	}

	technology, err := models.NewTechnology(uuid.New(), name, iconURL)
	if err != nil {
		return models.Technology{}, errs.NewInvalidFieldError("technology", err.Error())
	}

	if err := s.technologyRepo.Save(&technology); err != nil {
		return models.Technology{}, errs.NewDatabaseError("save", "technology", err)
	}

	s.logger.Info().Str("technologyId", technology.ID.String()).Str("name", name).Msg("technology created")
	return technology, nil
}

// GetByID returns the technology with the given id.
func (s *TechnologyService) GetByID(id uuid.UUID) (models.Technology, error) {
	technology, err := s.technologyRepo.FindByID(id)
	if err != nil {
		return models.Technology{}, errs.NewDatabaseError("find", "technology", err)
	}
	if technology == nil {
		return models.Technology{}, errs.NewNotFound("Technology")
	}
	return *technology, nil
}

// List returns all registered technologies.
func (s *TechnologyService) List() ([]models.Technology, error) {
	rows, err := s.technologyRepo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "technologies", err)
	}

	technologies := make([]models.Technology, 0, len(rows))
	for _, row := range rows {
		technologies = append(technologies, *row)
	}
	return technologies, nil
}

// Delete removes a technology. Project references are not back-checked: rows
// can be deleted independently of the projects that mention them.
func (s *TechnologyService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.technologyRepo.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "technology", err)
	}
	return nil
}
