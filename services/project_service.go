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
)

// ProjectRepository is the persistence contract the aggregate manager
// depends on.
type ProjectRepository interface {
	FindAll() ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// MediaCatalog is the slice of the media service the aggregate manager uses
// to resolve and cascade-delete media references.
type MediaCatalog interface {
	GetByID(id uuid.UUID) (models.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TechnologyRegistry resolves technology tags by name, creating them on
// first reference.
type TechnologyRegistry interface {
	ResolveOrCreate(name, iconURL string) (models.Technology, error)
}

// TechnologyInput names a technology tag to attach to a project.
type TechnologyInput struct {
	Technology string `json:"technology"`
	IconURL    string `json:"iconUrl"`
}

// CreateProjectParams carries everything needed to create a project. Media
// must be uploaded beforehand and referenced here by id.
type CreateProjectParams struct {
	Name             string
	Description      string
	ShortDescription string
	IsPublished      bool
	Featured         bool
	RepositoryLink   *string
	ProjectLink      *string
	MediaIDs         []uuid.UUID
	TechStack        []TechnologyInput
}

// ProjectService owns a project's consistency: attaching and detaching media
// and technology references while enforcing the not-found and
// already-associated rules.
type ProjectService struct {
	projectRepo ProjectRepository
	media       MediaCatalog
	technology  TechnologyRegistry
	logger      zerolog.Logger
}

func NewProjectService(projectRepo ProjectRepository, media MediaCatalog, technology TechnologyRegistry) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		media:       media,
		technology:  technology,
		logger:      log.With().Str("serviceName", "projectService").Logger(),
	}
}

// List returns all projects with their associations.
func (s *ProjectService) List() ([]models.Project, error) {
	rows, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}

	projects := make([]models.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, *row)
	}
	return projects, nil
}

// Create builds a project from already-uploaded media ids and technology
// specs. Any missing media id aborts the whole creation; nothing is
// persisted. Duplicate technology names resolve to the same entity.
func (s *ProjectService) Create(params CreateProjectParams) (models.Project, error) {
	if strings.TrimSpace(params.Name) == "" {
		return models.Project{}, errs.NewMissingRequiredFieldError("name")
	}

	mediaEntities := make([]models.Media, 0, len(params.MediaIDs))
	for _, mediaID := range params.MediaIDs {
		media, err := s.media.GetByID(mediaID)
		if err != nil {
			return models.Project{}, err
		}
		mediaEntities = append(mediaEntities, media)
	}

	project := models.Project{
		ID:               uuid.New(),
		Name:             params.Name,
		ShortDescription: params.ShortDescription,
		Description:      params.Description,
		Views:            0,
		IsPublished:      params.IsPublished,
		Featured:         params.Featured,
		RepositoryLink:   params.RepositoryLink,
		ProjectLink:      params.ProjectLink,
		CreatedAt:        time.Now(),
	}

	for _, media := range mediaEntities {
		project.AddMedia(media)
	}
	for _, spec := range params.TechStack {
		technology, err := s.technology.ResolveOrCreate(spec.Technology, spec.IconURL)
		if err != nil {
			return models.Project{}, err
		}
		project.AddTechnology(technology)
	}

	if err := s.projectRepo.Add(&project); err != nil {
		return models.Project{}, errs.NewDatabaseError("create", "project", err)
	}

	s.logger.Info().Str("projectId", project.ID.String()).Str("name", project.Name).Msg("project created")
	return project, nil
}

// Get returns the project with the given id.
func (s *ProjectService) Get(id uuid.UUID) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return models.Project{}, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return models.Project{}, errs.NewNotFound("Project")
	}
	return *project, nil
}

// Delete removes the project. Attached media blobs are not cascade-deleted;
// callers wanting that must delete each media separately first.
func (s *ProjectService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}
	return nil
}

// AddMediaByID attaches an existing media to the project. Attaching a media
// the project already references fails with a conflict and leaves the
// collection unchanged.
func (s *ProjectService) AddMediaByID(projectID, mediaID uuid.UUID) (models.Project, error) {
	project, err := s.Get(projectID)
	if err != nil {
		return models.Project{}, err
	}

	media, err := s.media.GetByID(mediaID)
	if err != nil {
		return models.Project{}, err
	}

	if project.HasMedia(mediaID) {
		return models.Project{}, errs.NewAlreadyAssociated("Media", "project")
	}

	project.AddMedia(media)
	if err := s.projectRepo.Update(&project); err != nil {
		return models.Project{}, errs.NewDatabaseError("update", "project", err)
	}
	return project, nil
}

// RemoveMedia detaches a media from the project, then deletes the underlying
// media record and its blob. There is no detach-without-delete.
func (s *ProjectService) RemoveMedia(ctx context.Context, projectID, mediaID uuid.UUID) (models.Project, error) {
	project, err := s.Get(projectID)
	if err != nil {
		return models.Project{}, err
	}

	media, ok := project.FindMedia(mediaID)
	if !ok {
		return models.Project{}, errs.NewNotFound(fmt.Sprintf("Media with ID %s", mediaID))
	}

	project.RemoveMedia(media)
	if err := s.projectRepo.Update(&project); err != nil {
		return models.Project{}, errs.NewDatabaseError("update", "project", err)
	}

	if err := s.media.Delete(ctx, mediaID); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// AddTechnology resolves the technology by name (creating it on first
// reference) and attaches it. Duplicates by id are absorbed structurally; no
// conflict is raised.
func (s *ProjectService) AddTechnology(projectID uuid.UUID, spec TechnologyInput) (models.Project, error) {
	project, err := s.Get(projectID)
	if err != nil {
		return models.Project{}, err
	}

	technology, err := s.technology.ResolveOrCreate(spec.Technology, spec.IconURL)
	if err != nil {
		return models.Project{}, err
	}

	project.AddTechnology(technology)
	if err := s.projectRepo.Update(&project); err != nil {
		return models.Project{}, errs.NewDatabaseError("update", "project", err)
	}
	return project, nil
}

// RemoveTechnology detaches the technology with the given id. The technology
// row itself is kept; it may be referenced by other projects.
func (s *ProjectService) RemoveTechnology(projectID, technologyID uuid.UUID) (models.Project, error) {
	project, err := s.Get(projectID)
	if err != nil {
		return models.Project{}, err
	}

	if !project.RemoveTechnology(technologyID) {
		return models.Project{}, errs.NewNotFound("Technology")
	}

	if err := s.projectRepo.Update(&project); err != nil {
		return models.Project{}, errs.NewDatabaseError("update", "project", err)
	}
	return project, nil
}
