package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrandjean/portfolio-backend/errs"
)

type projectFixture struct {
	mediaRepo      *fakeMediaRepo
	technologyRepo *fakeTechnologyRepo
	projectRepo    *fakeProjectRepo
	mediaService   *MediaService
	service        *ProjectService
}

func newProjectFixture() *projectFixture {
	mediaRepo := newFakeMediaRepo()
	technologyRepo := newFakeTechnologyRepo()
	projectRepo := newFakeProjectRepo()
	mediaService := NewMediaService(mediaRepo, &fakeObjectStore{})
	return &projectFixture{
		mediaRepo:      mediaRepo,
		technologyRepo: technologyRepo,
		projectRepo:    projectRepo,
		mediaService:   mediaService,
		service:        NewProjectService(projectRepo, mediaService, NewTechnologyService(technologyRepo)),
	}
}

func TestProjectServiceCreate(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	photo := mustUpload(t, f.mediaService, "cover.png", "image/png")
	video := mustUpload(t, f.mediaService, "demo.mp4", "video/mp4")

	project, err := f.service.Create(CreateProjectParams{
		Name:        "Portfolio",
		Description: "My personal site",
		IsPublished: true,
		MediaIDs:    []uuid.UUID{photo.ID, video.ID},
		TechStack: []TechnologyInput{
			{Technology: "Go", IconURL: "https://cdn.example.com/go.svg"},
			{Technology: "Postgres", IconURL: "https://cdn.example.com/postgres.svg"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Portfolio", project.Name)
	assert.Len(t, project.Media, 2)
	assert.Len(t, project.TechStack, 2)
	assert.True(t, project.HasMedia(photo.ID))
	assert.True(t, project.HasMedia(video.ID))

	stored, err := f.service.Get(project.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Media, 2)
}

func TestProjectServiceCreateRequiresName(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	_, err := f.service.Create(CreateProjectParams{Name: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMissingRequiredField)
}

func TestProjectServiceCreateMissingMediaAbortsEverything(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	photo := mustUpload(t, f.mediaService, "cover.png", "image/png")

	_, err := f.service.Create(CreateProjectParams{
		Name:     "Portfolio",
		MediaIDs: []uuid.UUID{photo.ID, uuid.New()},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Empty(t, f.projectRepo.rows, "nothing must be persisted when any media id is missing")
}

func TestProjectServiceCreateDeduplicatesTechnologyNames(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	project, err := f.service.Create(CreateProjectParams{
		Name: "Portfolio",
		TechStack: []TechnologyInput{
			{Technology: "Go", IconURL: "https://cdn.example.com/go.svg"},
			{Technology: "Go", IconURL: "https://cdn.example.com/different.svg"},
		},
	})
	require.NoError(t, err)

	require.Len(t, project.TechStack, 1)
	assert.Equal(t, "Go", project.TechStack[0].Technology)
	assert.Equal(t, "https://cdn.example.com/go.svg", project.TechStack[0].IconURL)
	assert.Len(t, f.technologyRepo.rows, 1)
}

func TestProjectServiceGetNotFound(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	_, err := f.service.Get(uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestProjectServiceDelete(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	project, err := f.service.Create(CreateProjectParams{Name: "Portfolio"})
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(project.ID))
	assert.Empty(t, f.projectRepo.rows)

	assert.ErrorIs(t, f.service.Delete(project.ID), errs.ErrNotFound)
}

func TestProjectServiceAddMediaByID(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	project, err := f.service.Create(CreateProjectParams{Name: "Portfolio"})
	require.NoError(t, err)
	photo := mustUpload(t, f.mediaService, "cover.png", "image/png")

	updated, err := f.service.AddMediaByID(project.ID, photo.ID)
	require.NoError(t, err)
	assert.True(t, updated.HasMedia(photo.ID))

	// attaching the same media again conflicts and changes nothing
	_, err = f.service.AddMediaByID(project.ID, photo.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAlreadyAssociated)

	stored, err := f.service.Get(project.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Media, 1)
}

func TestProjectServiceAddMediaByIDMissingMedia(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	project, err := f.service.Create(CreateProjectParams{Name: "Portfolio"})
	require.NoError(t, err)

	_, err = f.service.AddMediaByID(project.ID, uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestProjectServiceRemoveMediaCascades(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	photo := mustUpload(t, f.mediaService, "cover.png", "image/png")
	project, err := f.service.Create(CreateProjectParams{
		Name:     "Portfolio",
		MediaIDs: []uuid.UUID{photo.ID},
	})
	require.NoError(t, err)

	updated, err := f.service.RemoveMedia(context.Background(), project.ID, photo.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Media)

	// the media row is gone too, not just the association
	_, err = f.mediaService.GetByID(photo.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestProjectServiceRemoveMediaNotAttached(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	photo := mustUpload(t, f.mediaService, "cover.png", "image/png")
	project, err := f.service.Create(CreateProjectParams{Name: "Portfolio"})
	require.NoError(t, err)

	_, err = f.service.RemoveMedia(context.Background(), project.ID, photo.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// the unattached media row is untouched
	_, err = f.mediaService.GetByID(photo.ID)
	assert.NoError(t, err)
}

func TestProjectServiceAddTechnologyIsIdempotent(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	project, err := f.service.Create(CreateProjectParams{Name: "Portfolio"})
	require.NoError(t, err)

	spec := TechnologyInput{Technology: "Go", IconURL: "https://cdn.example.com/go.svg"}
	updated, err := f.service.AddTechnology(project.ID, spec)
	require.NoError(t, err)
	assert.Len(t, updated.TechStack, 1)

	// adding the same name again is absorbed, no conflict
	updated, err = f.service.AddTechnology(project.ID, spec)
	require.NoError(t, err)
	assert.Len(t, updated.TechStack, 1)
}

func TestProjectServiceRemoveTechnology(t *testing.T) {
	t.Parallel()
	f := newProjectFixture()

	project, err := f.service.Create(CreateProjectParams{
		Name:      "Portfolio",
		TechStack: []TechnologyInput{{Technology: "Go", IconURL: "https://cdn.example.com/go.svg"}},
	})
	require.NoError(t, err)
	technologyID := project.TechStack[0].ID

	updated, err := f.service.RemoveTechnology(project.ID, technologyID)
	require.NoError(t, err)
	assert.Empty(t, updated.TechStack)

	// the registry row survives detachment
	_, err = NewTechnologyService(f.technologyRepo).GetByID(technologyID)
	assert.NoError(t, err)

	_, err = f.service.RemoveTechnology(project.ID, technologyID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
