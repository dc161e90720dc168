package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mgrandjean/portfolio-backend/models"
	"github.com/mgrandjean/portfolio-backend/storage"
)

type fakeMediaRepo struct {
	rows      map[uuid.UUID]models.Media
	byProject map[uuid.UUID][]models.Media
	findErr   error
	saveErr   error
	deleteErr error
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{
		rows:      make(map[uuid.UUID]models.Media),
		byProject: make(map[uuid.UUID][]models.Media),
	}
}

func (f *fakeMediaRepo) FindAll() ([]*models.Media, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	all := make([]*models.Media, 0, len(f.rows))
	for id := range f.rows {
		row := f.rows[id]
		all = append(all, &row)
	}
	return all, nil
}

func (f *fakeMediaRepo) FindByID(id uuid.UUID) (*models.Media, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeMediaRepo) FindByProjectID(projectID uuid.UUID) ([]*models.Media, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	attached := f.byProject[projectID]
	rows := make([]*models.Media, 0, len(attached))
	for i := range attached {
		rows = append(rows, &attached[i])
	}
	return rows, nil
}

func (f *fakeMediaRepo) Save(media *models.Media) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rows[media.ID] = *media
	return nil
}

func (f *fakeMediaRepo) Delete(id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.rows, id)
	return nil
}

type fakeTechnologyRepo struct {
	rows    map[uuid.UUID]models.Technology
	saveErr error
}

func newFakeTechnologyRepo() *fakeTechnologyRepo {
	return &fakeTechnologyRepo{rows: make(map[uuid.UUID]models.Technology)}
}

func (f *fakeTechnologyRepo) FindAll() ([]*models.Technology, error) {
	all := make([]*models.Technology, 0, len(f.rows))
	for id := range f.rows {
		row := f.rows[id]
		all = append(all, &row)
	}
	return all, nil
}

func (f *fakeTechnologyRepo) FindByID(id uuid.UUID) (*models.Technology, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeTechnologyRepo) FindByName(name string) (*models.Technology, error) {
	for id := range f.rows {
		if f.rows[id].Technology == name {
			row := f.rows[id]
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeTechnologyRepo) Save(technology *models.Technology) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rows[technology.ID] = *technology
	return nil
}

func (f *fakeTechnologyRepo) Delete(id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

type fakeProjectRepo struct {
	rows      map[uuid.UUID]models.Project
	addErr    error
	updateErr error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{rows: make(map[uuid.UUID]models.Project)}
}

func (f *fakeProjectRepo) FindAll() ([]*models.Project, error) {
	all := make([]*models.Project, 0, len(f.rows))
	for id := range f.rows {
		row := f.rows[id]
		all = append(all, &row)
	}
	return all, nil
}

func (f *fakeProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	clone := row
	clone.Media = append([]models.Media(nil), row.Media...)
	clone.TechStack = append([]models.Technology(nil), row.TechStack...)
	return &clone, nil
}

func (f *fakeProjectRepo) Add(project *models.Project) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.rows[project.ID] = *project
	return nil
}

func (f *fakeProjectRepo) Update(project *models.Project) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.rows[project.ID] = *project
	return nil
}

func (f *fakeProjectRepo) Delete(id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

type fakeTimelineRepo struct {
	rows map[uuid.UUID]models.TimelineEvent
}

func newFakeTimelineRepo() *fakeTimelineRepo {
	return &fakeTimelineRepo{rows: make(map[uuid.UUID]models.TimelineEvent)}
}

func (f *fakeTimelineRepo) sorted(filter func(models.TimelineEvent) bool) []*models.TimelineEvent {
	events := make([]models.TimelineEvent, 0, len(f.rows))
	for _, row := range f.rows {
		if filter == nil || filter(row) {
			events = append(events, row)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Year != events[j].Year {
			return events[i].Year > events[j].Year
		}
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	result := make([]*models.TimelineEvent, 0, len(events))
	for i := range events {
		result = append(result, &events[i])
	}
	return result
}

func (f *fakeTimelineRepo) FindAll() ([]*models.TimelineEvent, error) {
	return f.sorted(nil), nil
}

func (f *fakeTimelineRepo) FindByType(eventType models.TimelineEventType) ([]*models.TimelineEvent, error) {
	return f.sorted(func(e models.TimelineEvent) bool { return e.Type == eventType }), nil
}

func (f *fakeTimelineRepo) FindByID(id uuid.UUID) (*models.TimelineEvent, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeTimelineRepo) Save(event *models.TimelineEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	f.rows[event.ID] = *event
	return nil
}

func (f *fakeTimelineRepo) Delete(id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

type fakeObjectStore struct {
	uploadErr   error
	deleteErr   error
	signErr     error
	uploadCalls int
	deleted     []string
}

func (f *fakeObjectStore) Upload(_ context.Context, data []byte, fileName, mimeType, folder string) (storage.UploadResult, error) {
	if f.uploadErr != nil {
		return storage.UploadResult{}, f.uploadErr
	}
	f.uploadCalls++
	key := fileName
	if folder != "" {
		key = folder + "/" + fileName
	}
	return storage.UploadResult{
		URL:        "https://test-bucket.s3.eu-west-3.amazonaws.com/" + key,
		StoredName: key,
		Size:       int64(len(data)),
	}, nil
}

func (f *fakeObjectStore) DeleteByURL(_ context.Context, url string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, url)
	return nil
}

func (f *fakeObjectStore) SignedURL(_ context.Context, fileName, folder string, expiresIn time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	key := fileName
	if folder != "" {
		key = folder + "/" + fileName
	}
	return fmt.Sprintf("https://test-bucket.s3.eu-west-3.amazonaws.com/%s?X-Amz-Expires=%d", key, int(expiresIn.Seconds())), nil
}
