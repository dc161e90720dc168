package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrandjean/portfolio-backend/models"
	"github.com/mgrandjean/portfolio-backend/services"
	"github.com/mgrandjean/portfolio-backend/storage"
)

type stubMediaRepo struct {
	saved []models.Media
}

func (s *stubMediaRepo) FindAll() ([]*models.Media, error)           { return nil, nil }
func (s *stubMediaRepo) FindByID(uuid.UUID) (*models.Media, error)   { return nil, nil }
func (s *stubMediaRepo) FindByProjectID(uuid.UUID) ([]*models.Media, error) {
	return nil, nil
}
func (s *stubMediaRepo) Save(media *models.Media) error {
	s.saved = append(s.saved, *media)
	return nil
}
func (s *stubMediaRepo) Delete(uuid.UUID) error { return nil }

type stubObjectStore struct{}

func (stubObjectStore) Upload(_ context.Context, data []byte, fileName, _, folder string) (storage.UploadResult, error) {
	return storage.UploadResult{
		URL:        fmt.Sprintf("https://bucket.s3.eu-west-3.amazonaws.com/%s/%s", folder, fileName),
		StoredName: fileName,
		Size:       int64(len(data)),
	}, nil
}

func (stubObjectStore) DeleteByURL(context.Context, string) error { return nil }

func (stubObjectStore) SignedURL(context.Context, string, string, time.Duration) (string, error) {
	return "", nil
}

func multipartUpload(t *testing.T, fileName, mimeType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadMediaCreated(t *testing.T) {
	t.Parallel()
	repo := &stubMediaRepo{}
	handler := newMediaHandler(services.NewMediaService(repo, stubObjectStore{}))

	body, contentType := multipartUpload(t, "photo.png", "image/png", []byte("content"))
	req := httptest.NewRequest(http.MethodPost, "/media/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.uploadMedia().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "photo.png", repo.saved[0].OriginalName)
}

func TestUploadMediaRejectsOversizedBody(t *testing.T) {
	t.Parallel()
	repo := &stubMediaRepo{}
	handler := newMediaHandler(services.NewMediaService(repo, stubObjectStore{}))

	// a body past the limit is rejected while reading the form, before the
	// file reaches memory as a whole
	oversized := make([]byte, uploadBodyLimit+1)
	body, contentType := multipartUpload(t, "huge.png", "image/png", oversized)
	req := httptest.NewRequest(http.MethodPost, "/media/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.uploadMedia().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, repo.saved)
}

func TestUploadMediaMissingFilePart(t *testing.T) {
	t.Parallel()
	handler := newMediaHandler(services.NewMediaService(&stubMediaRepo{}, stubObjectStore{}))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("alt", "a caption"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/media/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	handler.uploadMedia().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
