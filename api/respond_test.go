package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrandjean/portfolio-backend/errs"
)

func TestWriteErrorApiErr(t *testing.T) {
	t.Parallel()
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteError(rec, errs.NewMissingRequiredFieldError("name"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "name", body.Field)
	assert.Contains(t, body.Details, "name")
	assert.NotEmpty(t, body.Error)
}

func TestWriteErrorUnexpectedError(t *testing.T) {
	t.Parallel()
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteError(rec, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Equal(t, "error", body.Status)
	assert.NotContains(t, rec.Body.String(), "boom", "internal details must not leak")
}

func TestWriteErrorIncludesCauseChain(t *testing.T) {
	t.Parallel()
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteError(rec, errs.NewDatabaseError("save", "media", errors.New("connection refused")))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Cause, "connection refused")
}
