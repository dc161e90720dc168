package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mgrandjean/portfolio-backend/errs"
	"github.com/mgrandjean/portfolio-backend/services"
)

// uploadFormMemory caps how much of a multipart body is buffered in memory;
// the remainder spills to temp files.
const uploadFormMemory = 32 << 20

// uploadBodyLimit bounds the whole multipart body: the file ceiling plus
// headroom for the other form fields and multipart framing.
const uploadBodyLimit = services.MaxFileSize + (1 << 20)

type mediaHandler struct {
	responder    Responder
	logger       zerolog.Logger
	mediaService *services.MediaService
}

func newMediaHandler(mediaService *services.MediaService) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		mediaService: mediaService,
	}
}

// uploadMedia accepts a multipart form with a "file" part plus optional
// "alt" and "folder" fields, and returns the created media record.
func (h mediaHandler) uploadMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, uploadBodyLimit)

		if err := r.ParseMultipartForm(uploadFormMemory); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.responder.WriteError(w, errs.NewMaxFileSizeExceededError(services.MaxFileSize))
				return
			}
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		fileBytes, err := io.ReadAll(file)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read uploaded file"))
			return
		}

		mimeType := header.Header.Get("Content-Type")
		params := services.UploadMediaParams{
			File:         fileBytes,
			OriginalName: header.Filename,
			MimeType:     mimeType,
			Folder:       r.FormValue("folder"),
		}
		if alt := r.FormValue("alt"); alt != "" {
			params.Alt = &alt
		}
		if principal, err := ctxGetPrincipal(r.Context()); err == nil {
			uploadedBy := principal.ID
			params.UploadedBy = &uploadedBy
		}

		media, err := h.mediaService.Upload(r.Context(), params)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, media)
	}
}

// getMedia retrieves a single media record by ID
func (h mediaHandler) getMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediaID, err := parseIDParam(r, "mediaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		media, err := h.mediaService.GetByID(mediaID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, media)
	}
}

// listMedia returns the whole catalog, or only the media attached to the
// project named by the projectId query parameter.
func (h mediaHandler) listMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if projectIDStr := r.URL.Query().Get("projectId"); projectIDStr != "" {
			projectID, err := uuid.Parse(projectIDStr)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid projectId"))
				return
			}

			media, err := h.mediaService.ListByProject(projectID)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			h.responder.WriteJSON(w, media)
			return
		}

		media, err := h.mediaService.ListAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, media)
	}
}

// deleteMedia removes the blob and the metadata row
func (h mediaHandler) deleteMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediaID, err := parseIDParam(r, "mediaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.mediaService.Delete(r.Context(), mediaID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "media deleted successfully",
		})
	}
}

// updateMediaMetadata replaces the media caption
func (h mediaHandler) updateMediaMetadata() http.HandlerFunc {
	type metadataRequest struct {
		Alt *string `json:"alt"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		mediaID, err := parseIDParam(r, "mediaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var body metadataRequest
		if err := decodeJSONBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		media, err := h.mediaService.UpdateMetadata(mediaID, body.Alt)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, media)
	}
}

// getSignedURL returns a time-limited read URL for the media's blob
func (h mediaHandler) getSignedURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediaID, err := parseIDParam(r, "mediaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		expiresIn := time.Hour
		if expiresStr := r.URL.Query().Get("expiresIn"); expiresStr != "" {
			seconds, err := strconv.Atoi(expiresStr)
			if err != nil || seconds <= 0 {
				h.responder.WriteError(w, errs.NewInvalidFieldError("expiresIn", "must be a positive number of seconds"))
				return
			}
			expiresIn = time.Duration(seconds) * time.Second
		}

		signedURL, err := h.mediaService.SignedURL(r.Context(), mediaID, expiresIn)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"signedUrl": signedURL})
	}
}

// getMediaStats aggregates count, total size and per-kind counts
func (h mediaHandler) getMediaStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.mediaService.Stats()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}

// parseIDParam extracts and parses a UUID URL parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
