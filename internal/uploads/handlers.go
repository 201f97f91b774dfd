package uploads

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate handles POST /v1/uploads. Expects multipart form data with
// the file under the "file" field.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, int64(h.service.maxBytes)+4096)
	file, header, err := r.FormFile("file")
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_form", "Expected multipart form with a 'file' field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_form", "Failed to read uploaded file")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	upload, err := h.service.Create(r.Context(), userID, header.Filename, contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile):
			h.sendError(w, http.StatusBadRequest, "empty_file", "Uploaded file is empty")
		case errors.Is(err, ErrTooLarge):
			h.sendError(w, http.StatusBadRequest, "file_too_large", err.Error())
		case errors.Is(err, ErrUnsupportedType):
			h.sendError(w, http.StatusBadRequest, "unsupported_type", "Only JPEG, PNG and WebP images are accepted")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to store upload")
		}
		return
	}

	downloadURL, err := h.service.DownloadURL(r.Context(), userID, upload.ID, baseURL(r))
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to build download URL")
		return
	}

	h.sendJSON(w, http.StatusCreated, toResponse(upload, downloadURL))
}

// HandleList handles GET /v1/uploads
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	items, err := h.service.List(r.Context(), userID, limit, offset)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list uploads")
		return
	}

	resp := ListResponse{Uploads: make([]Response, 0, len(items))}
	for i := range items {
		resp.Uploads = append(resp.Uploads, toResponse(&items[i], ""))
	}

	h.sendJSON(w, http.StatusOK, resp)
}

// HandleDownload handles GET /v1/uploads/{id}/download
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid upload ID")
		return
	}

	data, contentType, err := h.service.Download(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.sendError(w, http.StatusNotFound, "not_found", "Upload not found")
			return
		}
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to download upload")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// HandleDelete handles DELETE /v1/uploads/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid upload ID")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.sendError(w, http.StatusNotFound, "not_found", "Upload not found")
			return
		}
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to delete upload")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toResponse(upload *storage.Upload, downloadURL string) Response {
	return Response{
		ID:          upload.ID,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		SizeBytes:   upload.SizeBytes,
		DownloadURL: downloadURL,
		CreatedAt:   upload.CreatedAt,
	}
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

func (h *Handler) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) sendError(w http.ResponseWriter, status int, code, message string) {
	h.sendJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
