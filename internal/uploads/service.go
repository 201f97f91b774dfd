package uploads

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ayursutra/backend/internal/blob"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrNotFound        = errors.New("upload not found")
)

// allowedTypes limits uploads to profile picture formats.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type Service struct {
	store      storage.Store
	blobStore  blob.Store
	maxBytes   int
	presignTTL int
}

// NewService builds an uploads service. A nil blobStore keeps file bytes
// inline in the metadata row (local mode).
func NewService(store storage.Store, blobStore blob.Store, maxBytes, presignTTLSeconds int) *Service {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	if presignTTLSeconds <= 0 {
		presignTTLSeconds = 900
	}
	return &Service{
		store:      store,
		blobStore:  blobStore,
		maxBytes:   maxBytes,
		presignTTL: presignTTLSeconds,
	}
}

// Create validates and stores one uploaded file.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, fileName, contentType string, data []byte) (*storage.Upload, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if len(data) > s.maxBytes {
		return nil, fmt.Errorf("%w: maximum %d bytes", ErrTooLarge, s.maxBytes)
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !allowedTypes[contentType] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	upload := &storage.Upload{
		UserID:      userID,
		FileName:    sanitizeFileName(fileName),
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
	}

	if s.blobStore == nil {
		upload.Data = data
	} else {
		objectKey := fmt.Sprintf("uploads/%s/%s_%s", userID, uuid.New(), upload.FileName)
		if _, err := s.blobStore.PutObject(ctx, objectKey, data, contentType); err != nil {
			return nil, fmt.Errorf("store upload: %w", err)
		}
		upload.ObjectKey = &objectKey
	}

	if err := s.store.CreateUpload(ctx, upload); err != nil {
		return nil, fmt.Errorf("save upload metadata: %w", err)
	}

	return upload, nil
}

// Get returns an upload's metadata. Uploads of other users are not found.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*storage.Upload, error) {
	upload, err := s.store.GetUpload(ctx, id)
	if err != nil || upload.UserID != userID {
		return nil, ErrNotFound
	}
	return upload, nil
}

// List returns the user's uploads, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.Upload, error) {
	return s.store.ListUploads(ctx, userID, limit, offset)
}

// Delete removes an upload and, in S3 mode, its object.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	upload, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if s.blobStore != nil && upload.ObjectKey != nil {
		// Metadata removal matters more than the orphaned object.
		if err := s.blobStore.DeleteObject(ctx, *upload.ObjectKey); err != nil {
			log.Printf("WARNING: failed to delete upload object %s: %v", *upload.ObjectKey, err)
		}
	}

	return s.store.DeleteUpload(ctx, id)
}

// DownloadURL returns where the client can fetch the file. Local mode
// points at the download endpoint, S3 mode presigns the object.
func (s *Service) DownloadURL(ctx context.Context, userID, id uuid.UUID, baseURL string) (string, error) {
	upload, err := s.Get(ctx, userID, id)
	if err != nil {
		return "", err
	}

	if s.blobStore == nil || upload.ObjectKey == nil {
		return fmt.Sprintf("%s/v1/uploads/%s/download", strings.TrimSuffix(baseURL, "/"), id), nil
	}

	url, err := s.blobStore.PresignGet(ctx, *upload.ObjectKey, s.presignTTL)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

// Download returns the file bytes and their content type.
func (s *Service) Download(ctx context.Context, userID, id uuid.UUID) ([]byte, string, error) {
	upload, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}

	if s.blobStore == nil || upload.ObjectKey == nil {
		return upload.Data, upload.ContentType, nil
	}

	data, err := s.blobStore.GetObject(ctx, *upload.ObjectKey)
	if err != nil {
		return nil, "", fmt.Errorf("fetch upload object: %w", err)
	}
	return data, upload.ContentType, nil
}

// sanitizeFileName keeps the base name and strips path separators.
func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		name = "upload"
	}
	return name
}
