package reports

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ayursutra/backend/internal/blob"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrInvalidFormat = errors.New("format must be pdf or csv")
	ErrInvalidDate   = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidRange  = errors.New("from date must not be after to date")
	ErrRangeTooLarge = errors.New("date range too large")
	ErrNotFound      = errors.New("report not found")
)

type Service struct {
	store        storage.Store
	generator    *Generator
	blobStore    blob.Store
	maxRangeDays int
	presignTTL   int
}

// NewService builds a reports service. A nil blobStore keeps report bytes
// inline in the metadata row (local mode).
func NewService(store storage.Store, blobStore blob.Store, maxRangeDays, presignTTLSeconds int) *Service {
	if maxRangeDays <= 0 {
		maxRangeDays = 92
	}
	if presignTTLSeconds <= 0 {
		presignTTLSeconds = 900
	}
	return &Service{
		store:        store,
		generator:    NewGenerator(),
		blobStore:    blobStore,
		maxRangeDays: maxRangeDays,
		presignTTL:   presignTTLSeconds,
	}
}

// Create renders and stores a report over the requested range.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*storage.ReportMeta, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format != FormatPDF && format != FormatCSV {
		return nil, ErrInvalidFormat
	}

	from, err := time.Parse("2006-01-02", req.From)
	if err != nil {
		return nil, ErrInvalidDate
	}
	to, err := time.Parse("2006-01-02", req.To)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if from.After(to) {
		return nil, ErrInvalidRange
	}
	if int(to.Sub(from).Hours()/24) > s.maxRangeDays {
		return nil, fmt.Errorf("%w: maximum %d days", ErrRangeTooLarge, s.maxRangeDays)
	}

	data, err := s.collect(ctx, userID, req.From, req.To, from, to)
	if err != nil {
		return nil, err
	}

	rendered, err := s.generator.Generate(format, req, data)
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}

	meta := &storage.ReportMeta{
		UserID:    userID,
		Format:    format,
		FromDate:  req.From,
		ToDate:    req.To,
		SizeBytes: int64(len(rendered)),
		Status:    StatusReady,
	}

	if s.blobStore == nil {
		meta.Data = rendered
	} else {
		objectKey := fmt.Sprintf("reports/%s/%s_%s_%s.%s",
			userID, req.From, req.To, uuid.New(), format)
		if _, err := s.blobStore.PutObject(ctx, objectKey, rendered, contentType(format)); err != nil {
			return nil, fmt.Errorf("upload report: %w", err)
		}
		meta.ObjectKey = &objectKey
	}

	if err := s.store.CreateReport(ctx, meta); err != nil {
		return nil, fmt.Errorf("save report metadata: %w", err)
	}

	return meta, nil
}

// Get returns a report's metadata. Reports of other users are not found.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*storage.ReportMeta, error) {
	meta, err := s.store.GetReport(ctx, id)
	if err != nil || meta.UserID != userID {
		return nil, ErrNotFound
	}
	return meta, nil
}

// List returns the user's reports, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.ReportMeta, error) {
	return s.store.ListReports(ctx, userID, limit, offset)
}

// Delete removes a report and, in S3 mode, its object.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	meta, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if s.blobStore != nil && meta.ObjectKey != nil {
		// Metadata removal matters more than the orphaned object.
		if err := s.blobStore.DeleteObject(ctx, *meta.ObjectKey); err != nil {
			log.Printf("WARNING: failed to delete report object %s: %v", *meta.ObjectKey, err)
		}
	}

	return s.store.DeleteReport(ctx, id)
}

// DownloadURL returns where the client can fetch the rendered file. Local
// mode points at the download endpoint, S3 mode presigns the object.
func (s *Service) DownloadURL(ctx context.Context, userID, id uuid.UUID, baseURL string) (string, error) {
	meta, err := s.Get(ctx, userID, id)
	if err != nil {
		return "", err
	}

	if s.blobStore == nil || meta.ObjectKey == nil {
		return fmt.Sprintf("%s/v1/reports/%s/download", strings.TrimSuffix(baseURL, "/"), id), nil
	}

	url, err := s.blobStore.PresignGet(ctx, *meta.ObjectKey, s.presignTTL)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

// Download returns the rendered bytes and their content type.
func (s *Service) Download(ctx context.Context, userID, id uuid.UUID) ([]byte, string, error) {
	meta, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}

	if s.blobStore == nil || meta.ObjectKey == nil {
		return meta.Data, contentType(meta.Format), nil
	}

	data, err := s.blobStore.GetObject(ctx, *meta.ObjectKey)
	if err != nil {
		return nil, "", fmt.Errorf("fetch report object: %w", err)
	}
	return data, contentType(meta.Format), nil
}

func (s *Service) collect(ctx context.Context, userID uuid.UUID, fromStr, toStr string, from, to time.Time) (rangeData, error) {
	var data rangeData

	logs, err := s.store.ListHealthLogs(ctx, userID, fromStr, toStr)
	if err != nil {
		return data, fmt.Errorf("fetch health logs: %w", err)
	}
	data.logs = logs

	symptoms, err := s.store.ListSymptoms(ctx, userID, 0, 0)
	if err != nil {
		return data, fmt.Errorf("fetch symptoms: %w", err)
	}
	end := to.AddDate(0, 0, 1)
	for _, sym := range symptoms {
		if !sym.LoggedAt.Before(from) && sym.LoggedAt.Before(end) {
			data.symptoms = append(data.symptoms, sym)
		}
	}

	appointments, err := s.store.ListAppointmentsByPatient(ctx, userID, 0, 0)
	if err != nil {
		return data, fmt.Errorf("fetch appointments: %w", err)
	}
	for _, a := range appointments {
		if !a.ScheduledAt.Before(from) && a.ScheduledAt.Before(end) {
			data.appointments = append(data.appointments, a)
		}
	}

	return data, nil
}

func contentType(format string) string {
	if format == FormatCSV {
		return "text/csv"
	}
	return "application/pdf"
}
