package uploads

import (
	"time"

	"github.com/google/uuid"
)

// Response is the JSON shape of one upload.
type Response struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	DownloadURL string    `json:"download_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListResponse is the GET /v1/uploads body.
type ListResponse struct {
	Uploads []Response `json:"uploads"`
}
