package blob

import (
	"fmt"
	"strings"

	appcfg "github.com/ayursutra/backend/internal/config"
)

type Logger interface {
	Printf(format string, v ...any)
}

// New builds a blob store for the configured mode. A nil store means local
// mode: report bytes stay in the metadata row.
func New(cfg *appcfg.Config, logger Logger) (Store, string, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.BlobMode))
	if mode == "" {
		mode = appcfg.BlobModeLocal
	}

	switch mode {
	case appcfg.BlobModeLocal:
		logf(logger, "INFO blob: mode=local")
		return nil, appcfg.BlobModeLocal, nil

	case appcfg.BlobModeS3:
		if !cfg.S3.IsConfigured() {
			missing := cfg.S3.MissingRequired()
			logf(logger, "WARNING blob.s3: incomplete config, missing=%v, fallback=local", missing)
			logf(logger, "INFO blob.s3: %s", cfg.S3.DiagnosticsSummary())
			return nil, appcfg.BlobModeLocal, nil
		}

		store, err := NewS3Store(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.Bucket, cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey)
		if err != nil {
			return nil, "", fmt.Errorf("BLOB_MODE=s3 init failed: %w", err)
		}

		logf(logger, "INFO blob: mode=s3 %s", cfg.S3.DiagnosticsSummary())
		return store, appcfg.BlobModeS3, nil

	default:
		return nil, "", fmt.Errorf("unsupported blob mode: %s", mode)
	}
}

func logf(logger Logger, format string, v ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, v...)
}
