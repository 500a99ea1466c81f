package services

import (
	"context"
	"flight-parser/domain"
	"flight-parser/domain/mimetypes"
	perrors "flight-parser/errors"
	"flight-parser/observability"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// HTTPDownloader fetches flight logs into temporary files.
// Every request is bounded by the client timeout, body included.
type HTTPDownloader struct {
	log         *slog.Logger
	client      *http.Client
	tmpDir      string
	maxFileSize int64
	metrics     *observability.Metrics
}

func NewHTTPDownloader(
	log *slog.Logger,
	timeout time.Duration,
	tmpDir string,
	maxFileSizeMb int,
	metrics *observability.Metrics,
) *HTTPDownloader {
	return &HTTPDownloader{
		log:         log,
		client:      &http.Client{Timeout: timeout},
		tmpDir:      tmpDir,
		maxFileSize: int64(maxFileSizeMb) * domain.MB,
		metrics:     metrics,
	}
}

// Download streams url into a new temporary file. The caller owns the file and
// must Remove it; on error nothing is left on disk.
func (d *HTTPDownloader) Download(ctx context.Context, url string) (*domain.TmpFile, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		d.metrics.Downloads.WithLabelValues("invalid_url").Inc()
		return nil, fmt.Errorf("%w: %w", perrors.ErrDownload, err)
	}

	d.log.Info("Starting flight log download", "url", url)
	response, err := d.client.Do(request)
	if err != nil {
		d.metrics.Downloads.WithLabelValues("transport_error").Inc()
		return nil, fmt.Errorf("%w: %w", perrors.ErrDownload, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		d.metrics.Downloads.WithLabelValues("http_error").Inc()
		return nil, fmt.Errorf("%w: remote host answered %d", perrors.ErrDownload, response.StatusCode)
	}
	if d.maxFileSize > 0 && response.ContentLength > d.maxFileSize {
		d.metrics.Downloads.WithLabelValues("too_large").Inc()
		return nil, fmt.Errorf("%w: file is too large: %d bytes (limit is %d)", perrors.ErrDownload, response.ContentLength, d.maxFileSize)
	}

	file, err := os.CreateTemp(d.tmpDir, domain.TmpFilePattern)
	if err != nil {
		return nil, fmt.Errorf("create temporary file: %w", err)
	}
	tmp := &domain.TmpFile{Path: file.Name()}
	completed := false
	defer func() {
		if !completed {
			_ = file.Close()
			if err := tmp.Remove(); err != nil {
				d.log.Warn("Unable to remove partial download", "path", tmp.Path, "error", err)
			}
		}
	}()

	var body io.Reader = response.Body
	if d.maxFileSize > 0 {
		body = io.LimitReader(response.Body, d.maxFileSize+1)
	}
	written, err := io.Copy(file, body)
	if err != nil {
		d.metrics.Downloads.WithLabelValues("transport_error").Inc()
		return nil, fmt.Errorf("%w: %w", perrors.ErrDownload, err)
	}
	if d.maxFileSize > 0 && written > d.maxFileSize {
		d.metrics.Downloads.WithLabelValues("too_large").Inc()
		return nil, fmt.Errorf("%w: file is too large (limit is %d bytes)", perrors.ErrDownload, d.maxFileSize)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("close temporary file: %w", err)
	}

	detected, err := mimetype.DetectFile(tmp.Path)
	if err != nil {
		return nil, fmt.Errorf("sniff temporary file: %w", err)
	}
	tmp.Size = written
	tmp.RawMimeType = detected.String()
	tmp.EffectiveMimeType = mimetypes.ToMIME(tmp.RawMimeType)
	completed = true

	d.metrics.Downloads.WithLabelValues("ok").Inc()
	d.metrics.DownloadBytes.Add(float64(written))
	d.log.Info("Download finished", "url", url, "size", written, "mime", tmp.RawMimeType)
	return tmp, nil
}
