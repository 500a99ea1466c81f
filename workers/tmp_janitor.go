package workers

import (
	"context"
	"flight-parser/domain"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// TmpJanitor removes downloaded flight logs left behind by a crashed or killed
// process. Files younger than maxAge may still be in use and are kept.
type TmpJanitor struct {
	log      *slog.Logger
	dir      string
	interval time.Duration
	maxAge   time.Duration
}

func NewTmpJanitor(log *slog.Logger, dir string, interval, maxAge time.Duration) *TmpJanitor {
	if dir == "" {
		dir = os.TempDir()
	}
	return &TmpJanitor{log: log, dir: dir, interval: interval, maxAge: maxAge}
}

func (j *TmpJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		if _, err := j.Sweep(time.Now()); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Sweep deletes the stale flight logs and returns how many were removed.
func (j *TmpJanitor) Sweep(now time.Time) (int, error) {
	paths, err := filepath.Glob(filepath.Join(j.dir, domain.TmpFilePattern))
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", j.dir, err)
	}
	removed := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() || now.Sub(info.ModTime()) < j.maxAge {
			continue
		}
		tmp := domain.TmpFile{Path: path}
		if err := tmp.Remove(); err != nil {
			j.log.Warn("Unable to remove stale flight log", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		j.log.Info("Stale flight logs removed", "dir", j.dir, "count", removed)
	}
	return removed, nil
}
