package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
)

// problemRepo is the storage surface the importer needs.
type problemRepo interface {
	Create(ctx context.Context, p *domain.Problem) (*domain.Problem, error)
}

// Stats reports what an import run did.
type Stats struct {
	Files    int
	Imported int
	Skipped  int
	Invalid  int
}

// Run imports every *.json file under cfg.InputDir into the given user's
// collection. Invalid records are skipped (with a warning) when
// cfg.SkipInvalid is set, otherwise they abort the run. Duplicate titles
// are always skipped.
func Run(ctx context.Context, cfg *Config, repo problemRepo, userID uuid.UUID, logger *slog.Logger) (Stats, error) {
	var stats Stats

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return stats, fmt.Errorf("read input dir: %w", err)
	}

	now := time.Now().UTC()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(cfg.InputDir, entry.Name())

		file, err := readImportFile(path)
		if err != nil {
			return stats, err
		}
		stats.Files++

		for _, rec := range file.Problems {
			if err := ctx.Err(); err != nil {
				return stats, err
			}

			if err := Validate(rec); err != nil {
				stats.Invalid++
				if !cfg.SkipInvalid {
					return stats, fmt.Errorf("%s: %q: %w", entry.Name(), rec.Title, err)
				}
				logger.Warn("skipping invalid record",
					slog.String("file", entry.Name()),
					slog.String("title", rec.Title),
					slog.String("error", err.Error()),
				)
				continue
			}

			if cfg.DryRun {
				stats.Imported++
				continue
			}

			_, err := repo.Create(ctx, Map(userID, rec, now))
			if err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					stats.Skipped++
					continue
				}
				return stats, fmt.Errorf("insert %q: %w", rec.Title, err)
			}
			stats.Imported++
		}
	}

	logger.Info("import finished",
		slog.Int("files", stats.Files),
		slog.Int("imported", stats.Imported),
		slog.Int("skipped", stats.Skipped),
		slog.Int("invalid", stats.Invalid),
	)
	return stats, nil
}

func readImportFile(path string) (*ImportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	var file ImportFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return &file, nil
}
