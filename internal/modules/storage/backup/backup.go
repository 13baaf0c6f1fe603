// Package backup dumps every content table to JSON, bundles the dumps into
// a zip archive and uploads it to S3-compatible storage.
package backup

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/smaranika/core/internal/config"
	"github.com/smaranika/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrDisabled = errors.New("backup is not configured")

type Service struct {
	db    *gorm.DB
	store *s3Store
	log   *zap.Logger
}

func NewService(ctx context.Context, db *gorm.DB, cfg config.BackupConfig, log *zap.Logger) (*Service, error) {
	s := &Service{db: db, log: log}
	if !cfg.Enable {
		return s, nil
	}
	store, err := newS3Store(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s.store = store
	return s, nil
}

func (s *Service) Enabled() bool { return s.store != nil }

// tableDump pairs an archive entry name with the model slice to marshal.
// The list mirrors the migration set minus sessions.
func dumps() []struct {
	name  string
	slice interface{}
} {
	return []struct {
		name  string
		slice interface{}
	}{
		{"videos.json", &[]models.Video{}},
		{"photos.json", &[]models.Photo{}},
		{"posters.json", &[]models.Poster{}},
		{"audios.json", &[]models.Audio{}},
		{"documents.json", &[]models.Document{}},
		{"speeches.json", &[]models.Speech{}},
		{"writings.json", &[]models.Writing{}},
		{"poems.json", &[]models.Poem{}},
		{"quotes.json", &[]models.Quote{}},
		{"news.json", &[]models.News{}},
		{"events.json", &[]models.MemorialEvent{}},
		{"locations.json", &[]models.Location{}},
		{"timeline.json", &[]models.TimelineEvent{}},
		{"tributes.json", &[]models.Tribute{}},
		{"options.json", &[]models.OptionModel{}},
	}
}

// Run builds the archive and uploads it. The object key embeds the UTC
// timestamp so archives sort chronologically.
func (s *Service) Run(ctx context.Context) (*ObjectInfo, error) {
	if s.store == nil {
		return nil, ErrDisabled
	}

	archive, err := s.buildArchive()
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("backup-%s.zip", time.Now().UTC().Format("20060102-150405"))
	if err := s.store.put(ctx, key, archive); err != nil {
		return nil, err
	}
	s.log.Info("backup uploaded",
		zap.String("key", key),
		zap.Int("bytes", len(archive)))

	return &ObjectInfo{
		Key:          s.store.prefix + key,
		Size:         int64(len(archive)),
		LastModified: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}, nil
}

// Latest reports the newest uploaded archive.
func (s *Service) Latest(ctx context.Context) (*ObjectInfo, error) {
	if s.store == nil {
		return nil, ErrDisabled
	}
	return s.store.latest(ctx)
}

func (s *Service) buildArchive() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, d := range dumps() {
		if err := s.db.Find(d.slice).Error; err != nil {
			return nil, fmt.Errorf("dump %s: %w", d.name, err)
		}
		data, err := json.MarshalIndent(d.slice, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", d.name, err)
		}
		w, err := zw.Create(d.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
