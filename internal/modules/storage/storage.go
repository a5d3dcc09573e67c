// Package storage abstracts the managed object-storage backends behind
// one capability: store bytes, return a publicly addressable URL.
// Callers must treat the returned URL as opaque — the two backends use
// entirely different URL schemes.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yaritu/core/internal/config"
)

// ErrNotConfigured is returned when no backend is selected.
var ErrNotConfigured = errors.New("storage backend is not configured")

// Object is one binary payload to store.
type Object struct {
	Folder      string // logical folder/category hint, may be empty
	Filename    string // original client filename, used for the key
	ContentType string
	Body        io.Reader
	Size        int64
}

// ObjectStorage stores an object durably and returns its URL.
type ObjectStorage interface {
	// Put uploads the object and returns a stable public URL.
	Put(ctx context.Context, obj Object) (string, error)
	// Provider names the backend for logging and response payloads.
	Provider() string
}

// New selects a backend from configuration. It returns ErrNotConfigured
// when no provider is set so the upload endpoint can answer with a
// server-configuration error instead of panicking at startup.
func New(cfg config.StorageConfig) (ObjectStorage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "s3":
		return newS3Storage(cfg.S3)
	case "cloudinary":
		return newCloudinaryStorage(cfg.Cloudinary)
	case "":
		return nil, ErrNotConfigured
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// objectKey builds a collision-resistant key under the folder hint so
// repeated uploads of the same filename never overwrite each other.
func objectKey(folder, filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}
	name = strings.ReplaceAll(name, " ", "_")
	nonce := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	key := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), nonce, name)
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder != "" {
		key = folder + "/" + key
	}
	return key
}
