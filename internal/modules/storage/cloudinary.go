package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	cldconfig "github.com/cloudinary/cloudinary-go/v2/config"
	appcfg "github.com/yaritu/core/internal/config"
)

// cloudinaryStorage uploads through the Cloudinary API, which performs
// its own transformation and storage and returns its own URL scheme.
type cloudinaryStorage struct {
	uploader *uploader.API
}

func newCloudinaryStorage(opts appcfg.CloudinaryConfig) (*cloudinaryStorage, error) {
	if opts.CloudName == "" || opts.APIKey == "" || opts.APISecret == "" {
		return nil, fmt.Errorf("incomplete cloudinary config: cloud_name/api_key/api_secret are required")
	}
	cfg, err := cldconfig.NewFromParams(opts.CloudName, opts.APIKey, opts.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, fmt.Errorf("cloudinary uploader: %w", err)
	}
	return &cloudinaryStorage{uploader: up}, nil
}

func (c *cloudinaryStorage) Provider() string { return "cloudinary" }

func (c *cloudinaryStorage) Put(ctx context.Context, obj Object) (string, error) {
	folder := strings.Trim(strings.TrimSpace(obj.Folder), "/")
	result, err := c.uploader.Upload(ctx, obj.Body, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload: empty url in response")
	}
	return result.SecureURL, nil
}
