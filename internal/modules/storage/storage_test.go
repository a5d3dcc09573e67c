package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaritu/core/internal/config"
)

func TestNew_NoProvider(t *testing.T) {
	_, err := New(config.StorageConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(config.StorageConfig{Provider: "ftp"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotConfigured)
}

func TestNew_IncompleteS3Config(t *testing.T) {
	_, err := New(config.StorageConfig{Provider: "s3"})
	assert.Error(t, err)
}

func TestObjectKey(t *testing.T) {
	key := objectKey("products", "my ring.png")
	assert.True(t, strings.HasPrefix(key, "products/"))
	assert.True(t, strings.HasSuffix(key, "-my_ring.png"))
	assert.NotContains(t, key, " ")
}

func TestObjectKey_NoFolder(t *testing.T) {
	key := objectKey("", "ring.png")
	assert.NotContains(t, key, "/")
	assert.True(t, strings.HasSuffix(key, "-ring.png"))
}

func TestObjectKey_StripsClientPath(t *testing.T) {
	key := objectKey("products", "../../etc/passwd")
	assert.True(t, strings.HasPrefix(key, "products/"))
	assert.True(t, strings.HasSuffix(key, "-passwd"))
	assert.NotContains(t, key, "..")
}

func TestObjectKey_EmptyFilename(t *testing.T) {
	key := objectKey("", "   ")
	assert.True(t, strings.HasSuffix(key, "-upload"))
}

func TestS3PublicURL_Default(t *testing.T) {
	s := &s3Storage{bucket: "yaritu-media", region: "ap-south-1"}
	url := s.publicURL("products/1-ring.png")
	assert.Equal(t, "https://yaritu-media.s3.ap-south-1.amazonaws.com/products/1-ring.png", url)
}

func TestS3PublicURL_CustomDomain(t *testing.T) {
	s := &s3Storage{bucket: "yaritu-media", region: "ap-south-1", customDomain: "https://cdn.yaritu.com"}
	url := s.publicURL("products/1-ring.png")
	assert.Equal(t, "https://cdn.yaritu.com/products/1-ring.png", url)
}

func TestEncodeObjectKey_EscapesSegmentsNotSlashes(t *testing.T) {
	assert.Equal(t, "products/1-ring%231.png", encodeObjectKey("products/1-ring#1.png"))
}
