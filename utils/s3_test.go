package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The S3 client is never initialized in tests, so only the validation
// paths are reachable; upload itself needs a bucket.

func TestUploadRejectsMalformedDataURL(t *testing.T) {
	_, err := UploadBase64ImageToS3("not a data url", "test")
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = UploadBase64ImageToS3("image/png;base64,AAAA", "test") // missing data: scheme
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = UploadBase64ImageToS3("data:image/png;base64,!!!not-base64!!!", "test")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestUploadDisabledWithoutBucket(t *testing.T) {
	// well-formed payload, no client configured
	_, err := UploadBase64ImageToS3("data:image/png;base64,iVBORw0KGgo=", "test")
	assert.ErrorIs(t, err, ErrUploadsDisabled)
}
