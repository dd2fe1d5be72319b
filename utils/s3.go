package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"mime"
	"os"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var s3Client *s3.Client

// ErrUploadsDisabled is returned when no S3 bucket is configured.
var ErrUploadsDisabled = errors.New("image uploads not configured")

// ErrInvalidImage marks a malformed data URL, a client error rather than
// an upload failure.
var ErrInvalidImage = errors.New("invalid image data")

// InitS3 sets up the S3 client. Image uploads are optional: with no
// S3_BUCKET the server runs fine and upload calls fail cleanly.
func InitS3() {
	if os.Getenv("S3_BUCKET") == "" {
		log.Println("S3_BUCKET not set, drink image uploads disabled")
		return
	}

	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION")
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// UploadBase64ImageToS3 stores a "data:<mime>;base64,<data>" image under
// drink-images/ and returns its public URL. The payload is validated
// before the client check so a bad request reads as one even when
// uploads are disabled.
func UploadBase64ImageToS3(base64Data, filenamePrefix string) (string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: expected a data URL", ErrInvalidImage)
	}
	meta := parts[0]
	data := parts[1]

	mediaType := strings.SplitN(meta, ":", 2)
	if len(mediaType) != 2 {
		return "", fmt.Errorf("%w: expected a data URL", ErrInvalidImage)
	}
	contentType := strings.SplitN(mediaType[1], ";", 2)[0] // "image/png"

	exts, _ := mime.ExtensionsByType(contentType)
	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if len(exts) > 0 {
			ext = exts[0]
		} else {
			sub := strings.SplitN(contentType, "/", 2)
			if len(sub) == 2 {
				ext = "." + sub[1]
			}
		}
	}

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	if s3Client == nil {
		return "", ErrUploadsDisabled
	}

	key := fmt.Sprintf("drink-images/%s-%d%s",
		filenamePrefix,
		time.Now().UnixNano(),
		ext,
	)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	if cfURL := os.Getenv("CLOUDFRONT_URL"); cfURL != "" {
		return fmt.Sprintf("%s/%s", cfURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", os.Getenv("S3_BUCKET"), key), nil
}
