package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/mealsnap/backend/config"
)

// ImageService stores captured meal photos in S3 so detection can work from
// a stable URL.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates an ImageService.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadMealPhoto stores the photo under a fresh key and returns its public
// URL — the stable URL handed to vision inference.
func (s *ImageService) UploadMealPhoto(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("meals/%s/%s%s", userID, uuid.New().String(), path.Ext(filename))

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload meal photo: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key), nil
}
