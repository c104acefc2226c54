package usecase

import (
	"context"

	"speaky-backend/dto/req"
	"speaky-backend/dto/res"
)

// Uploader is the object-storage collaborator. The returned URL is treated
// as an opaque string everywhere else.
type Uploader interface {
	Put(ctx context.Context, objectKey string, body []byte, contentType string) error
	PublicURL(objectKey string) string
}

type UploadUsecase interface {
	Upload(ctx context.Context, request *req.UploadRequest) (res.UploadResponse, error)
}
