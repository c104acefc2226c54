package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"speaky-backend/dto/req"
	"speaky-backend/dto/res"
	"speaky-backend/enum"
	"speaky-backend/exception"
)

type UploadUsecaseImpl struct {
	Uploader Uploader
	*validator.Validate
	*logrus.Logger
}

func NewUploadUsecase(uploader Uploader, validate *validator.Validate, logger *logrus.Logger) UploadUsecase {
	return &UploadUsecaseImpl{Uploader: uploader, Validate: validate, Logger: logger}
}

func (uc *UploadUsecaseImpl) Upload(ctx context.Context, request *req.UploadRequest) (res.UploadResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.UploadResponse{}, fmt.Errorf("%w: %v", exception.ErrValidation, err)
	}

	body, err := base64.StdEncoding.DecodeString(request.File)
	if err != nil {
		return res.UploadResponse{}, exception.Validationf("file is not valid base64")
	}
	if len(body) == 0 {
		return res.UploadResponse{}, exception.Validationf("no file data provided")
	}

	kind := enum.UploadType(request.Type)
	objectKey := fmt.Sprintf("speaky/%ss/%s_%s.%s",
		kind, request.UserID, time.Now().Format("20060102_150405"), kind.Ext())

	if err := uc.Uploader.Put(ctx, objectKey, body, kind.ContentType()); err != nil {
		uc.Logger.WithError(err).Error("failed to upload object")
		return res.UploadResponse{}, exception.Storage(err)
	}

	return res.UploadResponse{URL: uc.Uploader.PublicURL(objectKey)}, nil
}
