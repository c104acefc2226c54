package usecase_test

import (
	"context"
	"encoding/base64"
	"errors"
	"regexp"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speaky-backend/dto/req"
	"speaky-backend/exception"
	"speaky-backend/testutil"
	"speaky-backend/usecase"
)

type fakeUploader struct {
	objectKey   string
	contentType string
	body        []byte
	err         error
}

func (f *fakeUploader) Put(ctx context.Context, objectKey string, body []byte, contentType string) error {
	f.objectKey = objectKey
	f.body = body
	f.contentType = contentType
	return f.err
}

func (f *fakeUploader) PublicURL(objectKey string) string {
	return "https://cdn.test/" + objectKey
}

func newUploadUsecase(uploader usecase.Uploader) usecase.UploadUsecase {
	return usecase.NewUploadUsecase(uploader, validator.New(), testutil.NewTestLogger())
}

func TestUpload_BuildsKeyAndURL(t *testing.T) {
	fake := &fakeUploader{}
	uc := newUploadUsecase(fake)

	payload := base64.StdEncoding.EncodeToString([]byte("image-bytes"))
	result, err := uc.Upload(context.Background(), &req.UploadRequest{
		UserID: "u1",
		Type:   "avatar",
		File:   payload,
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^speaky/avatars/u1_\d{8}_\d{6}\.jpg$`), fake.objectKey)
	assert.Equal(t, "image/jpeg", fake.contentType)
	assert.Equal(t, []byte("image-bytes"), fake.body)
	assert.Equal(t, "https://cdn.test/"+fake.objectKey, result.URL)
}

func TestUpload_VoiceContentType(t *testing.T) {
	fake := &fakeUploader{}
	uc := newUploadUsecase(fake)

	payload := base64.StdEncoding.EncodeToString([]byte("opus"))
	_, err := uc.Upload(context.Background(), &req.UploadRequest{
		UserID: "u1",
		Type:   "voice",
		File:   payload,
	})
	require.NoError(t, err)
	assert.Equal(t, "audio/ogg", fake.contentType)
	assert.Regexp(t, `\.ogg$`, fake.objectKey)
}

func TestUpload_RejectsBadInput(t *testing.T) {
	fake := &fakeUploader{}
	uc := newUploadUsecase(fake)
	ctx := context.Background()

	_, err := uc.Upload(ctx, &req.UploadRequest{UserID: "u1", Type: "avatar", File: "%%% not base64 %%%"})
	assert.True(t, errors.Is(err, exception.ErrValidation))

	_, err = uc.Upload(ctx, &req.UploadRequest{UserID: "u1", Type: "gif", File: "aGk="})
	assert.True(t, errors.Is(err, exception.ErrValidation))
}

func TestUpload_StorageFailureIsOpaque(t *testing.T) {
	fake := &fakeUploader{err: errors.New("bucket unavailable")}
	uc := newUploadUsecase(fake)

	payload := base64.StdEncoding.EncodeToString([]byte("x"))
	_, err := uc.Upload(context.Background(), &req.UploadRequest{UserID: "u1", Type: "photo", File: payload})

	var storageErr *exception.StorageError
	assert.True(t, errors.As(err, &storageErr))
}
