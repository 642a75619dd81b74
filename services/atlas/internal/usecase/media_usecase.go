package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"atlas/pkg/logger"
	"atlas/pkg/s3"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/entity"
)

const MsgFileTooLarge = "El archivo es demasiado grande (máx. 5MB)"

// ObjectStorage is the part of the S3 client the media flow uses.
type ObjectStorage interface {
	UploadFile(key string, body io.Reader, contentType string) (string, error)
}

type FileInput struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type MediaUseCase interface {
	Upload(ctx context.Context, userID string, file FileInput) (*entity.UploadedFile, error)
}

type mediaUseCase struct {
	storage ObjectStorage
	logger  *logger.Logger
}

// NewMediaUseCase accepts a nil storage; uploads then keep the file name only.
func NewMediaUseCase(storage ObjectStorage, logger *logger.Logger) MediaUseCase {
	return &mediaUseCase{storage: storage, logger: logger}
}

func (uc *mediaUseCase) Upload(ctx context.Context, userID string, file FileInput) (*entity.UploadedFile, error) {
	if file.Name == "" {
		return nil, validation.Failure("file", "Selecciona un archivo")
	}
	if file.Size > s3.MaxUploadSize {
		return nil, validation.Failure("file", MsgFileTooLarge)
	}

	uploaded := &entity.UploadedFile{
		Name:        filepath.Base(file.Name),
		ContentType: file.ContentType,
		Size:        file.Size,
	}
	if uc.storage == nil {
		return uploaded, nil
	}

	key := s3.ObjectKey(userID, file.Name)
	url, err := uc.storage.UploadFile(key, file.Body, file.ContentType)
	if errors.Is(err, s3.ErrFileTooLarge) {
		return nil, validation.Failure("file", MsgFileTooLarge)
	}
	if err != nil {
		uc.logger.Error("Failed to upload %s for %s: %v", file.Name, userID, err)
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	uploaded.Key = key
	uploaded.URL = url
	return uploaded, nil
}
