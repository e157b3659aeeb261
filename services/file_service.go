package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"time"

	"vaultdrive/models"
	"vaultdrive/storage"
	"vaultdrive/utils"
)

type FileService struct {
	library     *storage.Library
	maxFileSize int64
}

func NewFileService(library *storage.Library, maxFileSize int64) *FileService {
	return &FileService{
		library:     library,
		maxFileSize: maxFileSize,
	}
}

type UploadResult struct {
	Uploaded []FileInfo `json:"uploaded"`
	Count    int        `json:"count"`
}

// UploadFiles reads the parts sequentially in selection order, encodes each
// payload as a data URI and prepends the batch to the collection in that same
// order. The walk stops cleanly when the request context is canceled.
func (s *FileService) UploadFiles(ctx context.Context, headers []*multipart.FileHeader, folderID *string) (*UploadResult, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("no files provided")
	}

	if folderID != nil {
		if _, ok := s.library.FolderByID(*folderID); !ok {
			return nil, fmt.Errorf("folder %s: %w", *folderID, storage.ErrNotFound)
		}
	}

	batch := make([]models.File, 0, len(headers))
	for _, header := range headers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("upload canceled: %w", err)
		}

		if err := utils.ValidateFileHeader(header, s.maxFileSize); err != nil {
			return nil, err
		}

		payload, err := readPart(header)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", header.Filename, err)
		}

		mimeType := partMimeType(header)
		batch = append(batch, models.File{
			ID:         utils.NewID(),
			Name:       header.Filename,
			Size:       int64(len(payload)),
			MimeType:   mimeType,
			UploadDate: time.Now().UTC(),
			Data:       utils.EncodeDataURI(mimeType, payload),
			FolderID:   folderID,
		})
	}

	if err := s.library.AddFiles(batch); err != nil {
		return nil, fmt.Errorf("failed to store files: %w", err)
	}

	result := &UploadResult{Count: len(batch)}
	for _, f := range batch {
		result.Uploaded = append(result.Uploaded, fileInfo(f))
	}
	return result, nil
}

// DownloadFile returns the decoded payload with its name and MIME type.
func (s *FileService) DownloadFile(fileID string) (string, string, []byte, error) {
	file, ok := s.library.FileByID(fileID)
	if !ok {
		return "", "", nil, fmt.Errorf("file %s: %w", fileID, storage.ErrNotFound)
	}

	mimeType, payload, err := utils.DecodeDataURI(file.Data)
	if err != nil {
		return "", "", nil, fmt.Errorf("stored payload for %s is unreadable: %w", file.Name, err)
	}
	return file.Name, mimeType, payload, nil
}

func (s *FileService) DeleteFile(fileID string) error {
	return s.library.DeleteFile(fileID)
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	part, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer part.Close()

	return io.ReadAll(part)
}

func partMimeType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	if byExt := mime.TypeByExtension(filepath.Ext(header.Filename)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
