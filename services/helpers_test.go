package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vaultdrive/models"
	"vaultdrive/storage"
	"vaultdrive/utils"
)

func newTestLibrary(t *testing.T) *storage.Library {
	t.Helper()
	lib, err := storage.Open(filepath.Join(t.TempDir(), "library.db"), models.RoleAdmin)
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })
	return lib
}

func seedFolder(t *testing.T, lib *storage.Library, id, name string, parentID *string) models.Folder {
	t.Helper()
	folder := models.Folder{
		ID:          id,
		Name:        name,
		ParentID:    parentID,
		CreatedDate: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, lib.AddFolder(folder))
	return folder
}

func seedFile(t *testing.T, lib *storage.Library, id, name string, folderID *string, content string) models.File {
	t.Helper()
	file := models.File{
		ID:         id,
		Name:       name,
		Size:       int64(len(content)),
		MimeType:   "text/plain",
		UploadDate: time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC),
		Data:       utils.EncodeDataURI("text/plain", []byte(content)),
		FolderID:   folderID,
	}
	require.NoError(t, lib.AddFiles([]models.File{file}))
	return file
}

func strPtr(s string) *string {
	return &s
}
