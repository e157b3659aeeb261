package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vaultdrive/models"
	"vaultdrive/storage"
)

func newSearchService(lib *storage.Library) *SearchService {
	return NewSearchService(lib, NewFolderService(lib))
}

func TestContentsFiltersCaseInsensitive(t *testing.T) {
	lib := newTestLibrary(t)
	svc := newSearchService(lib)

	docs := seedFolder(t, lib, "d1", "Docs", nil)
	seedFolder(t, lib, "d2", "Reports", &docs.ID)
	seedFolder(t, lib, "d3", "Archive", &docs.ID)
	seedFile(t, lib, "f1", "REPORT-final.pdf", &docs.ID, "x")
	seedFile(t, lib, "f2", "notes.txt", &docs.ID, "y")

	contents, err := svc.Contents(&docs.ID, "repo")
	require.NoError(t, err)
	require.Len(t, contents.Folders, 1)
	require.Equal(t, "Reports", contents.Folders[0].Name)
	require.Len(t, contents.Files, 1)
	require.Equal(t, "REPORT-final.pdf", contents.Files[0].Name)
	require.Equal(t, ContentCounts{Folders: 1, Files: 1}, contents.Counts)
}

func TestContentsNoMatchesYieldsEmptySequences(t *testing.T) {
	lib := newTestLibrary(t)
	svc := newSearchService(lib)

	docs := seedFolder(t, lib, "d1", "Docs", nil)
	seedFile(t, lib, "f1", "notes.txt", &docs.ID, "y")

	contents, err := svc.Contents(&docs.ID, "zzz")
	require.NoError(t, err)
	require.NotNil(t, contents.Folders)
	require.NotNil(t, contents.Files)
	require.Empty(t, contents.Folders)
	require.Empty(t, contents.Files)
}

func TestContentsRootLevel(t *testing.T) {
	lib := newTestLibrary(t)
	svc := newSearchService(lib)

	seedFolder(t, lib, "d1", "Docs", nil)
	seedFile(t, lib, "f1", "root.txt", nil, "r")
	seedFile(t, lib, "f2", "nested.txt", strPtr("d1"), "n")

	contents, err := svc.Contents(nil, "")
	require.NoError(t, err)
	require.Nil(t, contents.Folder)
	require.Len(t, contents.Folders, 1)
	require.Len(t, contents.Files, 1)
	require.Equal(t, "root.txt", contents.Files[0].Name)
	require.Equal(t, "/api/files/f1/download", contents.Files[0].DownloadEndpoint)
}

func TestContentsReportsCurrentFolder(t *testing.T) {
	lib := newTestLibrary(t)
	svc := newSearchService(lib)

	docs := seedFolder(t, lib, "d1", "Docs", nil)

	contents, err := svc.Contents(&docs.ID, "")
	require.NoError(t, err)
	require.NotNil(t, contents.Folder)
	require.Equal(t, "Docs", contents.Folder.Name)
	require.Equal(t, models.DefaultBackground, contents.Folder.Background)
}

func TestContentsUnknownFolder(t *testing.T) {
	svc := newSearchService(newTestLibrary(t))

	_, err := svc.Contents(strPtr("missing"), "")
	require.ErrorIs(t, err, storage.ErrNotFound)
}
