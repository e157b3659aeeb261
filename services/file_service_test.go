package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"

	"vaultdrive/storage"
	"vaultdrive/utils"
)

type testUpload struct {
	name    string
	content string
}

func makeFileHeaders(t *testing.T, uploads []testUpload) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, u := range uploads {
		part, err := mw.CreateFormFile("files[]", u.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(u.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["files[]"]
}

func TestUploadStoresDataURIPayload(t *testing.T) {
	lib := newTestLibrary(t)
	svc := NewFileService(lib, 10<<20)

	result, err := svc.UploadFiles(context.Background(), makeFileHeaders(t, []testUpload{
		{name: "a.txt", content: "hello"},
	}), nil)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)

	files, _ := lib.Snapshot()
	require.Len(t, files, 1)
	require.Equal(t, "a.txt", files[0].Name)
	require.Equal(t, int64(5), files[0].Size)
	require.Nil(t, files[0].FolderID)

	_, payload, err := utils.DecodeDataURI(files[0].Data)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), payload)
}

func TestUploadPreservesSelectionOrder(t *testing.T) {
	lib := newTestLibrary(t)
	svc := NewFileService(lib, 10<<20)

	_, err := svc.UploadFiles(context.Background(), makeFileHeaders(t, []testUpload{
		{name: "a.txt", content: "1"},
		{name: "b.txt", content: "2"},
	}), nil)
	require.NoError(t, err)

	_, err = svc.UploadFiles(context.Background(), makeFileHeaders(t, []testUpload{
		{name: "c.txt", content: "3"},
	}), nil)
	require.NoError(t, err)

	files, _ := lib.Snapshot()
	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	// Batches are prepended; the batch itself keeps selection order.
	require.Equal(t, []string{"c.txt", "a.txt", "b.txt"}, names)
}

func TestUploadIntoFolder(t *testing.T) {
	lib := newTestLibrary(t)
	svc := NewFileService(lib, 10<<20)

	docs := seedFolder(t, lib, "d1", "Docs", nil)

	_, err := svc.UploadFiles(context.Background(), makeFileHeaders(t, []testUpload{
		{name: "a.txt", content: "hello"},
	}), &docs.ID)
	require.NoError(t, err)

	files, _ := lib.Snapshot()
	require.Equal(t, docs.ID, *files[0].FolderID)
}

func TestUploadIntoUnknownFolder(t *testing.T) {
	svc := NewFileService(newTestLibrary(t), 10<<20)

	_, err := svc.UploadFiles(context.Background(), makeFileHeaders(t, []testUpload{
		{name: "a.txt", content: "hello"},
	}), strPtr("missing"))
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	lib := newTestLibrary(t)
	svc := NewFileService(lib, 3)

	_, err := svc.UploadFiles(context.Background(), makeFileHeaders(t, []testUpload{
		{name: "a.txt", content: "hello"},
	}), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "exceeds maximum allowed size")

	files, _ := lib.Snapshot()
	require.Empty(t, files)
}

func TestUploadHonorsCanceledContext(t *testing.T) {
	svc := NewFileService(newTestLibrary(t), 10<<20)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.UploadFiles(ctx, makeFileHeaders(t, []testUpload{
		{name: "a.txt", content: "hello"},
	}), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDownloadFileDecodesPayload(t *testing.T) {
	lib := newTestLibrary(t)
	svc := NewFileService(lib, 10<<20)

	seedFile(t, lib, "f1", "a.txt", nil, "hello")

	name, mimeType, payload, err := svc.DownloadFile("f1")
	require.NoError(t, err)
	require.Equal(t, "a.txt", name)
	require.Equal(t, "text/plain", mimeType)
	require.Equal(t, []byte("hello"), payload)
}

func TestDeleteFile(t *testing.T) {
	lib := newTestLibrary(t)
	svc := NewFileService(lib, 10<<20)

	seedFile(t, lib, "f1", "a.txt", nil, "hello")
	require.NoError(t, svc.DeleteFile("f1"))
	require.ErrorIs(t, svc.DeleteFile("f1"), storage.ErrNotFound)
}
