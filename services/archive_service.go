package services

import (
	"archive/zip"
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"vaultdrive/models"
	"vaultdrive/storage"
	"vaultdrive/utils"
)

type ArchiveService struct {
	library *storage.Library
}

func NewArchiveService(library *storage.Library) *ArchiveService {
	return &ArchiveService{library: library}
}

// treeSnapshot indexes one consistent copy of both collections by parent so
// the recursive walk costs the size of the exported subtree, not a scan per
// level.
type treeSnapshot struct {
	filesByFolder   map[string][]models.File
	foldersByParent map[string][]models.Folder
}

func (s *ArchiveService) snapshot() *treeSnapshot {
	files, folders := s.library.Snapshot()

	snap := &treeSnapshot{
		filesByFolder:   make(map[string][]models.File),
		foldersByParent: make(map[string][]models.Folder),
	}
	for _, f := range files {
		if f.FolderID != nil {
			snap.filesByFolder[*f.FolderID] = append(snap.filesByFolder[*f.FolderID], f)
		}
	}
	for _, f := range folders {
		if f.ParentID != nil {
			snap.foldersByParent[*f.ParentID] = append(snap.foldersByParent[*f.ParentID], f)
		}
	}
	return snap
}

// DownloadFolder streams the folder's subtree as a zip directly to the HTTP
// response. Entry paths mirror the folder tree; files come before subfolders
// at each level.
func (s *ArchiveService) DownloadFolder(ctx context.Context, w http.ResponseWriter, folderID string) error {
	folder, ok := s.library.FolderByID(folderID)
	if !ok {
		return fmt.Errorf("folder %s: %w", folderID, storage.ErrNotFound)
	}

	zipFileName := strings.ReplaceAll(folder.Name, " ", "_") + ".zip"
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", zipFileName))
	w.Header().Set("Cache-Control", "no-cache")

	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()

	visited := map[string]bool{folderID: true}
	return s.addFolderToZip(ctx, zipWriter, s.snapshot(), folderID, "", visited)
}

// addFolderToZip writes the files of one folder, then recurses into its
// subfolders. The visited set bounds the walk should a malformed parent graph
// loop back on itself.
func (s *ArchiveService) addFolderToZip(ctx context.Context, zipWriter *zip.Writer, snap *treeSnapshot, folderID, currentPath string, visited map[string]bool) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	for _, file := range snap.filesByFolder[folderID] {
		zipPath := path.Join(currentPath, file.Name)

		_, payload, err := utils.DecodeDataURI(file.Data)
		if err != nil {
			utils.LogError("skipping file with unreadable payload: "+file.Name, err)
			continue
		}

		entry, err := zipWriter.Create(zipPath)
		if err != nil {
			return fmt.Errorf("failed to create zip entry %s: %w", zipPath, err)
		}
		if _, err := entry.Write(payload); err != nil {
			return fmt.Errorf("failed to write zip entry %s: %w", zipPath, err)
		}
	}

	for _, subFolder := range snap.foldersByParent[folderID] {
		if visited[subFolder.ID] {
			utils.LogWarning("cyclic parent reference at folder " + subFolder.Name + ", skipping")
			continue
		}
		visited[subFolder.ID] = true

		subFolderPath := path.Join(currentPath, subFolder.Name)

		// Explicit directory entry so empty folders survive the round trip.
		if _, err := zipWriter.Create(subFolderPath + "/"); err != nil {
			return fmt.Errorf("failed to create folder entry %s: %w", subFolderPath, err)
		}

		if err := s.addFolderToZip(ctx, zipWriter, snap, subFolder.ID, subFolderPath, visited); err != nil {
			return fmt.Errorf("failed to process subfolder %s: %w", subFolder.Name, err)
		}
	}

	return nil
}
