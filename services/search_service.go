package services

import (
	"fmt"
	"strings"
	"time"

	"vaultdrive/models"
	"vaultdrive/storage"
)

// FileInfo is a listing entry: file metadata plus its download endpoint,
// without the inline payload.
type FileInfo struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"` // Always "file"
	MimeType         string    `json:"mime_type"`
	Size             int64     `json:"size"`
	UploadDate       time.Time `json:"upload_date"`
	DownloadEndpoint string    `json:"download_endpoint"`
}

type FolderInfo struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"` // Always "folder"
	ParentID   *string `json:"parent_id,omitempty"`
	Background string  `json:"background"`
}

type ContentCounts struct {
	Folders int `json:"folders"`
	Files   int `json:"files"`
}

// VisibleContents is the projection rendered for one folder level: direct
// children only, folders before files, each filtered by the query.
type VisibleContents struct {
	Folder  *FolderInfo   `json:"folder,omitempty"` // nil at the root level
	Folders []FolderInfo  `json:"folders"`
	Files   []FileInfo    `json:"files"`
	Counts  ContentCounts `json:"counts"`
}

type SearchService struct {
	library *storage.Library
	folders *FolderService
}

func NewSearchService(library *storage.Library, folders *FolderService) *SearchService {
	return &SearchService{library: library, folders: folders}
}

// Contents computes the visible subset for the current folder cursor (nil =
// root) and a free-text query: case-insensitive substring match on name,
// insertion order preserved. An empty query passes everything through.
func (s *SearchService) Contents(folderID *string, query string) (*VisibleContents, error) {
	var current *FolderInfo
	if folderID != nil {
		folder, ok := s.library.FolderByID(*folderID)
		if !ok {
			return nil, fmt.Errorf("folder %s: %w", *folderID, storage.ErrNotFound)
		}
		current = folderInfo(folder)
	}

	needle := strings.ToLower(query)

	folders := []FolderInfo{}
	for _, f := range s.folders.ChildFolders(folderID) {
		if matches(f.Name, needle) {
			folders = append(folders, *folderInfo(f))
		}
	}

	files := []FileInfo{}
	for _, f := range s.folders.ChildFiles(folderID) {
		if matches(f.Name, needle) {
			files = append(files, fileInfo(f))
		}
	}

	return &VisibleContents{
		Folder:  current,
		Folders: folders,
		Files:   files,
		Counts: ContentCounts{
			Folders: len(folders),
			Files:   len(files),
		},
	}, nil
}

func matches(name, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), needle)
}

func folderInfo(f models.Folder) *FolderInfo {
	return &FolderInfo{
		ID:         f.ID,
		Name:       f.Name,
		Type:       "folder",
		ParentID:   f.ParentID,
		Background: f.EffectiveBackground(),
	}
}

func fileInfo(f models.File) FileInfo {
	return FileInfo{
		ID:               f.ID,
		Name:             f.Name,
		Type:             "file",
		MimeType:         f.MimeType,
		Size:             f.Size,
		UploadDate:       f.UploadDate,
		DownloadEndpoint: fmt.Sprintf("/api/files/%s/download", f.ID),
	}
}
