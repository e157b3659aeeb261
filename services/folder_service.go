package services

import (
	"errors"
	"fmt"
	"time"

	"vaultdrive/models"
	"vaultdrive/storage"
	"vaultdrive/utils"
)

// ErrInvalidInput marks validation failures so handlers can answer 400
// instead of treating them as internal errors.
var ErrInvalidInput = errors.New("invalid input")

// BreadcrumbEntry is one step of the root-to-folder ancestor chain.
type BreadcrumbEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type FolderService struct {
	library *storage.Library
}

func NewFolderService(library *storage.Library) *FolderService {
	return &FolderService{library: library}
}

// CreateFolder creates a folder under the given parent (nil parent = root).
func (s *FolderService) CreateFolder(name string, parentID *string) (*models.Folder, error) {
	if err := utils.ValidateFolderName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if parentID != nil {
		if _, ok := s.library.FolderByID(*parentID); !ok {
			return nil, fmt.Errorf("parent folder %s: %w", *parentID, storage.ErrNotFound)
		}
	}

	folder := models.Folder{
		ID:          utils.NewID(),
		Name:        name,
		ParentID:    parentID,
		CreatedDate: time.Now().UTC(),
	}

	if err := s.library.AddFolder(folder); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return &folder, nil
}

func (s *FolderService) GetFolder(folderID string) (*models.Folder, error) {
	folder, ok := s.library.FolderByID(folderID)
	if !ok {
		return nil, fmt.Errorf("folder %s: %w", folderID, storage.ErrNotFound)
	}
	return &folder, nil
}

func (s *FolderService) RenameFolder(folderID, newName string) error {
	if err := utils.ValidateFolderName(newName); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.library.RenameFolder(folderID, newName)
}

func (s *FolderService) SetBackground(folderID, background string) error {
	if err := utils.ValidateBackground(background); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.library.SetFolderBackground(folderID, background)
}

func (s *FolderService) DeleteFolder(folderID string) error {
	return s.library.DeleteFolder(folderID)
}

// Breadcrumb walks parent pointers from the folder up to the root and returns
// the chain in root-first order. A dangling parent reference truncates the
// chain silently; a step cap of the collection size bounds the walk even when
// the parent graph is malformed.
func (s *FolderService) Breadcrumb(folderID string) ([]BreadcrumbEntry, error) {
	if _, ok := s.library.FolderByID(folderID); !ok {
		return nil, fmt.Errorf("folder %s: %w", folderID, storage.ErrNotFound)
	}

	maxSteps := s.library.FolderCount()
	visited := make(map[string]bool, maxSteps)

	chain := []BreadcrumbEntry{}
	current := &folderID
	for steps := 0; current != nil && steps < maxSteps; steps++ {
		if visited[*current] {
			utils.LogWarning(fmt.Sprintf("cyclic parent reference at folder %s, truncating breadcrumb", *current))
			break
		}
		visited[*current] = true

		folder, ok := s.library.FolderByID(*current)
		if !ok {
			break
		}
		chain = append([]BreadcrumbEntry{{ID: folder.ID, Name: folder.Name}}, chain...)
		current = folder.ParentID
	}

	return chain, nil
}

// ChildFolders returns the direct child folders in insertion order. A nil
// folderID selects the root level.
func (s *FolderService) ChildFolders(folderID *string) []models.Folder {
	_, folders := s.library.Snapshot()

	children := []models.Folder{}
	for _, f := range folders {
		if f.HasParent(folderID) {
			children = append(children, f)
		}
	}
	return children
}

// ChildFiles returns the direct child files in insertion order.
func (s *FolderService) ChildFiles(folderID *string) []models.File {
	files, _ := s.library.Snapshot()

	children := []models.File{}
	for _, f := range files {
		if f.InFolder(folderID) {
			children = append(children, f)
		}
	}
	return children
}
