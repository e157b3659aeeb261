package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"vaultdrive/models"
	"vaultdrive/utils"
)

const (
	bucketName    = "library"
	filesKey      = "files"
	foldersKey    = "folders"
	roleKey       = "user_role"
	versionKey    = "schema_version"
	schemaVersion = "1"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrFolderNotEmpty = errors.New("folder is not empty")
)

// Library owns the file and folder collections and the role value. Each
// collection is held in memory and mirrored to bolt as one JSON blob on every
// mutation. A mutation computes the next state, persists it, and only then
// swaps it into memory, so a failed write leaves the caller's view unchanged.
type Library struct {
	mu sync.RWMutex
	db *bolt.DB

	files   []models.File
	folders []models.Folder
	role    models.Role

	fileIdx   map[string]int
	folderIdx map[string]int
}

// Open loads the library from the bolt file at path, creating it if missing.
// defaultRole applies when no role has been stored yet.
func Open(path string, defaultRole models.Role) (*Library, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", path, err)
	}

	lib := &Library{db: db, role: defaultRole}
	if err := lib.load(); err != nil {
		db.Close()
		return nil, err
	}
	return lib, nil
}

func (l *Library) Close() error {
	return l.db.Close()
}

func (l *Library) load() error {
	return l.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		if v := b.Get([]byte(versionKey)); v != nil && string(v) != schemaVersion {
			return fmt.Errorf("unsupported schema version %q (expected %q)", v, schemaVersion)
		}
		if err := b.Put([]byte(versionKey), []byte(schemaVersion)); err != nil {
			return fmt.Errorf("failed to write schema version: %w", err)
		}

		l.files = nil
		if raw := b.Get([]byte(filesKey)); raw != nil {
			if err := json.Unmarshal(raw, &l.files); err != nil {
				// Report-and-preserve: the broken blob is kept under a side
				// key instead of being overwritten by the next mutation.
				utils.LogError("stored file collection is unreadable, preserving it and starting empty", err)
				if perr := b.Put([]byte(filesKey+"_corrupt"), raw); perr != nil {
					return fmt.Errorf("failed to preserve corrupt file collection: %w", perr)
				}
				l.files = nil
			}
		}

		l.folders = nil
		if raw := b.Get([]byte(foldersKey)); raw != nil {
			if err := json.Unmarshal(raw, &l.folders); err != nil {
				utils.LogError("stored folder collection is unreadable, preserving it and starting empty", err)
				if perr := b.Put([]byte(foldersKey+"_corrupt"), raw); perr != nil {
					return fmt.Errorf("failed to preserve corrupt folder collection: %w", perr)
				}
				l.folders = nil
			}
		}

		if raw := b.Get([]byte(roleKey)); raw != nil {
			role, err := models.ParseRole(string(raw))
			if err != nil {
				utils.LogWarning(fmt.Sprintf("stored role %q is invalid, falling back to %q", raw, l.role))
			} else {
				l.role = role
			}
		}

		l.reindex()
		return nil
	})
}

func (l *Library) reindex() {
	l.fileIdx = make(map[string]int, len(l.files))
	for i, f := range l.files {
		l.fileIdx[f.ID] = i
	}
	l.folderIdx = make(map[string]int, len(l.folders))
	for i, f := range l.folders {
		l.folderIdx[f.ID] = i
	}
}

func (l *Library) putBlob(key string, value []byte) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(bucketName)).Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to persist %s: %w", key, err)
		}
		return nil
	})
}

func (l *Library) putJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return l.putBlob(key, data)
}

// ---------- Reads ----------

// Snapshot returns copies of both collections taken under one read lock.
func (l *Library) Snapshot() ([]models.File, []models.Folder) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	files := make([]models.File, len(l.files))
	copy(files, l.files)
	folders := make([]models.Folder, len(l.folders))
	copy(folders, l.folders)
	return files, folders
}

func (l *Library) FileByID(id string) (models.File, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.fileIdx[id]
	if !ok {
		return models.File{}, false
	}
	return l.files[i], true
}

func (l *Library) FolderByID(id string) (models.Folder, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.folderIdx[id]
	if !ok {
		return models.Folder{}, false
	}
	return l.folders[i], true
}

func (l *Library) FolderCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.folders)
}

func (l *Library) Role() models.Role {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.role
}

// ---------- Mutations ----------

// AddFiles prepends the batch, keeping the caller's order at the head of the
// collection.
func (l *Library) AddFiles(files []models.File) error {
	if len(files) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]models.File, 0, len(files)+len(l.files))
	next = append(next, files...)
	next = append(next, l.files...)

	if err := l.putJSON(filesKey, next); err != nil {
		return err
	}
	l.files = next
	l.reindex()
	return nil
}

func (l *Library) DeleteFile(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.fileIdx[id]; !ok {
		return fmt.Errorf("file %s: %w", id, ErrNotFound)
	}

	next := make([]models.File, 0, len(l.files)-1)
	for _, f := range l.files {
		if f.ID != id {
			next = append(next, f)
		}
	}

	if err := l.putJSON(filesKey, next); err != nil {
		return err
	}
	l.files = next
	l.reindex()
	return nil
}

// AddFolder appends the folder. Parent existence is the caller's concern;
// dangling references are tolerated by all traversals.
func (l *Library) AddFolder(folder models.Folder) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]models.Folder, 0, len(l.folders)+1)
	next = append(next, l.folders...)
	next = append(next, folder)

	if err := l.putJSON(foldersKey, next); err != nil {
		return err
	}
	l.folders = next
	l.folderIdx[folder.ID] = len(l.folders) - 1
	return nil
}

func (l *Library) RenameFolder(id, name string) error {
	return l.updateFolder(id, func(f *models.Folder) {
		f.Name = name
	})
}

func (l *Library) SetFolderBackground(id, background string) error {
	return l.updateFolder(id, func(f *models.Folder) {
		f.Background = background
	})
}

func (l *Library) updateFolder(id string, apply func(*models.Folder)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.folderIdx[id]
	if !ok {
		return fmt.Errorf("folder %s: %w", id, ErrNotFound)
	}

	next := make([]models.Folder, len(l.folders))
	copy(next, l.folders)
	apply(&next[i])

	if err := l.putJSON(foldersKey, next); err != nil {
		return err
	}
	l.folders = next
	return nil
}

// DeleteFolder removes an empty folder. Any child folder or child file makes
// the delete a no-op returning ErrFolderNotEmpty.
func (l *Library) DeleteFolder(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.folderIdx[id]; !ok {
		return fmt.Errorf("folder %s: %w", id, ErrNotFound)
	}

	for _, f := range l.folders {
		if f.ParentID != nil && *f.ParentID == id {
			return fmt.Errorf("folder %s: %w", id, ErrFolderNotEmpty)
		}
	}
	for _, f := range l.files {
		if f.FolderID != nil && *f.FolderID == id {
			return fmt.Errorf("folder %s: %w", id, ErrFolderNotEmpty)
		}
	}

	next := make([]models.Folder, 0, len(l.folders)-1)
	for _, f := range l.folders {
		if f.ID != id {
			next = append(next, f)
		}
	}

	if err := l.putJSON(foldersKey, next); err != nil {
		return err
	}
	l.folders = next
	l.reindex()
	return nil
}

func (l *Library) SetRole(role models.Role) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.putBlob(roleKey, []byte(role)); err != nil {
		return err
	}
	l.role = role
	return nil
}
