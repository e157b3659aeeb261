package models

import "time"

// File is one uploaded object. The payload travels inside the record as a
// base64 data URI; there is no separate blob store.
type File struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	UploadDate time.Time `json:"upload_date"`
	Data       string    `json:"data"`
	FolderID   *string   `json:"folder_id,omitempty"` // nil means the file lives at the root
}

// InFolder reports whether the file is a direct child of the given folder,
// where a nil folderID stands for the root.
func (f File) InFolder(folderID *string) bool {
	if folderID == nil {
		return f.FolderID == nil
	}
	return f.FolderID != nil && *f.FolderID == *folderID
}
