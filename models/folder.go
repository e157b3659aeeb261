package models

import "time"

// DefaultBackground is used when a folder has no background of its own.
const DefaultBackground = "#f9fafb"

// Folder is a container node. The tree is encoded as parent back-references
// over a flat collection; there is no materialized tree structure.
type Folder struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ParentID    *string   `json:"parent_id,omitempty"` // nil means root-level
	CreatedDate time.Time `json:"created_date"`
	Background  string    `json:"background,omitempty"`
}

// HasParent reports whether the folder is a direct child of the given folder,
// where a nil parentID stands for the root.
func (f Folder) HasParent(parentID *string) bool {
	if parentID == nil {
		return f.ParentID == nil
	}
	return f.ParentID != nil && *f.ParentID == *parentID
}

// EffectiveBackground returns the folder's background or the neutral fallback.
func (f Folder) EffectiveBackground() string {
	if f.Background == "" {
		return DefaultBackground
	}
	return f.Background
}
