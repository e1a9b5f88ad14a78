package models

import "time"

// MyDriveName is the display name of the synthetic root folder. It is not
// persisted; every user's root-level folders hang conceptually beneath it.
const MyDriveName = "My Drive"

type Folder struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"ownerId"`
	ParentID       *string    `json:"parentId"` // NULL = root level
	Name           string     `json:"name"`
	ShareExpiresAt *time.Time `json:"shareExpiresAt"` // NULL or past = not shared
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// IsRootLevel reports whether the folder sits directly under My Drive.
func (f *Folder) IsRootLevel() bool {
	return f.ParentID == nil
}

// FolderContents is a folder together with its immediate children,
// the shape returned by the get-folder and get-root endpoints.
type FolderContents struct {
	Folder
	Subfolders []Folder `json:"subfolders"`
	Files      []File   `json:"files"`
}

// MyDrive returns the folder-shaped value standing in for the virtual
// root of ownerID's drive.
func MyDrive(ownerID string, now time.Time) Folder {
	return Folder{
		ID:        "",
		OwnerID:   ownerID,
		ParentID:  nil,
		Name:      MyDriveName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FolderNode represents a folder with nested subfolders, used by the
// folder tree endpoint.
type FolderNode struct {
	Folder
	Subfolders []*FolderNode `json:"subfolders"`
}

// Breadcrumb is the path-display projection of a folder. The list returned
// by the breadcrumbs endpoint is ordered trail-start to target.
type Breadcrumb struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	ShareExpiresAt *time.Time `json:"shareExpiresAt"`
}
