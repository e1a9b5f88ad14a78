package services

import (
	"context"

	"filedrive/internal/domain/models"
)

// CreateFolderRequest carries the input for folder creation.
type CreateFolderRequest struct {
	OwnerID  string  `json:"-"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentId,omitempty"`
}

// RenameFolderRequest carries the input for a rename.
type RenameFolderRequest struct {
	OwnerID  string `json:"-"`
	FolderID string `json:"-"`
	Name     string `json:"name"`
}

// ShareFolderRequest carries the input for the share toggle.
// A nil DurationHours with Indefinite unset clears the share.
type ShareFolderRequest struct {
	OwnerID       string   `json:"-"`
	FolderID      string   `json:"-"`
	DurationHours *float64 `json:"durationHours,omitempty"`
	Indefinite    bool     `json:"indefinite,omitempty"`
}

// FolderView is a folder with its contents plus the requester's
// ownership status, the shape both folder GET endpoints respond with.
type FolderView struct {
	Folder  *models.FolderContents `json:"folder"`
	IsOwner bool                   `json:"isOwner"`
}

// FolderService implements folder CRUD, sharing, and the shared-access
// read paths (folder view, breadcrumbs, tree).
type FolderService interface {
	// CreateFolder creates a folder owned by req.OwnerID, optionally under
	// a parent the owner must also own.
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)

	// GetFolder retrieves a folder with its immediate contents.
	// requesterID may be empty for anonymous visitors; access requires
	// ownership or a valid share on the folder or one of its ancestors.
	GetFolder(ctx context.Context, folderID, requesterID string) (*FolderView, error)

	// GetRootFolder returns the virtual My Drive folder with ownerID's
	// root-level folders and files.
	GetRootFolder(ctx context.Context, ownerID string) (*FolderView, error)

	// RenameFolder renames a folder; owner only. Renaming to the current
	// name is rejected as a validation error.
	RenameFolder(ctx context.Context, req *RenameFolderRequest) (*models.Folder, error)

	// DeleteFolder deletes a folder and everything beneath it; owner only.
	DeleteFolder(ctx context.Context, folderID, ownerID string) error

	// ShareFolder sets or clears the folder's share expiry; owner only.
	ShareFolder(ctx context.Context, req *ShareFolderRequest) (*models.Folder, error)

	// GetBreadcrumbs reconstructs the display path for a folder: from
	// My Drive for owners, from the first validly shared ancestor for
	// everyone else.
	GetBreadcrumbs(ctx context.Context, folderID, requesterID string) ([]models.Breadcrumb, error)

	// GetFolderTree assembles the owner's full nested folder tree with
	// siblings sorted by name at every level.
	GetFolderTree(ctx context.Context, ownerID string) ([]*models.FolderNode, error)
}
