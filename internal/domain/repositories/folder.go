package repositories

import (
	"context"
	"time"

	"filedrive/internal/domain/models"
)

// FolderRepository is the persistence boundary for folders.
type FolderRepository interface {
	// Create persists a new folder. A sibling with the same name under the
	// same owner and parent yields domain.ErrConflict.
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder by ID. Missing folders yield domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Folder, error)

	// GetByNameInParent finds a sibling by exact name. Returns (nil, nil)
	// when no such folder exists.
	GetByNameInParent(ctx context.Context, ownerID, name string, parentID *string) (*models.Folder, error)

	// ListChildren lists immediate child folders, name ascending.
	// A nil parentID lists ownerID's root-level folders.
	ListChildren(ctx context.Context, parentID *string, ownerID string) ([]models.Folder, error)

	// GetAllByOwner retrieves every folder belonging to ownerID (flat list).
	GetAllByOwner(ctx context.Context, ownerID string) ([]models.Folder, error)

	// UpdateName renames a folder. A sibling-name collision yields
	// domain.ErrConflict.
	UpdateName(ctx context.Context, id, name string, updatedAt time.Time) (*models.Folder, error)

	// UpdateShareExpiry sets or clears the share expiry timestamp.
	UpdateShareExpiry(ctx context.Context, id string, expiresAt *time.Time, updatedAt time.Time) (*models.Folder, error)

	// Delete removes a folder; descendants and contained files cascade.
	Delete(ctx context.Context, id string) error

	// AncestorChain returns the folder's ancestor chain ordered root first,
	// target last, including the folder itself. The walk is bounded at
	// maxDepth parent hops; a chain truncated by the bound is returned
	// as-is with its first entry still carrying a parent reference.
	// An unknown folderID returns an empty chain, not an error.
	AncestorChain(ctx context.Context, folderID string, maxDepth int) ([]models.Folder, error)
}
