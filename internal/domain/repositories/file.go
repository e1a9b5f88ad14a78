package repositories

import (
	"context"

	"filedrive/internal/domain/models"
)

// FileRepository is the persistence boundary for file metadata.
type FileRepository interface {
	// ListByFolder lists the files directly inside a folder, name ascending.
	// A nil folderID lists ownerID's root-level files.
	ListByFolder(ctx context.Context, folderID *string, ownerID string) ([]models.File, error)
}
