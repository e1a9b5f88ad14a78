package postgres

import (
	"context"
	"fmt"

	"filedrive/internal/domain/models"
	"filedrive/internal/domain/repositories"
)

// PostgresFileRepository implements the FileRepository interface
type PostgresFileRepository struct {
	config *RepositoryConfig
}

// NewFileRepository creates a new file repository
func NewFileRepository(config *RepositoryConfig) repositories.FileRepository {
	return &PostgresFileRepository{config: config}
}

// ListByFolder lists files directly inside a folder, name ascending
func (r *PostgresFileRepository) ListByFolder(ctx context.Context, folderID *string, ownerID string) ([]models.File, error) {
	var query string
	var args []interface{}

	if folderID == nil {
		query = `
			SELECT id, owner_id, folder_id, name, file_link, size_bytes, share_expires_at, created_at, updated_at
			FROM files
			WHERE owner_id = $1 AND folder_id IS NULL
			ORDER BY name ASC
		`
		args = append(args, ownerID)
	} else {
		query = `
			SELECT id, owner_id, folder_id, name, file_link, size_bytes, share_expires_at, created_at, updated_at
			FROM files
			WHERE folder_id = $1
			ORDER BY name ASC
		`
		args = append(args, *folderID)
	}

	rows, err := r.config.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		var file models.File
		err := rows.Scan(
			&file.ID,
			&file.OwnerID,
			&file.FolderID,
			&file.Name,
			&file.FileLink,
			&file.SizeBytes,
			&file.ShareExpiresAt,
			&file.CreatedAt,
			&file.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}

	return files, nil
}
