package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"filedrive/internal/domain"
	"filedrive/internal/domain/models"
	"filedrive/internal/domain/repositories"
)

const folderColumns = "id, owner_id, parent_id, name, share_expires_at, created_at, updated_at"

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	config *RepositoryConfig
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{config: config}
}

// Create persists a new folder
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	if folder.ID == "" {
		folder.ID = uuid.NewString()
	}

	query := `
		INSERT INTO folders (id, owner_id, parent_id, name, share_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.config.Pool.Exec(ctx, query,
		folder.ID,
		folder.OwnerID,
		folder.ParentID,
		folder.Name,
		folder.ShareExpiresAt,
		folder.CreatedAt,
		folder.UpdatedAt,
	)

	if err != nil {
		if isPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      "A folder with this name already exists",
				ResourceType: "folder",
			}
		}
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// GetByID retrieves a folder by ID
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM folders
		WHERE id = $1
	`, folderColumns)

	folder, err := r.scanFolderRow(r.config.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return folder, nil
}

// GetByNameInParent finds a sibling folder by exact name
func (r *PostgresFolderRepository) GetByNameInParent(ctx context.Context, ownerID, name string, parentID *string) (*models.Folder, error) {
	var query string
	var args []interface{}

	if parentID == nil {
		query = fmt.Sprintf(`
			SELECT %s
			FROM folders
			WHERE owner_id = $1 AND name = $2 AND parent_id IS NULL
		`, folderColumns)
		args = append(args, ownerID, name)
	} else {
		query = fmt.Sprintf(`
			SELECT %s
			FROM folders
			WHERE owner_id = $1 AND name = $2 AND parent_id = $3
		`, folderColumns)
		args = append(args, ownerID, name, *parentID)
	}

	folder, err := r.scanFolderRow(r.config.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, nil // Not found, not an error
		}
		return nil, fmt.Errorf("get folder by name and parent: %w", err)
	}

	return folder, nil
}

// ListChildren lists immediate child folders, name ascending
func (r *PostgresFolderRepository) ListChildren(ctx context.Context, parentID *string, ownerID string) ([]models.Folder, error) {
	var query string
	var args []interface{}

	if parentID == nil {
		query = fmt.Sprintf(`
			SELECT %s
			FROM folders
			WHERE owner_id = $1 AND parent_id IS NULL
			ORDER BY name ASC
		`, folderColumns)
		args = append(args, ownerID)
	} else {
		query = fmt.Sprintf(`
			SELECT %s
			FROM folders
			WHERE parent_id = $1
			ORDER BY name ASC
		`, folderColumns)
		args = append(args, *parentID)
	}

	rows, err := r.config.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list folder children: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.OwnerID,
			&folder.ParentID,
			&folder.Name,
			&folder.ShareExpiresAt,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

// GetAllByOwner retrieves every folder belonging to an owner (flat list)
func (r *PostgresFolderRepository) GetAllByOwner(ctx context.Context, ownerID string) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM folders
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`, folderColumns)

	rows, err := r.config.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get all folders: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.OwnerID,
			&folder.ParentID,
			&folder.Name,
			&folder.ShareExpiresAt,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

// UpdateName renames a folder
func (r *PostgresFolderRepository) UpdateName(ctx context.Context, id, name string, updatedAt time.Time) (*models.Folder, error) {
	query := fmt.Sprintf(`
		UPDATE folders
		SET name = $1, updated_at = $2
		WHERE id = $3
		RETURNING %s
	`, folderColumns)

	folder, err := r.scanFolderRow(r.config.Pool.QueryRow(ctx, query, name, updatedAt, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		if isPgDuplicateError(err) {
			return nil, &domain.ConflictError{
				Message:      "A folder with this name already exists",
				ResourceType: "folder",
				ResourceID:   id,
			}
		}
		return nil, fmt.Errorf("rename folder: %w", err)
	}

	return folder, nil
}

// UpdateShareExpiry sets or clears the share expiry timestamp
func (r *PostgresFolderRepository) UpdateShareExpiry(ctx context.Context, id string, expiresAt *time.Time, updatedAt time.Time) (*models.Folder, error) {
	query := fmt.Sprintf(`
		UPDATE folders
		SET share_expires_at = $1, updated_at = $2
		WHERE id = $3
		RETURNING %s
	`, folderColumns)

	folder, err := r.scanFolderRow(r.config.Pool.QueryRow(ctx, query, expiresAt, updatedAt, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update folder share: %w", err)
	}

	return folder, nil
}

// Delete removes a folder; the schema cascades to descendants and files
func (r *PostgresFolderRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM folders
		WHERE id = $1
	`

	result, err := r.config.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// AncestorChain walks from a folder up to its root using a recursive CTE,
// returning the chain ordered root first, target last. The recursion is
// bounded at maxDepth parent hops so a corrupt cyclic chain cannot hang
// the query.
func (r *PostgresFolderRepository) AncestorChain(ctx context.Context, folderID string, maxDepth int) ([]models.Folder, error) {
	query := `
		WITH RECURSIVE ancestors AS (
			SELECT id, owner_id, parent_id, name, share_expires_at, created_at, updated_at, 0 AS depth
			FROM folders
			WHERE id = $1
			UNION ALL
			SELECT f.id, f.owner_id, f.parent_id, f.name, f.share_expires_at, f.created_at, f.updated_at, a.depth + 1
			FROM folders f
			JOIN ancestors a ON a.parent_id = f.id
			WHERE a.depth < $2
		)
		SELECT id, owner_id, parent_id, name, share_expires_at, created_at, updated_at
		FROM ancestors
		ORDER BY depth DESC
	`

	rows, err := r.config.Pool.Query(ctx, query, folderID, maxDepth)
	if err != nil {
		return nil, fmt.Errorf("walk folder ancestors: %w", err)
	}
	defer rows.Close()

	var chain []models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.OwnerID,
			&folder.ParentID,
			&folder.Name,
			&folder.ShareExpiresAt,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ancestor: %w", err)
		}
		chain = append(chain, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ancestors: %w", err)
	}

	return chain, nil
}

// rowScanner abstracts pgx.Row for the single-folder scan helper.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *PostgresFolderRepository) scanFolderRow(row rowScanner) (*models.Folder, error) {
	var folder models.Folder
	err := row.Scan(
		&folder.ID,
		&folder.OwnerID,
		&folder.ParentID,
		&folder.Name,
		&folder.ShareExpiresAt,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &folder, nil
}
