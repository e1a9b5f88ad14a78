package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"filedrive/internal/config"
	"filedrive/internal/domain"
	"filedrive/internal/domain/models"
	"filedrive/internal/domain/repositories"
	"filedrive/internal/domain/services"
)

// invalidNameChars are stripped from folder names before validation,
// mirroring what the web client removes.
var invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

type folderService struct {
	folderRepo repositories.FolderRepository
	fileRepo   repositories.FileRepository
	policy     *config.SharingPolicy
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	fileRepo repositories.FileRepository,
	policy *config.SharingPolicy,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		fileRepo:   fileRepo,
		policy:     policy,
		logger:     logger,
	}
}

// CreateFolder creates a new folder under the owner's drive
func (s *folderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	name, err := sanitizeFolderName(req.Name)
	if err != nil {
		return nil, err
	}

	// Normalize empty string to nil for root-level folders
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}

	if req.ParentID != nil {
		parent, err := s.folderRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("parent folder: %w", err)
		}
		if parent.OwnerID != req.OwnerID {
			return nil, fmt.Errorf("%w: you are not allowed to create a folder in this parent folder", domain.ErrForbidden)
		}
	}

	// Pre-check sibling names; the unique index backstops the race where
	// two concurrent creates pass this check.
	existing, err := s.folderRepo.GetByNameInParent(ctx, req.OwnerID, name, req.ParentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{
			Message:      "A folder with this name already exists",
			ResourceType: "folder",
			ResourceID:   existing.ID,
		}
	}

	now := time.Now()
	folder := &models.Folder{
		OwnerID:   req.OwnerID,
		ParentID:  req.ParentID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"owner_id", folder.OwnerID,
		"parent_id", folder.ParentID,
	)

	return folder, nil
}

// GetFolder retrieves a folder with its immediate contents, subject to
// the ownership-or-share access rule
func (s *folderService) GetFolder(ctx context.Context, folderID, requesterID string) (*services.FolderView, error) {
	now := time.Now()

	folder, err := s.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		return nil, err
	}

	decision, err := DecideAccess(folder, requesterID, now, func() (bool, error) {
		return s.ancestorShared(ctx, folder.ID, now)
	})
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, fmt.Errorf("%w: you are not allowed to access this folder", domain.ErrForbidden)
	}

	contents, err := s.loadContents(ctx, *folder)
	if err != nil {
		return nil, err
	}

	return &services.FolderView{Folder: contents, IsOwner: decision.IsOwner}, nil
}

// GetRootFolder returns the virtual My Drive folder with the owner's
// root-level folders and files
func (s *folderService) GetRootFolder(ctx context.Context, ownerID string) (*services.FolderView, error) {
	subfolders, err := s.folderRepo.ListChildren(ctx, nil, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list root folders: %w", err)
	}

	files, err := s.fileRepo.ListByFolder(ctx, nil, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list root files: %w", err)
	}

	contents := &models.FolderContents{
		Folder:     models.MyDrive(ownerID, time.Now()),
		Subfolders: emptyIfNil(subfolders),
		Files:      emptyFilesIfNil(files),
	}

	return &services.FolderView{Folder: contents, IsOwner: true}, nil
}

// RenameFolder renames a folder; owner only
func (s *folderService) RenameFolder(ctx context.Context, req *services.RenameFolderRequest) (*models.Folder, error) {
	name, err := sanitizeFolderName(req.Name)
	if err != nil {
		return nil, err
	}

	folder, err := s.folderRepo.GetByID(ctx, req.FolderID)
	if err != nil {
		return nil, err
	}
	if folder.OwnerID != req.OwnerID {
		return nil, fmt.Errorf("%w: you are not allowed to rename this folder", domain.ErrForbidden)
	}

	if folder.Name == name {
		return nil, fmt.Errorf("%w: the new name must be different from the current name", domain.ErrValidation)
	}

	existing, err := s.folderRepo.GetByNameInParent(ctx, req.OwnerID, name, folder.ParentID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != folder.ID {
		return nil, &domain.ConflictError{
			Message:      "A folder with this name already exists",
			ResourceType: "folder",
			ResourceID:   existing.ID,
		}
	}

	updated, err := s.folderRepo.UpdateName(ctx, folder.ID, name, time.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed",
		"id", updated.ID,
		"name", updated.Name,
		"owner_id", updated.OwnerID,
	)

	return updated, nil
}

// DeleteFolder deletes a folder and everything beneath it; owner only
func (s *folderService) DeleteFolder(ctx context.Context, folderID, ownerID string) error {
	folder, err := s.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		return err
	}
	if folder.OwnerID != ownerID {
		return fmt.Errorf("%w: you are not allowed to delete this folder", domain.ErrForbidden)
	}

	if err := s.folderRepo.Delete(ctx, folderID); err != nil {
		return err
	}

	s.logger.Info("folder deleted",
		"id", folderID,
		"name", folder.Name,
		"owner_id", ownerID,
	)

	return nil
}

// ShareFolder sets or clears the folder's share expiry; owner only
func (s *folderService) ShareFolder(ctx context.Context, req *services.ShareFolderRequest) (*models.Folder, error) {
	now := time.Now()

	folder, err := s.folderRepo.GetByID(ctx, req.FolderID)
	if err != nil {
		return nil, err
	}
	if folder.OwnerID != req.OwnerID {
		return nil, fmt.Errorf("%w: you are not allowed to share this folder", domain.ErrForbidden)
	}

	expiry, err := resolveShareExpiry(req, now, s.policy)
	if err != nil {
		return nil, err
	}

	updated, err := s.folderRepo.UpdateShareExpiry(ctx, folder.ID, expiry, now)
	if err != nil {
		return nil, err
	}

	if expiry == nil {
		s.logger.Info("folder unshared", "id", folder.ID, "owner_id", folder.OwnerID)
	} else {
		s.logger.Info("folder shared",
			"id", folder.ID,
			"owner_id", folder.OwnerID,
			"share_expires_at", *expiry,
		)
	}

	return updated, nil
}

// GetBreadcrumbs reconstructs the display path for a folder
func (s *folderService) GetBreadcrumbs(ctx context.Context, folderID, requesterID string) ([]models.Breadcrumb, error) {
	now := time.Now()

	folder, err := s.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		return nil, err
	}

	chain, err := s.ancestorChain(ctx, folder.ID)
	if err != nil {
		return nil, err
	}

	isOwner := requesterID != "" && folder.OwnerID == requesterID
	if !isOwner && !anyShareValid(chain, now) {
		return nil, fmt.Errorf("%w: you are not allowed to access this folder", domain.ErrForbidden)
	}

	crumbs, err := buildBreadcrumbs(chain, isOwner, now)
	if err != nil {
		s.logger.Error("breadcrumb builder disagreed with access control",
			"folder_id", folderID,
			"requester_id", requesterID,
			"error", err,
		)
		return nil, err
	}

	return crumbs, nil
}

// GetFolderTree assembles the owner's full nested folder tree
func (s *folderService) GetFolderTree(ctx context.Context, ownerID string) ([]*models.FolderNode, error) {
	folders, err := s.folderRepo.GetAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return BuildFolderTree(folders), nil
}

// ancestorShared reports whether the folder or any of its ancestors
// carries a valid share at the instant now.
func (s *folderService) ancestorShared(ctx context.Context, folderID string, now time.Time) (bool, error) {
	chain, err := s.ancestorChain(ctx, folderID)
	if err != nil {
		return false, err
	}
	return anyShareValid(chain, now), nil
}

// ancestorChain loads the root-first ancestor chain and rejects chains
// that never reached a root within the configured depth bound.
func (s *folderService) ancestorChain(ctx context.Context, folderID string) ([]models.Folder, error) {
	chain, err := s.folderRepo.AncestorChain(ctx, folderID, s.policy.MaxFolderDepth)
	if err != nil {
		return nil, err
	}

	if len(chain) > 0 && chain[0].ParentID != nil {
		return nil, fmt.Errorf("%w: folder %s exceeds the maximum ancestor depth of %d",
			domain.ErrInvariant, folderID, s.policy.MaxFolderDepth)
	}

	return chain, nil
}

func anyShareValid(chain []models.Folder, now time.Time) bool {
	for i := range chain {
		if ShareValidAt(chain[i].ShareExpiresAt, now) {
			return true
		}
	}
	return false
}

// loadContents attaches a folder's immediate subfolders and files.
func (s *folderService) loadContents(ctx context.Context, folder models.Folder) (*models.FolderContents, error) {
	subfolders, err := s.folderRepo.ListChildren(ctx, &folder.ID, folder.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list subfolders: %w", err)
	}

	files, err := s.fileRepo.ListByFolder(ctx, &folder.ID, folder.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	return &models.FolderContents{
		Folder:     folder,
		Subfolders: emptyIfNil(subfolders),
		Files:      emptyFilesIfNil(files),
	}, nil
}

// sanitizeFolderName trims and strips filesystem-invalid characters, then
// validates what is left.
func sanitizeFolderName(raw string) (string, error) {
	name := strings.TrimSpace(invalidNameChars.ReplaceAllString(strings.TrimSpace(raw), ""))

	err := validation.Validate(name,
		validation.Required.Error("name is required"),
		validation.Length(1, config.MaxFolderNameLength),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	return name, nil
}

func emptyIfNil(folders []models.Folder) []models.Folder {
	if folders == nil {
		return []models.Folder{}
	}
	return folders
}

func emptyFilesIfNil(files []models.File) []models.File {
	if files == nil {
		return []models.File{}
	}
	return files
}
