package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"filedrive/internal/config"
	"filedrive/internal/domain"
	"filedrive/internal/domain/models"
	"filedrive/internal/domain/services"
)

// fakeFolderRepo is an in-memory FolderRepository for service tests.
type fakeFolderRepo struct {
	folders map[string]*models.Folder
	nextID  int
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: make(map[string]*models.Folder)}
}

// add seeds a folder directly, bypassing the sibling-name check.
func (r *fakeFolderRepo) add(folder models.Folder) *models.Folder {
	r.folders[folder.ID] = &folder
	return r.folders[folder.ID]
}

func (r *fakeFolderRepo) Create(_ context.Context, folder *models.Folder) error {
	for _, f := range r.folders {
		if f.OwnerID == folder.OwnerID && f.Name == folder.Name && pidEqual(f.ParentID, folder.ParentID) {
			return &domain.ConflictError{Message: "A folder with this name already exists", ResourceType: "folder", ResourceID: f.ID}
		}
	}
	r.nextID++
	folder.ID = fmt.Sprintf("folder-%d", r.nextID)
	stored := *folder
	r.folders[folder.ID] = &stored
	return nil
}

func (r *fakeFolderRepo) GetByID(_ context.Context, id string) (*models.Folder, error) {
	f, ok := r.folders[id]
	if !ok {
		return nil, fmt.Errorf("%w: folder %s", domain.ErrNotFound, id)
	}
	copied := *f
	return &copied, nil
}

func (r *fakeFolderRepo) GetByNameInParent(_ context.Context, ownerID, name string, parentID *string) (*models.Folder, error) {
	for _, f := range r.folders {
		if f.OwnerID == ownerID && f.Name == name && pidEqual(f.ParentID, parentID) {
			copied := *f
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeFolderRepo) ListChildren(_ context.Context, parentID *string, ownerID string) ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.folders {
		if f.OwnerID == ownerID && pidEqual(f.ParentID, parentID) {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFolderRepo) GetAllByOwner(_ context.Context, ownerID string) ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.folders {
		if f.OwnerID == ownerID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFolderRepo) UpdateName(_ context.Context, id, name string, updatedAt time.Time) (*models.Folder, error) {
	f, ok := r.folders[id]
	if !ok {
		return nil, fmt.Errorf("%w: folder %s", domain.ErrNotFound, id)
	}
	f.Name = name
	f.UpdatedAt = updatedAt
	copied := *f
	return &copied, nil
}

func (r *fakeFolderRepo) UpdateShareExpiry(_ context.Context, id string, expiresAt *time.Time, updatedAt time.Time) (*models.Folder, error) {
	f, ok := r.folders[id]
	if !ok {
		return nil, fmt.Errorf("%w: folder %s", domain.ErrNotFound, id)
	}
	f.ShareExpiresAt = expiresAt
	f.UpdatedAt = updatedAt
	copied := *f
	return &copied, nil
}

func (r *fakeFolderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.folders[id]; !ok {
		return fmt.Errorf("%w: folder %s", domain.ErrNotFound, id)
	}
	delete(r.folders, id)
	return nil
}

func (r *fakeFolderRepo) AncestorChain(_ context.Context, folderID string, maxDepth int) ([]models.Folder, error) {
	f, ok := r.folders[folderID]
	if !ok {
		return nil, nil
	}
	chain := []models.Folder{*f}
	hops := 0
	for f.ParentID != nil && hops < maxDepth {
		parent, ok := r.folders[*f.ParentID]
		if !ok {
			break
		}
		chain = append([]models.Folder{*parent}, chain...)
		f = parent
		hops++
	}
	return chain, nil
}

func pidEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// fakeFileRepo is an in-memory FileRepository.
type fakeFileRepo struct {
	files []models.File
}

func (r *fakeFileRepo) ListByFolder(_ context.Context, folderID *string, ownerID string) ([]models.File, error) {
	var out []models.File
	for _, f := range r.files {
		if f.OwnerID == ownerID && pidEqual(f.FolderID, folderID) {
			out = append(out, f)
		}
	}
	return out, nil
}

func testPolicy() *config.SharingPolicy {
	return &config.SharingPolicy{
		MaxDurationHours: 8760,
		IndefiniteYears:  100,
		MaxFolderDepth:   64,
	}
}

func newTestFolderService(folders *fakeFolderRepo) services.FolderService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFolderService(folders, &fakeFileRepo{}, testPolicy(), logger)
}

func TestCreateFolder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a root-level folder", func(t *testing.T) {
		repo := newFakeFolderRepo()
		svc := newTestFolderService(repo)

		folder, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{
			OwnerID: "alice",
			Name:    "Documents",
		})
		if err != nil {
			t.Fatalf("CreateFolder() unexpected error: %v", err)
		}
		if folder.ID == "" {
			t.Error("CreateFolder() returned a folder without an ID")
		}
		if folder.Name != "Documents" {
			t.Errorf("Name = %q, want %q", folder.Name, "Documents")
		}
		if folder.ParentID != nil {
			t.Errorf("ParentID = %v, want nil", *folder.ParentID)
		}
	})

	t.Run("strips invalid characters from the name", func(t *testing.T) {
		repo := newFakeFolderRepo()
		svc := newTestFolderService(repo)

		folder, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{
			OwnerID: "alice",
			Name:    `  Tax/Returns<2026>  `,
		})
		if err != nil {
			t.Fatalf("CreateFolder() unexpected error: %v", err)
		}
		if folder.Name != "TaxReturns2026" {
			t.Errorf("Name = %q, want %q", folder.Name, "TaxReturns2026")
		}
	})

	t.Run("rejects a name that is empty after sanitizing", func(t *testing.T) {
		repo := newFakeFolderRepo()
		svc := newTestFolderService(repo)

		_, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{
			OwnerID: "alice",
			Name:    `///???`,
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("CreateFolder() error = %v, want ErrValidation", err)
		}
	})

	t.Run("empty-string parent means root level", func(t *testing.T) {
		repo := newFakeFolderRepo()
		svc := newTestFolderService(repo)

		empty := ""
		folder, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{
			OwnerID:  "alice",
			Name:     "Documents",
			ParentID: &empty,
		})
		if err != nil {
			t.Fatalf("CreateFolder() unexpected error: %v", err)
		}
		if folder.ParentID != nil {
			t.Errorf("ParentID = %v, want nil", *folder.ParentID)
		}
	})

	t.Run("rejects a parent owned by someone else", func(t *testing.T) {
		repo := newFakeFolderRepo()
		repo.add(models.Folder{ID: "p1", OwnerID: "bob", Name: "Bobs"})
		svc := newTestFolderService(repo)

		pid := "p1"
		_, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{
			OwnerID:  "alice",
			Name:     "Sneaky",
			ParentID: &pid,
		})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("CreateFolder() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("missing parent is not found", func(t *testing.T) {
		repo := newFakeFolderRepo()
		svc := newTestFolderService(repo)

		pid := "no-such-parent"
		_, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{
			OwnerID:  "alice",
			Name:     "Orphan",
			ParentID: &pid,
		})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("CreateFolder() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("rejects a duplicate sibling name", func(t *testing.T) {
		repo := newFakeFolderRepo()
		repo.add(models.Folder{ID: "f1", OwnerID: "alice", Name: "Documents"})
		svc := newTestFolderService(repo)

		_, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{
			OwnerID: "alice",
			Name:    "Documents",
		})
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("CreateFolder() error = %v, want ErrConflict", err)
		}
	})

	t.Run("same name under a different parent is fine", func(t *testing.T) {
		repo := newFakeFolderRepo()
		repo.add(models.Folder{ID: "p1", OwnerID: "alice", Name: "Work"})
		repo.add(models.Folder{ID: "f1", OwnerID: "alice", Name: "Documents"})
		svc := newTestFolderService(repo)

		pid := "p1"
		_, err := svc.CreateFolder(ctx, &services.CreateFolderRequest{
			OwnerID:  "alice",
			Name:     "Documents",
			ParentID: &pid,
		})
		if err != nil {
			t.Fatalf("CreateFolder() unexpected error: %v", err)
		}
	})
}

func TestGetFolderAccess(t *testing.T) {
	ctx := context.Background()
	future := timePtr(time.Now().Add(time.Hour))
	past := timePtr(time.Now().Add(-time.Hour))

	// alice's tree: Projects / Designs / Drafts
	seed := func() *fakeFolderRepo {
		repo := newFakeFolderRepo()
		projID, designID := "proj", "design"
		repo.add(models.Folder{ID: "proj", OwnerID: "alice", Name: "Projects"})
		repo.add(models.Folder{ID: "design", OwnerID: "alice", Name: "Designs", ParentID: &projID})
		repo.add(models.Folder{ID: "draft", OwnerID: "alice", Name: "Drafts", ParentID: &designID})
		return repo
	}

	t.Run("owner reads their own folder", func(t *testing.T) {
		svc := newTestFolderService(seed())

		view, err := svc.GetFolder(ctx, "draft", "alice")
		if err != nil {
			t.Fatalf("GetFolder() unexpected error: %v", err)
		}
		if !view.IsOwner {
			t.Error("IsOwner = false, want true")
		}
		if view.Folder.ID != "draft" {
			t.Errorf("folder ID = %q, want %q", view.Folder.ID, "draft")
		}
	})

	t.Run("stranger denied on an unshared folder", func(t *testing.T) {
		svc := newTestFolderService(seed())

		_, err := svc.GetFolder(ctx, "draft", "bob")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("GetFolder() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("share on an ancestor opens every descendant", func(t *testing.T) {
		repo := seed()
		repo.folders["design"].ShareExpiresAt = future
		svc := newTestFolderService(repo)

		view, err := svc.GetFolder(ctx, "draft", "bob")
		if err != nil {
			t.Fatalf("GetFolder() unexpected error: %v", err)
		}
		if view.IsOwner {
			t.Error("IsOwner = true, want false")
		}
	})

	t.Run("ancestor share does not open the ancestor's parent", func(t *testing.T) {
		repo := seed()
		repo.folders["design"].ShareExpiresAt = future
		svc := newTestFolderService(repo)

		_, err := svc.GetFolder(ctx, "proj", "bob")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("GetFolder() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("expired share denies", func(t *testing.T) {
		repo := seed()
		repo.folders["design"].ShareExpiresAt = past
		svc := newTestFolderService(repo)

		_, err := svc.GetFolder(ctx, "draft", "bob")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("GetFolder() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("anonymous visitor allowed through a valid share", func(t *testing.T) {
		repo := seed()
		repo.folders["design"].ShareExpiresAt = future
		svc := newTestFolderService(repo)

		view, err := svc.GetFolder(ctx, "design", "")
		if err != nil {
			t.Fatalf("GetFolder() unexpected error: %v", err)
		}
		if view.IsOwner {
			t.Error("IsOwner = true, want false")
		}
	})

	t.Run("unknown folder is not found", func(t *testing.T) {
		svc := newTestFolderService(seed())

		_, err := svc.GetFolder(ctx, "nope", "alice")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetFolder() error = %v, want ErrNotFound", err)
		}
	})
}

func TestGetRootFolder(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFolderRepo()
	repo.add(models.Folder{ID: "f1", OwnerID: "alice", Name: "Documents"})
	svc := newTestFolderService(repo)

	view, err := svc.GetRootFolder(ctx, "alice")
	if err != nil {
		t.Fatalf("GetRootFolder() unexpected error: %v", err)
	}
	if !view.IsOwner {
		t.Error("IsOwner = false, want true")
	}
	if view.Folder.Name != models.MyDriveName {
		t.Errorf("root name = %q, want %q", view.Folder.Name, models.MyDriveName)
	}
	if view.Folder.ID != "" {
		t.Errorf("root ID = %q, want empty", view.Folder.ID)
	}
	if len(view.Folder.Subfolders) != 1 {
		t.Fatalf("got %d subfolders, want 1", len(view.Folder.Subfolders))
	}
	if view.Folder.Files == nil {
		t.Error("Files is nil, want empty slice")
	}
}

func TestRenameFolder(t *testing.T) {
	ctx := context.Background()

	seed := func() *fakeFolderRepo {
		repo := newFakeFolderRepo()
		repo.add(models.Folder{ID: "f1", OwnerID: "alice", Name: "Documents"})
		repo.add(models.Folder{ID: "f2", OwnerID: "alice", Name: "Photos"})
		return repo
	}

	t.Run("renames to a fresh name", func(t *testing.T) {
		svc := newTestFolderService(seed())

		folder, err := svc.RenameFolder(ctx, &services.RenameFolderRequest{
			OwnerID: "alice", FolderID: "f1", Name: "Paperwork",
		})
		if err != nil {
			t.Fatalf("RenameFolder() unexpected error: %v", err)
		}
		if folder.Name != "Paperwork" {
			t.Errorf("Name = %q, want %q", folder.Name, "Paperwork")
		}
	})

	t.Run("rejects renaming to the current name", func(t *testing.T) {
		svc := newTestFolderService(seed())

		_, err := svc.RenameFolder(ctx, &services.RenameFolderRequest{
			OwnerID: "alice", FolderID: "f1", Name: "Documents",
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("RenameFolder() error = %v, want ErrValidation", err)
		}
	})

	t.Run("rejects colliding with a sibling", func(t *testing.T) {
		svc := newTestFolderService(seed())

		_, err := svc.RenameFolder(ctx, &services.RenameFolderRequest{
			OwnerID: "alice", FolderID: "f1", Name: "Photos",
		})
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("RenameFolder() error = %v, want ErrConflict", err)
		}
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		svc := newTestFolderService(seed())

		_, err := svc.RenameFolder(ctx, &services.RenameFolderRequest{
			OwnerID: "bob", FolderID: "f1", Name: "Mine",
		})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("RenameFolder() error = %v, want ErrForbidden", err)
		}
	})
}

func TestDeleteFolder(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		repo := newFakeFolderRepo()
		repo.add(models.Folder{ID: "f1", OwnerID: "alice", Name: "Documents"})
		svc := newTestFolderService(repo)

		if err := svc.DeleteFolder(ctx, "f1", "alice"); err != nil {
			t.Fatalf("DeleteFolder() unexpected error: %v", err)
		}
		if _, ok := repo.folders["f1"]; ok {
			t.Error("folder still present after delete")
		}
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		repo := newFakeFolderRepo()
		repo.add(models.Folder{ID: "f1", OwnerID: "alice", Name: "Documents"})
		svc := newTestFolderService(repo)

		if err := svc.DeleteFolder(ctx, "f1", "bob"); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("DeleteFolder() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("unknown folder not found", func(t *testing.T) {
		svc := newTestFolderService(newFakeFolderRepo())

		if err := svc.DeleteFolder(ctx, "nope", "alice"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("DeleteFolder() error = %v, want ErrNotFound", err)
		}
	})
}

func TestShareFolder(t *testing.T) {
	ctx := context.Background()

	seed := func() *fakeFolderRepo {
		repo := newFakeFolderRepo()
		repo.add(models.Folder{ID: "f1", OwnerID: "alice", Name: "Documents"})
		return repo
	}

	t.Run("sets a timed share", func(t *testing.T) {
		svc := newTestFolderService(seed())
		before := time.Now()

		folder, err := svc.ShareFolder(ctx, &services.ShareFolderRequest{
			OwnerID: "alice", FolderID: "f1", DurationHours: floatPtr(24),
		})
		if err != nil {
			t.Fatalf("ShareFolder() unexpected error: %v", err)
		}
		if folder.ShareExpiresAt == nil {
			t.Fatal("ShareExpiresAt = nil, want a timestamp")
		}
		lo := before.Add(24 * time.Hour)
		hi := time.Now().Add(24 * time.Hour)
		if folder.ShareExpiresAt.Before(lo) || folder.ShareExpiresAt.After(hi) {
			t.Errorf("ShareExpiresAt = %v, want within [%v, %v]", folder.ShareExpiresAt, lo, hi)
		}
	})

	t.Run("indefinite share uses the long horizon", func(t *testing.T) {
		svc := newTestFolderService(seed())

		folder, err := svc.ShareFolder(ctx, &services.ShareFolderRequest{
			OwnerID: "alice", FolderID: "f1", Indefinite: true,
		})
		if err != nil {
			t.Fatalf("ShareFolder() unexpected error: %v", err)
		}
		if folder.ShareExpiresAt == nil {
			t.Fatal("ShareExpiresAt = nil, want a timestamp")
		}
		if years := folder.ShareExpiresAt.Year() - time.Now().Year(); years != 100 {
			t.Errorf("share horizon = %d years out, want 100", years)
		}
	})

	t.Run("nil duration clears the share", func(t *testing.T) {
		repo := seed()
		repo.folders["f1"].ShareExpiresAt = timePtr(time.Now().Add(time.Hour))
		svc := newTestFolderService(repo)

		folder, err := svc.ShareFolder(ctx, &services.ShareFolderRequest{
			OwnerID: "alice", FolderID: "f1",
		})
		if err != nil {
			t.Fatalf("ShareFolder() unexpected error: %v", err)
		}
		if folder.ShareExpiresAt != nil {
			t.Errorf("ShareExpiresAt = %v, want nil", folder.ShareExpiresAt)
		}
	})

	t.Run("invalid duration rejected", func(t *testing.T) {
		svc := newTestFolderService(seed())

		_, err := svc.ShareFolder(ctx, &services.ShareFolderRequest{
			OwnerID: "alice", FolderID: "f1", DurationHours: floatPtr(-5),
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("ShareFolder() error = %v, want ErrValidation", err)
		}
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		svc := newTestFolderService(seed())

		_, err := svc.ShareFolder(ctx, &services.ShareFolderRequest{
			OwnerID: "bob", FolderID: "f1", DurationHours: floatPtr(24),
		})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("ShareFolder() error = %v, want ErrForbidden", err)
		}
	})
}

func TestGetBreadcrumbsService(t *testing.T) {
	ctx := context.Background()
	future := timePtr(time.Now().Add(time.Hour))

	// alice's tree: Projects / Designs / Drafts, with Designs shared.
	seed := func() *fakeFolderRepo {
		repo := newFakeFolderRepo()
		projID, designID := "proj", "design"
		repo.add(models.Folder{ID: "proj", OwnerID: "alice", Name: "Projects"})
		repo.add(models.Folder{ID: "design", OwnerID: "alice", Name: "Designs", ParentID: &projID, ShareExpiresAt: future})
		repo.add(models.Folder{ID: "draft", OwnerID: "alice", Name: "Drafts", ParentID: &designID})
		return repo
	}

	t.Run("owner gets the full trail", func(t *testing.T) {
		svc := newTestFolderService(seed())

		crumbs, err := svc.GetBreadcrumbs(ctx, "draft", "alice")
		if err != nil {
			t.Fatalf("GetBreadcrumbs() unexpected error: %v", err)
		}
		assertCrumbNames(t, crumbs, []string{models.MyDriveName, "Projects", "Designs", "Drafts"})
	})

	t.Run("visitor trail starts at the shared folder", func(t *testing.T) {
		svc := newTestFolderService(seed())

		crumbs, err := svc.GetBreadcrumbs(ctx, "draft", "bob")
		if err != nil {
			t.Fatalf("GetBreadcrumbs() unexpected error: %v", err)
		}
		assertCrumbNames(t, crumbs, []string{"Designs", "Drafts"})
	})

	t.Run("visitor denied when nothing on the chain is shared", func(t *testing.T) {
		repo := seed()
		repo.folders["design"].ShareExpiresAt = nil
		svc := newTestFolderService(repo)

		_, err := svc.GetBreadcrumbs(ctx, "draft", "bob")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("GetBreadcrumbs() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("shared root-level folder anchors at My Drive for visitors", func(t *testing.T) {
		repo := newFakeFolderRepo()
		repo.add(models.Folder{ID: "pub", OwnerID: "alice", Name: "Public", ShareExpiresAt: future})
		svc := newTestFolderService(repo)

		crumbs, err := svc.GetBreadcrumbs(ctx, "pub", "bob")
		if err != nil {
			t.Fatalf("GetBreadcrumbs() unexpected error: %v", err)
		}
		assertCrumbNames(t, crumbs, []string{models.MyDriveName, "Public"})
	})

	t.Run("unknown folder not found", func(t *testing.T) {
		svc := newTestFolderService(seed())

		_, err := svc.GetBreadcrumbs(ctx, "nope", "alice")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetBreadcrumbs() error = %v, want ErrNotFound", err)
		}
	})
}

func TestAncestorDepthBound(t *testing.T) {
	ctx := context.Background()

	// Build a chain two folders deeper than the policy allows. The chain
	// loader must refuse rather than hand back a trail with no root.
	repo := newFakeFolderRepo()
	policy := testPolicy()
	depth := policy.MaxFolderDepth + 2

	var parentID *string
	var leafID string
	for i := 0; i < depth; i++ {
		id := fmt.Sprintf("d%d", i)
		repo.add(models.Folder{ID: id, OwnerID: "alice", Name: fmt.Sprintf("Level %d", i), ParentID: parentID})
		pid := id
		parentID = &pid
		leafID = id
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewFolderService(repo, &fakeFileRepo{}, policy, logger)

	_, err := svc.GetBreadcrumbs(ctx, leafID, "alice")
	if !errors.Is(err, domain.ErrInvariant) {
		t.Fatalf("GetBreadcrumbs() error = %v, want ErrInvariant", err)
	}
}

func TestGetFolderTreeService(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFolderRepo()
	aID := "a"
	repo.add(models.Folder{ID: "a", OwnerID: "alice", Name: "Archive"})
	repo.add(models.Folder{ID: "b", OwnerID: "alice", Name: "Books"})
	repo.add(models.Folder{ID: "c", OwnerID: "alice", Name: "Clips", ParentID: &aID})
	repo.add(models.Folder{ID: "x", OwnerID: "bob", Name: "Bobs"})
	svc := newTestFolderService(repo)

	roots, err := svc.GetFolderTree(ctx, "alice")
	if err != nil {
		t.Fatalf("GetFolderTree() unexpected error: %v", err)
	}
	assertNodeNames(t, roots, []string{"Archive", "Books"})
	assertNodeNames(t, roots[0].Subfolders, []string{"Clips"})
}
