package service

import (
	"fmt"
	"time"

	"filedrive/internal/domain"
	"filedrive/internal/domain/models"
)

// myDriveBreadcrumb is the synthetic trail anchor for owner views and for
// shared root-level folders.
func myDriveBreadcrumb() models.Breadcrumb {
	return models.Breadcrumb{
		ID:   "",
		Name: models.MyDriveName,
	}
}

// buildBreadcrumbs turns an ancestor chain (root first, target last) into
// the display trail for a viewer.
//
// Owners see the whole chain anchored at My Drive. Everyone else sees the
// chain truncated to start at the first (shallowest) validly shared
// folder, so nothing above the point where sharing was granted leaks; the
// My Drive anchor is added only when that first shared folder is itself
// root-level. A non-owner chain with no valid share means access control
// and this builder disagree, which is a bug, not an empty trail.
func buildBreadcrumbs(chain []models.Folder, isOwner bool, now time.Time) ([]models.Breadcrumb, error) {
	if isOwner {
		crumbs := make([]models.Breadcrumb, 0, len(chain)+1)
		crumbs = append(crumbs, myDriveBreadcrumb())
		for _, folder := range chain {
			crumbs = append(crumbs, models.Breadcrumb{
				ID:             folder.ID,
				Name:           folder.Name,
				ShareExpiresAt: folder.ShareExpiresAt,
			})
		}
		return crumbs, nil
	}

	start := -1
	for i := range chain {
		if ShareValidAt(chain[i].ShareExpiresAt, now) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, fmt.Errorf("%w: no shared ancestor in approved breadcrumb request", domain.ErrInvariant)
	}

	crumbs := make([]models.Breadcrumb, 0, len(chain)-start+1)
	if chain[start].IsRootLevel() {
		crumbs = append(crumbs, myDriveBreadcrumb())
	}
	for _, folder := range chain[start:] {
		crumbs = append(crumbs, models.Breadcrumb{
			ID:             folder.ID,
			Name:           folder.Name,
			ShareExpiresAt: folder.ShareExpiresAt,
		})
	}
	return crumbs, nil
}
