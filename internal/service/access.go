package service

import (
	"time"

	"filedrive/internal/domain/models"
)

// AccessDecision is the outcome of an access check: whether the requester
// may read the folder, and whether they own it (owners get the full
// breadcrumb trail and are the only ones allowed to mutate).
type AccessDecision struct {
	Allowed bool
	IsOwner bool
}

// DecideAccess determines whether requesterID may read folder.
//
// Owners are always allowed. For everyone else a share on the folder
// itself is accepted first, without touching the store again; only when
// the target is unshared does the decision fall back to ancestorShared,
// which reports whether any ancestor carries a valid share. requesterID
// is empty for anonymous visitors.
func DecideAccess(folder *models.Folder, requesterID string, now time.Time, ancestorShared func() (bool, error)) (AccessDecision, error) {
	if requesterID != "" && folder.OwnerID == requesterID {
		return AccessDecision{Allowed: true, IsOwner: true}, nil
	}

	if ShareValidAt(folder.ShareExpiresAt, now) {
		return AccessDecision{Allowed: true}, nil
	}

	shared, err := ancestorShared()
	if err != nil {
		// Store failures surface as errors, never as a silent deny.
		return AccessDecision{}, err
	}

	return AccessDecision{Allowed: shared}, nil
}
