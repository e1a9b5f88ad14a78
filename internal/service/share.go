package service

import (
	"fmt"
	"time"

	"filedrive/internal/config"
	"filedrive/internal/domain"
	"filedrive/internal/domain/services"
)

// ShareValidAt reports whether expiresAt represents an active share at the
// instant now. A nil or past expiry means "not shared".
//
// Callers capture one now per logical request and thread it through every
// check performed during that request, so a share expiring mid-computation
// cannot yield different answers for different folders in the same walk.
func ShareValidAt(expiresAt *time.Time, now time.Time) bool {
	if expiresAt == nil {
		return false
	}
	return expiresAt.After(now)
}

// resolveShareExpiry turns a share-toggle request into the expiry value to
// store. Indefinite shares get a far-future horizon; a nil duration with
// Indefinite unset clears the share.
func resolveShareExpiry(req *services.ShareFolderRequest, now time.Time, policy *config.SharingPolicy) (*time.Time, error) {
	if req.Indefinite {
		expiry := now.AddDate(policy.IndefiniteYears, 0, 0)
		return &expiry, nil
	}

	if req.DurationHours == nil {
		return nil, nil
	}

	hours := *req.DurationHours
	if hours <= 0 {
		return nil, fmt.Errorf("%w: durationHours must be positive", domain.ErrValidation)
	}
	if hours > policy.MaxDurationHours {
		return nil, fmt.Errorf("%w: durationHours cannot exceed %v", domain.ErrValidation, policy.MaxDurationHours)
	}

	expiry := now.Add(time.Duration(hours * float64(time.Hour)))
	return &expiry, nil
}
