package service

import (
	"github.com/ticketdesk/backend/internal/domain"
	apperrors "github.com/ticketdesk/backend/pkg/util"
)

// StatusPolicy is the single hook every status write passes through. Swapping
// the policy changes validation behavior without touching any caller; a full
// transition graph would slot in here as well.
type StatusPolicy interface {
	Validate(current, requested string) error
}

// PermissiveStatusPolicy accepts any requested status verbatim, matching the
// historical behavior of the API: even values outside the known enumeration
// are written unchanged.
type PermissiveStatusPolicy struct{}

// Validate always succeeds.
func (PermissiveStatusPolicy) Validate(_, _ string) error {
	return nil
}

// StrictStatusPolicy restricts writes to the three enumerated statuses. It
// still allows any transition between them, including closed back to open.
type StrictStatusPolicy struct{}

// Validate rejects statuses outside the enumeration.
func (StrictStatusPolicy) Validate(_, requested string) error {
	if !domain.KnownStatus(requested) {
		return apperrors.NewValidationError("unknown ticket status", map[string]any{"status": requested})
	}
	return nil
}
