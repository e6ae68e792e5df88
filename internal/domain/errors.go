package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrOrganizerNotFound is matched by every OrganizerNotFoundError
var ErrOrganizerNotFound = errors.New("organizer not found")

// OrganizerNotFoundError carries the id that did not resolve to a user
type OrganizerNotFoundError struct {
	ID uuid.UUID
}

func (e *OrganizerNotFoundError) Error() string {
	return fmt.Sprintf("organizer %s not found", e.ID)
}

// Is lets errors.Is match ErrOrganizerNotFound
func (e *OrganizerNotFoundError) Is(target error) bool {
	return target == ErrOrganizerNotFound
}
