package member

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines member persistence operations
type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)

	// GetByEmail returns nil, nil when no member has the given email
	GetByEmail(ctx context.Context, email string) (*Member, error)
	List(ctx context.Context) ([]*Member, error)
}

// ErrMemberNotFound indicates missing member
type ErrMemberNotFound struct {
	MemberID uuid.UUID
}

func (e ErrMemberNotFound) Error() string {
	return "member not found: " + e.MemberID.String()
}

// Is implements the errors.Is interface for ErrMemberNotFound
func (e ErrMemberNotFound) Is(target error) bool {
	t, ok := target.(ErrMemberNotFound)
	if !ok {
		return false
	}
	if t.MemberID == uuid.Nil {
		return true
	}
	return e.MemberID == t.MemberID
}

// ErrDuplicateEmail indicates email uniqueness violation
type ErrDuplicateEmail struct {
	Email string
}

func (e ErrDuplicateEmail) Error() string {
	return "member with email already exists: " + e.Email
}
