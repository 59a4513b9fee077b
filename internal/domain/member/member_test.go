package member

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		m, err := NewMember("Alice", "alice@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, m.ID)
		assert.Equal(t, "Alice", m.Name)
		assert.Equal(t, "alice@example.com", m.Email)
		assert.False(t, m.CreatedAt.IsZero())
	})

	t.Run("NormalizesInput", func(t *testing.T) {
		m, err := NewMember("  Bob ", " Bob@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "Bob", m.Name)
		assert.Equal(t, "bob@example.com", m.Email)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := NewMember("  ", "carol@example.com")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		_, err := NewMember("Carol", "not-an-email")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestErrMemberNotFound_Is(t *testing.T) {
	id := uuid.New()
	err := ErrMemberNotFound{MemberID: id}

	assert.ErrorIs(t, err, ErrMemberNotFound{MemberID: id})
	assert.ErrorIs(t, err, ErrMemberNotFound{})
	assert.NotErrorIs(t, err, ErrMemberNotFound{MemberID: uuid.New()})
}
