package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/easyxpense-ledger/internal/domain/member"
	"github.com/google/uuid"
)

// MemberServiceImpl implements the MemberService interface
type MemberServiceImpl struct {
	memberRepo member.Repository
	logger     *slog.Logger
}

// NewMemberService creates a new member service
func NewMemberService(logger *slog.Logger, memberRepo member.Repository) MemberService {
	return &MemberServiceImpl{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// CreateMember adds a member to the group, rejecting duplicate emails
func (s *MemberServiceImpl) CreateMember(ctx context.Context, name, email string) (*member.Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, member.ErrDuplicateEmail{Email: email}
	}

	m, err := member.NewMember(name, email)
	if err != nil {
		return nil, err
	}

	if err := s.memberRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("Member created", "member_id", m.ID.String())
	return m, nil
}

// GetMemberByID retrieves a member, returns ErrMemberNotFound if not found
func (s *MemberServiceImpl) GetMemberByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

// ListMembers returns all group members ordered by join time
func (s *MemberServiceImpl) ListMembers(ctx context.Context) ([]*member.Member, error) {
	return s.memberRepo.List(ctx)
}
