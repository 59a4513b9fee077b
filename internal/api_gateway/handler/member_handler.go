package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/easyxpense-ledger/internal/api_gateway/service"
	"github.com/easyxpense-ledger/internal/domain/member"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for group member operations
type MemberHandler struct {
	memberService service.MemberService
	logger        *slog.Logger
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(logger *slog.Logger, memberService service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		logger:        logger,
	}
}

// Create handles registration of a new group member, checking for duplicate emails
func (h *MemberHandler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	m, err := h.memberService.CreateMember(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		var duplicateEmailErr member.ErrDuplicateEmail
		if errors.As(err, &duplicateEmailErr) {
			h.logger.Warn("Attempt to add member with duplicate email", "email", duplicateEmailErr.Email)
			RespondConflict(c, "Member with this email already exists")
			return
		}
		if errors.Is(err, member.ErrEmptyName) || errors.Is(err, member.ErrInvalidEmail) {
			RespondBadRequest(c, err.Error())
			return
		}
		h.logger.Error("Failed to create member", "error", err)
		RespondInternalError(c)
		return
	}

	RespondCreated(c, mapMemberToResponse(m))
}

// GetByID retrieves a member by its ID, returning 404 if not found
func (h *MemberHandler) GetByID(c *gin.Context) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid member ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid member ID")
		return
	}

	m, err := h.memberService.GetMemberByID(c.Request.Context(), id)
	if err != nil {
		var memberNotFound member.ErrMemberNotFound
		if errors.As(err, &memberNotFound) {
			RespondNotFound(c, "Member not found")
			return
		}
		h.logger.Error("Failed to get member", "id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapMemberToResponse(m))
}

// List returns every registered member, oldest first
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list members", "error", err)
		RespondInternalError(c)
		return
	}

	responses := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, mapMemberToResponse(m))
	}
	RespondOK(c, responses)
}

// mapMemberToResponse maps a member entity to a member response DTO
func mapMemberToResponse(m *member.Member) MemberResponse {
	return MemberResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}
