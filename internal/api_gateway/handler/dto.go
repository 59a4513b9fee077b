package handler

// RegisterRequest represents a request to register a new user
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries an access token and the authenticated user
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// CreateMemberRequest represents a request to register a new group member
type CreateMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// MemberResponse represents a group member in API responses
type MemberResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// CreateExpenseRequest represents a request to record a shared expense.
// Amount is a decimal string such as "45.00"; participants default to the
// whole registered group when empty.
type CreateExpenseRequest struct {
	Description    string   `json:"description" binding:"required"`
	Amount         string   `json:"amount" binding:"required"`
	PayerID        string   `json:"payer_id" binding:"required,uuid"`
	ParticipantIDs []string `json:"participant_ids,omitempty" binding:"omitempty,dive,uuid"`
}

// ExpenseResponse represents an expense record in API responses
type ExpenseResponse struct {
	ID             string   `json:"id"`
	Description    string   `json:"description"`
	Amount         string   `json:"amount"`
	AmountMinor    int64    `json:"amount_minor"`
	PayerID        string   `json:"payer_id"`
	ParticipantIDs []string `json:"participant_ids"`
	CreatedAt      string   `json:"created_at"`
}

// CreateSettlementRequest represents a request to record a repayment
type CreateSettlementRequest struct {
	FromID string `json:"from_id" binding:"required,uuid"`
	ToID   string `json:"to_id" binding:"required,uuid"`
	Amount string `json:"amount" binding:"required"`
}

// SettlementResponse represents a settlement record in API responses
type SettlementResponse struct {
	ID          string `json:"id"`
	FromID      string `json:"from_id"`
	ToID        string `json:"to_id"`
	Amount      string `json:"amount"`
	AmountMinor int64  `json:"amount_minor"`
	CreatedAt   string `json:"created_at"`
}

// BalanceResponse represents one member's net position. Amount is signed:
// positive means the member is owed money, negative means they owe.
type BalanceResponse struct {
	MemberID    string `json:"member_id"`
	Name        string `json:"name,omitempty"`
	Amount      string `json:"amount"`
	AmountMinor int64  `json:"amount_minor"`
}

// BalanceListResponse represents the group's non-settled balances
type BalanceListResponse struct {
	Balances []BalanceResponse `json:"balances"`
}

// PairBalanceResponse represents the net position between two members,
// from the first member's point of view
type PairBalanceResponse struct {
	MemberID    string `json:"member_id"`
	OtherID     string `json:"other_id"`
	Amount      string `json:"amount"`
	AmountMinor int64  `json:"amount_minor"`
}

// ActivityEntryResponse represents one payment-history feed entry
type ActivityEntryResponse struct {
	EventID        string   `json:"event_id"`
	Kind           string   `json:"kind"`
	RecordID       string   `json:"record_id"`
	Description    string   `json:"description,omitempty"`
	Amount         string   `json:"amount"`
	AmountMinor    int64    `json:"amount_minor"`
	ActorID        string   `json:"actor_id"`
	CounterpartyID string   `json:"counterparty_id,omitempty"`
	ParticipantIDs []string `json:"participant_ids,omitempty"`
	OccurredAt     string   `json:"occurred_at"`
}

// PaginationParams represents pagination parameters for list endpoints
type PaginationParams struct {
	Page    int `form:"page,default=1" binding:"min=1"`
	PerPage int `form:"per_page,default=10" binding:"min=1,max=100"`
}
