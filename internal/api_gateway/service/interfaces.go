package service

import (
	"context"

	"github.com/easyxpense-ledger/internal/domain/activity"
	"github.com/easyxpense-ledger/internal/domain/expense"
	"github.com/easyxpense-ledger/internal/domain/member"
	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/easyxpense-ledger/internal/domain/settlement"
	"github.com/easyxpense-ledger/internal/domain/user"
	"github.com/easyxpense-ledger/internal/ledger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxRunner executes a function within a database transaction.
// *persistence.PostgresDB satisfies this interface.
type TxRunner interface {
	ExecuteTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// AuthService defines the interface for user registration and login
type AuthService interface {
	// Register creates a new user account and returns it with a signed
	// access token. Returns ErrDuplicateEmail if the email is taken.
	Register(ctx context.Context, name, email, password string) (*user.User, string, error)

	// Login verifies credentials and returns the user with a signed
	// access token. Returns ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, email, password string) (*user.User, string, error)

	// GetUserByID retrieves a user by its ID
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// MemberService defines the interface for group member operations
type MemberService interface {
	// CreateMember registers a new group member
	// Returns ErrDuplicateEmail if a member with the same email exists
	CreateMember(ctx context.Context, name, email string) (*member.Member, error)

	// GetMemberByID retrieves a member by its ID
	GetMemberByID(ctx context.Context, id uuid.UUID) (*member.Member, error)

	// ListMembers retrieves all registered members
	ListMembers(ctx context.Context) ([]*member.Member, error)
}

// ExpenseService defines the interface for expense record operations
type ExpenseService interface {
	// CreateExpense records a shared expense and its outbox event
	// atomically. An empty participant set means the whole group.
	CreateExpense(ctx context.Context, description string, amount money.Money, payerID uuid.UUID, participantIDs []uuid.UUID, correlationID string) (*expense.Expense, error)

	// GetExpenseByID retrieves an expense record by its ID
	GetExpenseByID(ctx context.Context, id uuid.UUID) (*expense.Expense, error)

	// ListExpenses retrieves all expense records, newest first
	ListExpenses(ctx context.Context) ([]*expense.Expense, error)
}

// SettlementService defines the interface for settlement record operations
type SettlementService interface {
	// CreateSettlement records a repayment and its outbox event atomically
	CreateSettlement(ctx context.Context, fromID, toID uuid.UUID, amount money.Money, correlationID string) (*settlement.Settlement, error)

	// GetSettlementByID retrieves a settlement record by its ID
	GetSettlementByID(ctx context.Context, id uuid.UUID) (*settlement.Settlement, error)

	// ListSettlements retrieves all settlement records, newest first
	ListSettlements(ctx context.Context) ([]*settlement.Settlement, error)
}

// BalanceService defines the interface for balance queries. All balances
// are derived on demand from the full record history.
type BalanceService interface {
	// AllBalances returns the net position of every member whose balance
	// is meaningfully different from zero
	AllBalances(ctx context.Context) (ledger.Balances, error)

	// BalanceFor returns one member's net position, settled or not
	BalanceFor(ctx context.Context, memberID uuid.UUID) (money.Money, error)

	// PairBalance returns the net position between two members, from the
	// first member's point of view
	PairBalance(ctx context.Context, memberID, otherID uuid.UUID) (money.Money, error)
}

// ActivityService defines the interface for the payment-history feed
type ActivityService interface {
	// ListActivity retrieves a page of feed entries, newest first.
	// Returns entries, total count, and any error.
	ListActivity(ctx context.Context, page, perPage int) ([]*activity.Entry, int64, error)
}
