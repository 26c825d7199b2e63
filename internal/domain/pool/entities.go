package pool

import "time"

// Singleton row ids. One pool = one serialization domain: every mutating
// operation locks the state row first, so nothing interleaves mid-call.
const (
	StateID  uint64 = 1
	ConfigID uint64 = 1
)

// State is the aggregate pool balance: net deposits, minus owner withdrawals
// and outstanding principal, plus repaid principal and interest. Never
// negative; Debit is the gate that enforces it.
type State struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	Balance   uint64    `gorm:"column:balance;not null" json:"balance"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (State) TableName() string { return "pool_state" }

// Credit adds funds (contributions, repayments).
func (s *State) Credit(amount uint64) { s.Balance += amount }

// Debit removes funds (loan issuance, withdrawals). Returns false, leaving
// the balance untouched, when amount exceeds it.
func (s *State) Debit(amount uint64) bool {
	if amount > s.Balance {
		return false
	}
	s.Balance -= amount
	return true
}

// Config holds the owner-mutable lending thresholds. MaxLoanAmount zero
// means no cap is configured.
type Config struct {
	ID                 uint64    `gorm:"primaryKey;column:id" json:"-"`
	MinReputation      int64     `gorm:"column:min_reputation;not null" json:"min_reputation"`
	MaxLoanAmount      uint64    `gorm:"column:max_loan_amount;not null" json:"max_loan_amount"`
	LoanDurationBlocks uint64    `gorm:"column:loan_duration_blocks;not null" json:"loan_duration_blocks"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Config) TableName() string { return "pool_config" }
