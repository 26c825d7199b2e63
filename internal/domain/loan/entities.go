package loan

import "time"

// Loan is issued principal plus its fixed pricing. Immutable after creation
// except for the one-way Repaid flip; a default leaves the row untouched and
// is visible only through the borrower's reputation counters.
type Loan struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"loan_id"`
	Borrower     string    `gorm:"size:64;column:borrower;not null;index:idx_loans_borrower_active" json:"borrower"`
	Amount       uint64    `gorm:"column:amount;not null" json:"amount"`
	InterestRate uint64    `gorm:"column:interest_rate;not null" json:"interest_rate"`
	DueDate      uint64    `gorm:"column:due_date;not null" json:"due_date"`
	Repaid       bool      `gorm:"column:repaid;not null;index:idx_loans_borrower_active" json:"repaid"`
	IssuedAt     uint64    `gorm:"column:issued_at;not null" json:"issued_at"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Overdue reports whether the loan is past due and still unpaid at the given
// block height.
func (l *Loan) Overdue(height uint64) bool {
	return height > l.DueDate && !l.Repaid
}

// TotalDue is principal plus flat interest, truncating integer division.
func (l *Loan) TotalDue() uint64 {
	return l.Amount + l.Amount*l.InterestRate/100
}
