package reputation

import "time"

// DefaultScore is assigned to every principal before any votes or loan
// outcomes touch them.
const DefaultScore int64 = 50

// Vote deltas and loan-outcome adjustments. The score column is signed and
// deliberately unclamped: enough negative votes can push it below zero.
const (
	UpvoteDelta   int64 = 5
	DownvoteDelta int64 = 3
	RepaidBonus   int64 = 10
	DefaultPenalty int64 = 20
)

type Direction string

const (
	Positive Direction = "positive"
	Negative Direction = "negative"
)

func (d Direction) Valid() bool { return d == Positive || d == Negative }

// Reputation is a principal's peer-trust record. Invariant:
// RepaidLoans + DefaultLoans <= TotalLoans.
type Reputation struct {
	Principal    string    `gorm:"primaryKey;size:64;column:principal" json:"principal"`
	Score        int64     `gorm:"column:score;not null;default:50" json:"score"`
	TotalLoans   uint64    `gorm:"column:total_loans;not null" json:"total_loans"`
	RepaidLoans  uint64    `gorm:"column:repaid_loans;not null" json:"repaid_loans"`
	DefaultLoans uint64    `gorm:"column:default_loans;not null" json:"default_loans"`
	LastUpdated  uint64    `gorm:"column:last_updated;not null" json:"last_updated"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Reputation) TableName() string { return "reputations" }

// NewDefault returns the record every principal starts from.
func NewDefault(principal string) *Reputation {
	return &Reputation{Principal: principal, Score: DefaultScore}
}

// Vote marks that voter has already rated target. The composite unique index
// backs the one-vote-per-(voter,target) invariant at the storage layer too.
type Vote struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	Voter     string    `gorm:"size:64;column:voter;not null;uniqueIndex:ux_votes_voter_target" json:"voter"`
	Target    string    `gorm:"size:64;column:target;not null;uniqueIndex:ux_votes_voter_target" json:"target"`
	Direction Direction `gorm:"size:16;column:direction;not null" json:"direction"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Vote) TableName() string { return "reputation_votes" }

// ApplyVote adjusts the score by the peer-vote delta. No floor or ceiling:
// the stored arithmetic stays unclamped.
func (r *Reputation) ApplyVote(d Direction, height uint64) {
	if d == Positive {
		r.Score += UpvoteDelta
	} else {
		r.Score -= DownvoteDelta
	}
	r.LastUpdated = height
}

// ApplyIssued counts a freshly created loan. TotalLoans moves at issuance,
// not at the outcome.
func (r *Reputation) ApplyIssued(height uint64) {
	r.TotalLoans++
	r.LastUpdated = height
}

func (r *Reputation) ApplyRepaid(height uint64) {
	r.Score += RepaidBonus
	r.RepaidLoans++
	r.LastUpdated = height
}

func (r *Reputation) ApplyDefault(height uint64) {
	r.Score -= DefaultPenalty
	r.DefaultLoans++
	r.LastUpdated = height
}

// RateForScore maps a reputation score to the flat interest percentage.
// Tier lower bounds are inclusive.
func RateForScore(score int64) uint64 {
	switch {
	case score >= 80:
		return 5
	case score >= 60:
		return 8
	default:
		return 12
	}
}
