package contributor

import "time"

// Contributor tracks a funder's cumulative stake in the pool. Created on the
// first contribution and never deleted; AmountContributed only grows.
type Contributor struct {
	Principal         string    `gorm:"primaryKey;size:64;column:principal" json:"principal"`
	AmountContributed uint64    `gorm:"column:amount_contributed;not null" json:"amount_contributed"`
	RewardsEarned     uint64    `gorm:"column:rewards_earned;not null" json:"rewards_earned"` // reserved, always 0 for now
	JoinDate          uint64    `gorm:"column:join_date;not null" json:"join_date"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Contributor) TableName() string { return "contributors" }
