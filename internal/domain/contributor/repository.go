package contributor

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contributor) error
	// GetByPrincipal returns gorm.ErrRecordNotFound for unknown principals.
	GetByPrincipal(ctx context.Context, principal string) (*Contributor, error)
	Save(ctx context.Context, c *Contributor) error
}
