package reputation

import (
	"context"
	"errors"

	"villagefi-lending-pool/internal/domain/fault"
	"villagefi-lending-pool/internal/domain/pool"
	domain "villagefi-lending-pool/internal/domain/reputation"
	"villagefi-lending-pool/internal/domain/uow"
	"villagefi-lending-pool/pkg/chainclock"

	"go.uber.org/zap"
)

type Usecase struct {
	uow   uow.UnitOfWork
	clock chainclock.Clock
	log   *zap.Logger
}

func NewUsecase(u uow.UnitOfWork, clk chainclock.Clock, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{uow: u, clock: clk, log: log}
}

type ReputationDTO struct {
	Principal    string `json:"principal"`
	Score        int64  `json:"score"`
	TotalLoans   uint64 `json:"total_loans"`
	RepaidLoans  uint64 `json:"repaid_loans"`
	DefaultLoans uint64 `json:"default_loans"`
	LastUpdated  uint64 `json:"last_updated"`
}

func toDTO(r *domain.Reputation) *ReputationDTO {
	return &ReputationDTO{
		Principal:    r.Principal,
		Score:        r.Score,
		TotalLoans:   r.TotalLoans,
		RepaidLoans:  r.RepaidLoans,
		DefaultLoans: r.DefaultLoans,
		LastUpdated:  r.LastUpdated,
	}
}

// Get never fails for unknown principals; they read as the default record.
func (u *Usecase) Get(ctx context.Context, principal string) (*ReputationDTO, error) {
	var dto *ReputationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rep, err := domain.GetOrDefault(ctx, r.Reputations, principal)
		if err != nil {
			return err
		}
		dto = toDTO(rep)
		return nil
	})
	return dto, err
}

// InterestRate quotes the tiered flat rate for a score.
func (u *Usecase) InterestRate(score int64) uint64 { return domain.RateForScore(score) }

// Vote records a one-time peer vote and shifts the target's score.
func (u *Usecase) Vote(ctx context.Context, voter, target string, dir domain.Direction) error {
	if !dir.Valid() {
		return errors.New("invalid vote direction")
	}
	if voter == target {
		return fault.ErrCannotVoteSelf
	}
	err := u.uow.WithinPoolTx(ctx, func(r uow.Repos, _ *pool.State) error {
		voted, err := r.Reputations.HasVoted(ctx, voter, target)
		if err != nil {
			return err
		}
		if voted {
			return fault.ErrAlreadyVoted
		}
		if err := r.Reputations.CreateVote(ctx, &domain.Vote{Voter: voter, Target: target, Direction: dir}); err != nil {
			return err
		}
		rep, err := domain.GetOrDefault(ctx, r.Reputations, target)
		if err != nil {
			return err
		}
		rep.ApplyVote(dir, u.clock.Height())
		return r.Reputations.Save(ctx, rep)
	})
	if err == nil {
		u.log.Info("reputation vote recorded",
			zap.String("voter", voter),
			zap.String("target", target),
			zap.String("direction", string(dir)))
	}
	return err
}
