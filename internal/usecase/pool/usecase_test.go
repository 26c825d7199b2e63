package pool

import (
	"context"
	"errors"
	"testing"

	"villagefi-lending-pool/internal/domain/fault"
	"villagefi-lending-pool/internal/testutil/testdb"
	"villagefi-lending-pool/pkg/chainclock"
	"villagefi-lending-pool/pkg/id"
)

func newUsecase(t *testing.T) (*Usecase, *chainclock.Manual) {
	t.Helper()
	clk := chainclock.NewManual(1)
	return NewUsecase(testdb.UoW(t), clk, nil), clk
}

func TestContribute_AccumulatesAndCreditsPool(t *testing.T) {
	uc, clk := newUsecase(t)
	ctx := context.Background()
	principal := id.NewID32()

	clk.Set(5)
	got, err := uc.Contribute(ctx, principal, 1_000_000)
	if err != nil {
		t.Fatalf("Contribute: %v", err)
	}
	if got != 1_000_000 {
		t.Fatalf("returned amount = %d", got)
	}

	balance, err := uc.Balance(ctx)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != 1_000_000 {
		t.Fatalf("balance = %d, want 1000000", balance)
	}

	// second contribution accumulates; join date stays at first contact
	clk.Set(9)
	if _, err := uc.Contribute(ctx, principal, 500_000); err != nil {
		t.Fatalf("second Contribute: %v", err)
	}
	info, err := uc.ContributorInfo(ctx, principal)
	if err != nil {
		t.Fatalf("ContributorInfo: %v", err)
	}
	if info == nil {
		t.Fatal("contributor missing")
	}
	if info.AmountContributed != 1_500_000 {
		t.Fatalf("cumulative = %d, want 1500000", info.AmountContributed)
	}
	if info.JoinDate != 5 {
		t.Fatalf("join date = %d, want 5", info.JoinDate)
	}
	if info.RewardsEarned != 0 {
		t.Fatalf("rewards = %d, want 0", info.RewardsEarned)
	}
}

func TestContribute_ZeroAmount(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	_, err := uc.Contribute(ctx, id.NewID32(), 0)
	if !errors.Is(err, fault.ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
	balance, err := uc.Balance(ctx)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != 0 {
		t.Fatalf("failed contribution moved balance: %d", balance)
	}
}

func TestContributorInfo_UnknownPrincipal(t *testing.T) {
	uc, _ := newUsecase(t)
	info, err := uc.ContributorInfo(context.Background(), id.NewID32())
	if err != nil {
		t.Fatalf("ContributorInfo: %v", err)
	}
	if info != nil {
		t.Fatalf("expected no record, got %+v", info)
	}
}

func TestWithdraw(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	if _, err := uc.Contribute(ctx, id.NewID32(), 2_000_000); err != nil {
		t.Fatalf("Contribute: %v", err)
	}

	// over-withdrawal fails and leaves the balance alone
	if _, err := uc.Withdraw(ctx, 3_000_000); !errors.Is(err, fault.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	balance, _ := uc.Balance(ctx)
	if balance != 2_000_000 {
		t.Fatalf("balance = %d, want 2000000", balance)
	}

	got, err := uc.Withdraw(ctx, 1_000_000)
	if err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	if got != 1_000_000 {
		t.Fatalf("withdrawn = %d", got)
	}
	balance, _ = uc.Balance(ctx)
	if balance != 1_000_000 {
		t.Fatalf("balance = %d, want 1000000", balance)
	}
}
