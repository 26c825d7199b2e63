package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"testing"

	"villagefi-lending-pool/internal/domain/fault"
	pooluc "villagefi-lending-pool/internal/usecase/pool"
	"villagefi-lending-pool/pkg/id"
)

func TestContribute(t *testing.T) {
	e := newEchoWithValidator()
	s := newStack(t)
	h := NewPoolHandler(s.pool)
	principal := id.NewID32()

	c, rec := doJSON(e, stdhttp.MethodPost, "/pool/contributions", mustJSON(map[string]any{"amount": 500_000}), principal)
	if err := h.Contribute(c); err != nil {
		t.Fatalf("Contribute error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var body map[string]uint64
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["amount"] != 500_000 {
		t.Fatalf("amount = %d, want 500000", body["amount"])
	}

	// a second deposit accumulates on the contributor record
	c, rec = doJSON(e, stdhttp.MethodPost, "/pool/contributions", mustJSON(map[string]any{"amount": 250_000}), principal)
	if err := h.Contribute(c); err != nil {
		t.Fatalf("Contribute error: %v", err)
	}
	body = nil
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["amount"] != 250_000 {
		t.Fatalf("amount = %d, want 250000", body["amount"])
	}
	info, err := s.pool.ContributorInfo(context.Background(), principal)
	if err != nil || info == nil {
		t.Fatalf("ContributorInfo = (%+v, %v)", info, err)
	}
	if info.AmountContributed != 750_000 {
		t.Fatalf("cumulative = %d, want 750000", info.AmountContributed)
	}
}

func TestContribute_ZeroAmount(t *testing.T) {
	e := newEchoWithValidator()
	s := newStack(t)
	h := NewPoolHandler(s.pool)

	c, rec := doJSON(e, stdhttp.MethodPost, "/pool/contributions", mustJSON(map[string]any{"amount": 0}), id.NewID32())
	if err := h.Contribute(c); err != nil {
		t.Fatalf("Contribute error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if code := faultCode(t, rec); code != int(fault.CodeInvalidAmount) {
		t.Fatalf("code = %d, want %d", code, fault.CodeInvalidAmount)
	}
}

func TestBalance(t *testing.T) {
	e := newEchoWithValidator()
	s := newStack(t)
	s.fund(t, 3_000_000)
	h := NewPoolHandler(s.pool)

	c, rec := doJSON(e, stdhttp.MethodGet, "/pool/balance", nil, "")
	if err := h.Balance(c); err != nil {
		t.Fatalf("Balance error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]uint64
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["balance"] != 3_000_000 {
		t.Fatalf("balance = %d, want 3000000", body["balance"])
	}
}

func TestContributorInfo(t *testing.T) {
	e := newEchoWithValidator()
	s := newStack(t)
	h := NewPoolHandler(s.pool)
	principal := id.NewID32()

	s.clk.Set(42)
	if _, err := s.pool.Contribute(context.Background(), principal, 500_000); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, rec := doJSON(e, stdhttp.MethodGet, "/pool/contributors/"+principal, nil, "")
	c.SetParamNames("principal")
	c.SetParamValues(principal)
	if err := h.ContributorInfo(c); err != nil {
		t.Fatalf("ContributorInfo error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var dto pooluc.ContributorDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Principal != principal || dto.AmountContributed != 500_000 || dto.JoinDate != 42 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestContributorInfo_Unknown(t *testing.T) {
	e := newEchoWithValidator()
	s := newStack(t)
	h := NewPoolHandler(s.pool)

	unknown := id.NewID32()
	c, rec := doJSON(e, stdhttp.MethodGet, "/pool/contributors/"+unknown, nil, "")
	c.SetParamNames("principal")
	c.SetParamValues(unknown)
	if err := h.ContributorInfo(c); err != nil {
		t.Fatalf("ContributorInfo error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
