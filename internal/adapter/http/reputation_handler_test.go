package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"testing"

	"villagefi-lending-pool/internal/domain/fault"
	repDomain "villagefi-lending-pool/internal/domain/reputation"
	repuc "villagefi-lending-pool/internal/usecase/reputation"
	"villagefi-lending-pool/pkg/id"
)

func TestVote_Success(t *testing.T) {
	e := newEchoWithValidator()
	s := newStack(t)
	h := NewReputationHandler(s.rep)
	target := id.NewID32()

	c, rec := doJSON(e, stdhttp.MethodPost, "/reputation/votes",
		mustJSON(map[string]any{"target": target, "direction": "positive"}), id.NewID32())
	if err := h.Vote(c); err != nil {
		t.Fatalf("Vote error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	dto, err := s.rep.Get(context.Background(), target)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if dto.Score != 55 {
		t.Fatalf("score = %d, want 55", dto.Score)
	}
}

func TestVote_ValidationErrors(t *testing.T) {
	e := newEchoWithValidator()
	s := newStack(t)
	h := NewReputationHandler(s.rep)

	// bad target shape and a direction outside the enum
	c, rec := doJSON(e, stdhttp.MethodPost, "/reputation/votes",
		mustJSON(map[string]any{"target": "NOT_HEX", "direction": "sideways"}), id.NewID32())
	if err := h.Vote(c); err != nil {
		t.Fatalf("Vote error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(er.Details, "Target", "32-char lowercase hex") {
		t.Fatalf("missing hex32 detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "Direction", "must be one of") {
		t.Fatalf("missing oneof detail: %+v", er.Details)
	}
}

func TestVote_SelfAndDuplicate(t *testing.T) {
	e := newEchoWithValidator()
	s := newStack(t)
	h := NewReputationHandler(s.rep)
	voter := id.NewID32()
	target := id.NewID32()

	// voting for yourself: 400
	c, rec := doJSON(e, stdhttp.MethodPost, "/reputation/votes",
		mustJSON(map[string]any{"target": voter, "direction": "positive"}), voter)
	if err := h.Vote(c); err != nil {
		t.Fatalf("Vote error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if code := faultCode(t, rec); code != int(fault.CodeCannotVoteSelf) {
		t.Fatalf("code = %d, want %d", code, fault.CodeCannotVoteSelf)
	}

	// same pair twice: 409, regardless of direction
	c, _ = doJSON(e, stdhttp.MethodPost, "/reputation/votes",
		mustJSON(map[string]any{"target": target, "direction": "positive"}), voter)
	if err := h.Vote(c); err != nil {
		t.Fatalf("Vote error: %v", err)
	}
	c, rec = doJSON(e, stdhttp.MethodPost, "/reputation/votes",
		mustJSON(map[string]any{"target": target, "direction": "negative"}), voter)
	if err := h.Vote(c); err != nil {
		t.Fatalf("Vote error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if code := faultCode(t, rec); code != int(fault.CodeAlreadyVoted) {
		t.Fatalf("code = %d, want %d", code, fault.CodeAlreadyVoted)
	}
}

func TestGetReputation_DefaultForUnknown(t *testing.T) {
	e := newEchoWithValidator()
	s := newStack(t)
	h := NewReputationHandler(s.rep)

	unknown := id.NewID32()
	c, rec := doJSON(e, stdhttp.MethodGet, "/reputation/"+unknown, nil, "")
	c.SetParamNames("principal")
	c.SetParamValues(unknown)
	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var dto repuc.ReputationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Score != repDomain.DefaultScore || dto.TotalLoans != 0 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestInterestRate(t *testing.T) {
	e := newEchoWithValidator()
	s := newStack(t)
	h := NewReputationHandler(s.rep)

	cases := []struct {
		score string
		want  uint64
	}{
		{"95", 5}, {"80", 5}, {"60", 8}, {"59", 12}, {"-10", 12},
	}
	for _, tc := range cases {
		c, rec := doJSON(e, stdhttp.MethodGet, "/reputation/interest-rate?score="+tc.score, nil, "")
		if err := h.InterestRate(c); err != nil {
			t.Fatalf("InterestRate error: %v", err)
		}
		if rec.Code != stdhttp.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body map[string]uint64
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
		if body["interest_rate"] != tc.want {
			t.Fatalf("score %s: rate = %d, want %d", tc.score, body["interest_rate"], tc.want)
		}
	}

	c, rec := doJSON(e, stdhttp.MethodGet, "/reputation/interest-rate?score=abc", nil, "")
	if err := h.InterestRate(c); err != nil {
		t.Fatalf("InterestRate error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
