package domain

import "testing"

func TestOperationModeIsValid(t *testing.T) {
	valid := []OperationMode{ModeDirectSale, ModeAgencySale, ModeDirectRental, ModeAgencyRental}
	for _, m := range valid {
		if !m.IsValid() {
			t.Fatalf("%s should be valid", m)
		}
	}
	if OperationMode("LEASE").IsValid() {
		t.Fatalf("unknown mode should be invalid")
	}
}

func TestOperationModeIsRental(t *testing.T) {
	if ModeDirectSale.IsRental() || ModeAgencySale.IsRental() {
		t.Fatalf("sale modes must not be rental")
	}
	if !ModeDirectRental.IsRental() || !ModeAgencyRental.IsRental() {
		t.Fatalf("rental modes must be rental")
	}
}

func TestProposalStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ProposalStatus
		want     bool
	}{
		{ProposalStatusDraft, ProposalStatusSent, true},
		{ProposalStatusDraft, ProposalStatusAccepted, false},
		{ProposalStatusSent, ProposalStatusAccepted, true},
		{ProposalStatusSent, ProposalStatusRejected, true},
		{ProposalStatusSent, ProposalStatusExpired, true},
		{ProposalStatusAccepted, ProposalStatusRejected, false},
		{ProposalStatusRejected, ProposalStatusSent, false},
		{ProposalStatusExpired, ProposalStatusSent, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Fatalf("%s -> %s = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestProposalItemValidate(t *testing.T) {
	item := &ProposalItem{Quantity: 1}
	if err := item.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item = &ProposalItem{Quantity: 0}
	if err := item.Validate(); err == nil {
		t.Fatalf("expected error for zero quantity")
	}

	neg := -1
	item = &ProposalItem{Quantity: 1, RentalPeriodMonths: &neg}
	if err := item.Validate(); err == nil {
		t.Fatalf("expected error for negative rental period")
	}

	item = &ProposalItem{Quantity: 1, UnitCost: -0.5}
	if err := item.Validate(); err == nil {
		t.Fatalf("expected error for negative cost")
	}
}
