package domain

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	n, err := Nights(date("2024-04-01"), date("2024-04-03"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("nights = %d, want 2", n)
	}
}

func TestNightsSameDay(t *testing.T) {
	n, err := Nights(date("2024-04-01"), date("2024-04-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("same-day nights = %d, want 0", n)
	}
}

func TestNightsReversedRange(t *testing.T) {
	_, err := Nights(date("2024-04-05"), date("2024-04-01"))
	if err == nil {
		t.Fatal("expected error for reversed range")
	}
	if !IsInvalidRange(err) {
		t.Fatalf("expected InvalidRangeError, got %T", err)
	}
}

func TestComputeBreakdownNoDiscount(t *testing.T) {
	// 2500/night x 2 nights: subtotal 5000, fee 250, tax 600, total 5850.
	bd, err := ComputeBreakdown(2500, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bd.Subtotal != 5000 {
		t.Errorf("subtotal = %d, want 5000", bd.Subtotal)
	}
	if bd.ServiceFee != 250 {
		t.Errorf("service fee = %d, want 250", bd.ServiceFee)
	}
	if bd.Tax != 600 {
		t.Errorf("tax = %d, want 600", bd.Tax)
	}
	if bd.DiscountAmount != 0 {
		t.Errorf("discount = %d, want 0", bd.DiscountAmount)
	}
	if bd.Total != 5850 {
		t.Errorf("total = %d, want 5850", bd.Total)
	}
}

func TestComputeBreakdownWithWelcome10(t *testing.T) {
	pct, err := LookupDiscount("WELCOME10")
	if err != nil {
		t.Fatalf("lookup error: %v", err)
	}
	bd, err := ComputeBreakdown(2500, 2, pct)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bd.DiscountAmount != 500 {
		t.Errorf("discount amount = %d, want 500", bd.DiscountAmount)
	}
	if bd.Total != 5350 {
		t.Errorf("total = %d, want 5350", bd.Total)
	}
}

func TestComputeBreakdownTotalNeverBelowSubtotalWithoutDiscount(t *testing.T) {
	for _, rate := range []int64{1, 999, 1800, 2500, 3500} {
		for _, nights := range []int{1, 2, 7, 30} {
			bd, err := ComputeBreakdown(rate, nights, 0)
			if err != nil {
				t.Fatalf("rate=%d nights=%d: %v", rate, nights, err)
			}
			if bd.Total < bd.Subtotal {
				t.Errorf("rate=%d nights=%d: total %d below subtotal %d", rate, nights, bd.Total, bd.Subtotal)
			}
		}
	}
}

func TestComputeBreakdownDiscountMonotonic(t *testing.T) {
	base, err := ComputeBreakdown(2800, 3, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, code := range []string{"WELCOME10", "FIRSTTIME", "RURAL20"} {
		pct, err := LookupDiscount(code)
		if err != nil {
			t.Fatalf("lookup %s: %v", code, err)
		}
		bd, err := ComputeBreakdown(2800, 3, pct)
		if err != nil {
			t.Fatalf("breakdown %s: %v", code, err)
		}
		if bd.Total > base.Total {
			t.Errorf("%s: discounted total %d exceeds base %d", code, bd.Total, base.Total)
		}
		if bd.DiscountAmount > bd.Subtotal {
			t.Errorf("%s: discount %d exceeds subtotal %d", code, bd.DiscountAmount, bd.Subtotal)
		}
	}
}

func TestComputeBreakdownRejectsBadInputs(t *testing.T) {
	cases := []struct {
		name     string
		rate     int64
		nights   int
		discount int
	}{
		{"zero rate", 0, 2, 0},
		{"negative rate", -100, 2, 0},
		{"zero nights", 2500, 0, 0},
		{"negative discount", 2500, 2, -5},
		{"discount over 100", 2500, 2, 101},
	}
	for _, tc := range cases {
		if _, err := ComputeBreakdown(tc.rate, tc.nights, tc.discount); !IsInvalidInput(err) {
			t.Errorf("%s: expected InvalidInputError, got %v", tc.name, err)
		}
	}
}

func TestLookupDiscount(t *testing.T) {
	want := map[string]int{"WELCOME10": 10, "RURAL20": 20, "FIRSTTIME": 15}
	for code, pct := range want {
		got, err := LookupDiscount(code)
		if err != nil {
			t.Fatalf("%s: %v", code, err)
		}
		if got != pct {
			t.Errorf("%s = %d, want %d", code, got, pct)
		}
	}
}

func TestLookupDiscountUnknownAndCaseSensitive(t *testing.T) {
	for _, code := range []string{"SUMMER50", "welcome10", "WELCOME10 ", ""} {
		if _, err := LookupDiscount(code); !IsDiscountNotFound(err) {
			t.Errorf("%q: expected DiscountNotFoundError, got %v", code, err)
		}
	}
}
