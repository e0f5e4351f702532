package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name        string
		tithes      string
		split       FundSplit
		shared      string
		pastoral    string
		operational string
	}{
		{
			name:        "default split of 1000",
			tithes:      "1000",
			split:       DefaultFundSplit(),
			shared:      "100.00",
			pastoral:    "100.00",
			operational: "800.00",
		},
		{
			name:        "default split of 9755",
			tithes:      "9755.00",
			split:       DefaultFundSplit(),
			shared:      "975.50",
			pastoral:    "975.50",
			operational: "7804.00",
		},
		{
			name:        "shares rounded independently",
			tithes:      "10.005",
			split:       DefaultFundSplit(),
			shared:      "1.00",
			pastoral:    "1.00",
			operational: "8.00",
		},
		{
			name:        "zero tithes",
			tithes:      "0",
			split:       DefaultFundSplit(),
			shared:      "0",
			pastoral:    "0",
			operational: "0",
		},
		{
			name:   "unbalanced split is applied as given",
			tithes: "200",
			split: FundSplit{
				SharedFund:   decimal.NewFromInt(15),
				PastoralTeam: decimal.NewFromInt(10),
				Operational:  decimal.NewFromInt(80),
			},
			shared:      "30",
			pastoral:    "20",
			operational: "160",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(dec(tt.tithes), tt.split)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.SharedFundShare.Equal(dec(tt.shared)) {
				t.Errorf("shared = %s, want %s", got.SharedFundShare, tt.shared)
			}
			if !got.PastoralTeamShare.Equal(dec(tt.pastoral)) {
				t.Errorf("pastoral = %s, want %s", got.PastoralTeamShare, tt.pastoral)
			}
			if !got.OperationalFundShare.Equal(dec(tt.operational)) {
				t.Errorf("operational = %s, want %s", got.OperationalFundShare, tt.operational)
			}
		})
	}
}

func TestAllocate_ResidualIsNotAbsorbed(t *testing.T) {
	tithes := dec("10.005")
	got, err := Allocate(tithes, DefaultFundSplit())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Total().Equal(dec("10.00")) {
		t.Errorf("total = %s, want 10.00", got.Total())
	}
	if !got.Residual(tithes).Equal(dec("0.005")) {
		t.Errorf("residual = %s, want 0.005", got.Residual(tithes))
	}
}

func TestAllocate_NegativeTithes(t *testing.T) {
	_, err := Allocate(dec("-1"), DefaultFundSplit())
	if !errors.Is(err, domainerror.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestAllocate_Linear(t *testing.T) {
	cent := dec("0.01")
	amounts := []string{"0.01", "1", "10.005", "333.33", "9755", "12345.67", "0.99"}

	for _, a := range amounts {
		t.Run(a, func(t *testing.T) {
			single, err := Allocate(dec(a), DefaultFundSplit())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			double, err := Allocate(dec(a).Mul(decimal.NewFromInt(2)), DefaultFundSplit())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			pairs := [][2]decimal.Decimal{
				{double.SharedFundShare, single.SharedFundShare},
				{double.PastoralTeamShare, single.PastoralTeamShare},
				{double.OperationalFundShare, single.OperationalFundShare},
			}
			for _, p := range pairs {
				diff := p[0].Sub(p[1].Mul(decimal.NewFromInt(2))).Abs()
				if diff.GreaterThan(cent) {
					t.Errorf("allocate(2T) = %s, 2*allocate(T) = %s", p[0], p[1].Mul(decimal.NewFromInt(2)))
				}
			}
		})
	}
}

func TestFundSplit(t *testing.T) {
	if !DefaultFundSplit().IsBalanced() {
		t.Error("default split should be balanced")
	}

	split, err := NewFundSplit(decimal.NewFromInt(20), decimal.NewFromInt(10), decimal.NewFromInt(80))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if split.IsBalanced() {
		t.Error("20/10/80 should not be balanced")
	}
	if !split.Total().Equal(decimal.NewFromInt(110)) {
		t.Errorf("total = %s, want 110", split.Total())
	}

	_, err = NewFundSplit(decimal.NewFromInt(-1), decimal.NewFromInt(10), decimal.NewFromInt(80))
	if !errors.Is(err, domainerror.ErrInvalidPercentage) {
		t.Errorf("expected ErrInvalidPercentage, got %v", err)
	}
}
