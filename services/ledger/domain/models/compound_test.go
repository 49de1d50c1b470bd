package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestApplyReceipt(t *testing.T) {
	item := NewInventoryItem("Cement", dec("20"), "bag", dec("10"))

	mv, tx := ApplyReceipt(item, ReceiptParams{
		ItemID:    item.ID,
		Quantity:  dec("10"),
		UnitPrice: dec("5"),
		Supplier:  "ABC Suppliers",
		Date:      "2024-03-01",
		Approved:  true,
		CreatedBy: "owner",
	})

	if !item.Quantity.Equal(dec("30")) {
		t.Errorf("expected quantity 30, got %s", item.Quantity)
	}
	wantUpdated := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !item.UpdatedAt.Equal(wantUpdated) {
		t.Errorf("expected updated_at %v, got %v", wantUpdated, item.UpdatedAt)
	}

	if mv.Kind != MovementIn {
		t.Errorf("expected kind in, got %s", mv.Kind)
	}
	if !mv.Total.Equal(dec("50")) {
		t.Errorf("expected total 50, got %s", mv.Total)
	}
	if mv.Party != "ABC Suppliers" {
		t.Errorf("expected party ABC Suppliers, got %s", mv.Party)
	}

	if tx.Type != TransactionExpense {
		t.Errorf("expected expense, got %s", tx.Type)
	}
	if !tx.Amount.Equal(dec("50")) {
		t.Errorf("expected amount 50, got %s", tx.Amount)
	}
	if !tx.Approved {
		t.Error("expected approved flag carried through")
	}
	if tx.CreatedBy != "owner" {
		t.Errorf("expected created_by owner, got %s", tx.CreatedBy)
	}
	want := "Inventory receipt: Cement from ABC Suppliers (10 bag @ 5)"
	if tx.Description != want {
		t.Errorf("expected description %q, got %q", want, tx.Description)
	}
}

func TestApplyIssue(t *testing.T) {
	t.Run("normal issue", func(t *testing.T) {
		item := NewInventoryItem("Cement", dec("20"), "bag", dec("10"))

		mv, tx := ApplyIssue(item, IssueParams{
			ItemID:    item.ID,
			Quantity:  dec("5"),
			UnitPrice: dec("4"),
			Project:   "Golden Valley site",
			Date:      "2024-03-02",
		})

		if !item.Quantity.Equal(dec("15")) {
			t.Errorf("expected quantity 15, got %s", item.Quantity)
		}
		if mv.Kind != MovementOut {
			t.Errorf("expected kind out, got %s", mv.Kind)
		}
		if !tx.Amount.Equal(dec("20")) {
			t.Errorf("expected amount 20, got %s", tx.Amount)
		}
		want := "Inventory issue: Cement to Golden Valley site (5 bag @ 4)"
		if tx.Description != want {
			t.Errorf("expected description %q, got %q", want, tx.Description)
		}
	})

	t.Run("over-issue floors at zero", func(t *testing.T) {
		item := NewInventoryItem("Cement", dec("20"), "bag", dec("10"))

		mv, tx := ApplyIssue(item, IssueParams{
			ItemID:    item.ID,
			Quantity:  dec("25"),
			UnitPrice: dec("5"),
			Project:   "Golden Valley site",
			Date:      "2024-03-02",
		})

		if !item.Quantity.Equal(decimal.Zero) {
			t.Errorf("expected quantity 0, got %s", item.Quantity)
		}
		// The movement and books keep the full issued amount.
		if !mv.Quantity.Equal(dec("25")) {
			t.Errorf("expected movement quantity 25, got %s", mv.Quantity)
		}
		if !tx.Amount.Equal(dec("125")) {
			t.Errorf("expected amount 125, got %s", tx.Amount)
		}
	})
}

func TestBuildProjectCost_Descriptions(t *testing.T) {
	cases := []struct {
		costType CostType
		want     string
	}{
		{CostConstruction, "construction cost for project Golden Valley"},
		{CostOperation, "operation cost for project Golden Valley"},
		{CostExpense, "general expense cost for project Golden Valley"},
	}

	for _, tc := range cases {
		t.Run(string(tc.costType), func(t *testing.T) {
			cost, tx := BuildProjectCost(CostParams{
				ProjectName: "Golden Valley",
				Type:        tc.costType,
				Amount:      dec("100"),
				Date:        "2024-03-01",
			})
			if cost.Type != tc.costType {
				t.Errorf("expected type %s, got %s", tc.costType, cost.Type)
			}
			if tx.Type != TransactionExpense {
				t.Errorf("expected expense, got %s", tx.Type)
			}
			if tx.Description != tc.want {
				t.Errorf("expected description %q, got %q", tc.want, tx.Description)
			}
		})
	}
}

func TestBuildProjectSale(t *testing.T) {
	sale, tx := BuildProjectSale(SaleParams{
		ProjectName: "Golden Valley",
		UnitNo:      "A-12",
		Buyer:       "U Kyaw",
		Price:       dec("85000000"),
		Date:        "2024-03-01",
		Terms:       "50% down",
	})

	if sale.UnitNo != "A-12" || sale.Terms != "50% down" {
		t.Errorf("sale fields not carried through: %+v", sale)
	}
	if tx.Type != TransactionRevenue {
		t.Errorf("expected revenue, got %s", tx.Type)
	}
	if !tx.Amount.Equal(dec("85000000")) {
		t.Errorf("expected amount 85000000, got %s", tx.Amount)
	}
	want := "Sale of unit A-12 in project Golden Valley to U Kyaw"
	if tx.Description != want {
		t.Errorf("expected description %q, got %q", want, tx.Description)
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2024-03-01", "2024-03-01"},
		{"2024-03-01T10:30:00Z", "2024-03-01"},
		{"2024-03-01 10:30:00", "2024-03-01"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDate(tc.in); got != tc.want {
			t.Errorf("NormalizeDate(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestDateTimestamp(t *testing.T) {
	got := DateTimestamp("2024-03-01")
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Unparseable dates fall back to roughly now.
	fallback := DateTimestamp("not-a-date")
	if time.Since(fallback) > time.Minute {
		t.Errorf("expected fallback near now, got %v", fallback)
	}
}

func TestBelowMinimum(t *testing.T) {
	item := NewInventoryItem("Cement", dec("10"), "bag", dec("10"))
	if !item.BelowMinimum() {
		t.Error("quantity equal to min level counts as below minimum")
	}
	item.Quantity = dec("10.5")
	if item.BelowMinimum() {
		t.Error("quantity above min level must not count as below minimum")
	}
}
