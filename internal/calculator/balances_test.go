package calculator

import (
	"testing"
)

func TestCalculateBalances_SingleBill(t *testing.T) {
	bills := []BillForBalance{{
		PayerID: "a",
		Splits: []PersonSplit{
			{PersonID: "a", Total: dec("10")},
			{PersonID: "b", Total: dec("15")},
			{PersonID: "c", Total: dec("5")},
		},
	}}

	balances, edges := CalculateBalances(bills, nil)

	if len(balances) != 3 {
		t.Fatalf("Expected 3 balances, got %d", len(balances))
	}
	if balances[0].PersonID != "a" {
		t.Errorf("Expected payer first, got %s", balances[0].PersonID)
	}
	if !balances[0].TotalPaid.Equal(dec("30")) {
		t.Errorf("Expected payer to have paid 30, got %s", balances[0].TotalPaid)
	}
	for i, want := range []string{"20", "-15", "-5"} {
		if !balances[i].NetBalance.Equal(dec(want)) {
			t.Errorf("Balance of %s = %s, want %s", balances[i].PersonID, balances[i].NetBalance, want)
		}
	}

	if len(edges) != 2 {
		t.Fatalf("Expected 2 edges, got %d", len(edges))
	}
	if edges[0].From != "b" || edges[0].To != "a" || !edges[0].Amount.Equal(dec("15")) {
		t.Errorf("First edge mismatch: got %+v", edges[0])
	}
	if edges[1].From != "c" || !edges[1].Amount.Equal(dec("5")) {
		t.Errorf("Second edge mismatch: got %+v", edges[1])
	}
}

func TestCalculateBalances_WithPayments(t *testing.T) {
	bills := []BillForBalance{{
		PayerID: "a",
		Splits: []PersonSplit{
			{PersonID: "a", Total: dec("10")},
			{PersonID: "b", Total: dec("15")},
		},
	}}
	payments := []PaymentForBalance{{FromPersonID: "b", ToPersonID: "a", Amount: dec("10")}}

	_, edges := CalculateBalances(bills, payments)

	if len(edges) != 1 {
		t.Fatalf("Expected 1 edge, got %d", len(edges))
	}
	if edges[0].From != "b" || edges[0].To != "a" || !edges[0].Amount.Equal(dec("5")) {
		t.Errorf("Edge mismatch: got %+v", edges[0])
	}
}

func TestCalculateBalances_FullySettled(t *testing.T) {
	bills := []BillForBalance{{
		PayerID: "a",
		Splits:  []PersonSplit{{PersonID: "b", Total: dec("12.34")}},
	}}
	payments := []PaymentForBalance{{FromPersonID: "b", ToPersonID: "a", Amount: dec("12.34")}}

	balances, edges := CalculateBalances(bills, payments)

	if len(edges) != 0 {
		t.Errorf("Expected no edges, got %+v", edges)
	}
	for _, b := range balances {
		if !b.NetBalance.IsZero() {
			t.Errorf("Expected %s to be settled, got %s", b.PersonID, b.NetBalance)
		}
	}
}

func TestCalculateBalances_SkipsBillWithoutPayer(t *testing.T) {
	bills := []BillForBalance{{Splits: []PersonSplit{{PersonID: "b", Total: dec("12")}}}}

	balances, edges := CalculateBalances(bills, nil)

	if len(balances) != 0 || len(edges) != 0 {
		t.Errorf("Expected nothing, got %d balances and %d edges", len(balances), len(edges))
	}
}

func TestCalculateBalances_AcrossBills(t *testing.T) {
	bills := []BillForBalance{
		{PayerID: "a", Splits: []PersonSplit{{PersonID: "a", Total: dec("10")}, {PersonID: "b", Total: dec("10")}}},
		{PayerID: "b", Splits: []PersonSplit{{PersonID: "a", Total: dec("4")}, {PersonID: "b", Total: dec("4")}}},
	}

	_, edges := CalculateBalances(bills, nil)

	if len(edges) != 1 {
		t.Fatalf("Expected 1 edge, got %d", len(edges))
	}
	if edges[0].From != "b" || edges[0].To != "a" || !edges[0].Amount.Equal(dec("6")) {
		t.Errorf("Edge mismatch: got %+v", edges[0])
	}
}
