package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// settleThreshold ignores sub-cent leftovers when matching debts.
var settleThreshold = decimal.New(1, -2)

// BillForBalance represents a settled bill with the minimal information needed for balances.
type BillForBalance struct {
	PayerID string
	Splits  []PersonSplit
}

// MemberBalance represents the balance information for one person.
type MemberBalance struct {
	PersonID   string
	NetBalance decimal.Decimal // Positive = owed money, Negative = owes money
	TotalPaid  decimal.Decimal // Bills paid plus payments made
	TotalOwed  decimal.Decimal // Shares owed plus payments received
}

// DebtEdge represents a debt from one person to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount decimal.Decimal
}

// PaymentForBalance represents a recorded payment between two people.
type PaymentForBalance struct {
	FromPersonID string // Who paid (debtor settling up)
	ToPersonID   string // Who received (creditor being paid)
	Amount       decimal.Decimal
}

// CalculateBalances computes balances across bills and payments.
//
// Algorithm:
// - For each bill: payer contributed the sum of all split totals, each person owes their total
// - For each payment: payer's balance improves, receiver's balance decreases
// - Aggregate: net_balance = total_paid - total_owed
// - Debts: simplified with greedy matching of debtors against creditors
//
// Bills without a payer are skipped. Output is sorted by person ID.
func CalculateBalances(bills []BillForBalance, payments []PaymentForBalance) ([]MemberBalance, []DebtEdge) {
	balances := make(map[string]*MemberBalance)
	get := func(id string) *MemberBalance {
		if b, ok := balances[id]; ok {
			return b
		}
		b := &MemberBalance{PersonID: id}
		balances[id] = b
		return b
	}

	for _, bill := range bills {
		if bill.PayerID == "" {
			continue
		}
		payer := get(bill.PayerID)
		for _, split := range bill.Splits {
			payer.TotalPaid = payer.TotalPaid.Add(split.Total)
			member := get(split.PersonID)
			member.TotalOwed = member.TotalOwed.Add(split.Total)
		}
	}

	for _, p := range payments {
		from := get(p.FromPersonID)
		from.TotalPaid = from.TotalPaid.Add(p.Amount)
		to := get(p.ToPersonID)
		to.TotalOwed = to.TotalOwed.Add(p.Amount)
	}

	ids := make([]string, 0, len(balances))
	for id, bal := range balances {
		bal.NetBalance = bal.TotalPaid.Sub(bal.TotalOwed)
		ids = append(ids, id)
	}
	sort.Strings(ids)

	memberBalances := make([]MemberBalance, 0, len(ids))
	var creditors, debtors []*MemberBalance
	for _, id := range ids {
		bal := balances[id]
		memberBalances = append(memberBalances, *bal)
		switch {
		case bal.NetBalance.IsPositive():
			creditors = append(creditors, bal)
		case bal.NetBalance.IsNegative():
			debtors = append(debtors, bal)
		}
	}

	// Largest amounts first; ties keep ID order.
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].NetBalance.GreaterThan(creditors[j].NetBalance)
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].NetBalance.LessThan(debtors[j].NetBalance)
	})

	debtorLeft := make([]decimal.Decimal, len(debtors))
	for i, d := range debtors {
		debtorLeft[i] = d.NetBalance.Neg()
	}
	creditorLeft := make([]decimal.Decimal, len(creditors))
	for j, c := range creditors {
		creditorLeft[j] = c.NetBalance
	}

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := decimal.Min(debtorLeft[i], creditorLeft[j])
		if amount.GreaterThanOrEqual(settleThreshold) {
			edges = append(edges, DebtEdge{
				From:   debtors[i].PersonID,
				To:     creditors[j].PersonID,
				Amount: amount.Round(2),
			})
		}

		debtorLeft[i] = debtorLeft[i].Sub(amount)
		creditorLeft[j] = creditorLeft[j].Sub(amount)

		if debtorLeft[i].LessThan(settleThreshold) {
			i++
		}
		if creditorLeft[j].LessThan(settleThreshold) {
			j++
		}
	}

	return memberBalances, edges
}
