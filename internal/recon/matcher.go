// Package recon matches incoming bank transactions against known documents,
// invoices and plain transactions, producing one reconciliation per bank
// transaction with an additive confidence score.
package recon

import (
	"math"
	"strings"
	"time"

	"github.com/vmunteanu/contaflow/internal/domain"
	"github.com/vmunteanu/contaflow/internal/parse"
)

// Rule weights and classification thresholds. These values are carried over
// verbatim for behavioral compatibility; they are not validated business
// rules.
const (
	documentWeight    = 30
	invoiceWeight     = 40
	transactionWeight = 25

	matchedThreshold = 70
	partialThreshold = 40

	// amountTolerance is one currency unit.
	amountTolerance = 1.0
	dateTolerance   = 7 * 24 * time.Hour
)

// Ledger is the immutable snapshot a matching pass runs against. Matching is
// deterministic: the same ledger and bank transaction always produce the
// same confidence and status.
type Ledger struct {
	Documents    []domain.Document
	Invoices     []domain.Invoice
	Transactions []domain.Transaction
}

// MatchAll produces one reconciliation per bank transaction.
func (l Ledger) MatchAll(txs []domain.BankTransaction) []domain.BankReconciliation {
	recs := make([]domain.BankReconciliation, 0, len(txs))
	for _, tx := range txs {
		recs = append(recs, l.Match(tx))
	}
	return recs
}

// Match scans the ledger for amount/date/description rule hits. A document
// hit adds 30 and records the document id, an invoice hit adds 40 and
// records the invoice id, a plain transaction hit adds 25 without recording
// an identity.
func (l Ledger) Match(tx domain.BankTransaction) domain.BankReconciliation {
	matchedDocs := []string{}
	matchedInvoices := []string{}
	confidence := 0

	for _, doc := range l.Documents {
		amountMatch := math.Abs(math.Abs(tx.Amount)-parse.Amount(doc.Amount)) < amountTolerance
		docDate, ok := parse.Date(doc.DocumentDate)
		dateMatch := ok && datesClose(tx.Date, docDate)
		descriptionMatch := containsFold(tx.Description, doc.Supplier) ||
			containsFold(doc.Supplier, tx.Counterparty)

		if amountMatch && (dateMatch || descriptionMatch) {
			matchedDocs = append(matchedDocs, doc.ID)
			confidence += documentWeight
		}
	}

	for _, inv := range l.Invoices {
		// Invoice amounts compare against the signed bank amount.
		amountMatch := math.Abs(tx.Amount-inv.Total) < amountTolerance
		dateMatch := datesClose(tx.Date, inv.DueDate)
		clientMatch := containsFold(tx.Description, inv.Client.Name) ||
			containsFold(inv.Client.Name, tx.Counterparty)

		if amountMatch && (dateMatch || clientMatch) {
			matchedInvoices = append(matchedInvoices, inv.ID)
			confidence += invoiceWeight
		}
	}

	for _, t := range l.Transactions {
		amountMatch := math.Abs(math.Abs(tx.Amount)-t.Amount) < amountTolerance
		dateMatch := datesClose(tx.Date, t.Date)
		descriptionMatch := containsFold(tx.Description, t.Description)

		if amountMatch && (dateMatch || descriptionMatch) {
			confidence += transactionWeight
		}
	}

	return domain.BankReconciliation{
		ID:                "rec-" + tx.ID,
		BankTransactionID: tx.ID,
		BankTransaction:   tx,
		MatchedDocuments:  matchedDocs,
		MatchedInvoices:   matchedInvoices,
		Status:            Classify(confidence),
		// Variance is recorded but never derived from the actual amount
		// differences.
		Variance:           0,
		ReconciliationDate: time.Now(),
		Confidence:         confidence,
	}
}

// Classify maps a confidence score onto a reconciliation status. Both
// boundaries are strict.
func Classify(confidence int) domain.ReconciliationStatus {
	switch {
	case confidence > matchedThreshold:
		return domain.ReconciliationMatched
	case confidence > partialThreshold:
		return domain.ReconciliationPartial
	default:
		return domain.ReconciliationUnmatched
	}
}

func datesClose(a, b time.Time) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= dateTolerance
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
