package recon

import (
	"testing"
	"time"

	"github.com/vmunteanu/contaflow/internal/domain"
)

func bankTx() domain.BankTransaction {
	return domain.BankTransaction{
		ID:           "btx-1",
		Date:         time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		Description:  "Plata catre ACME",
		Amount:       500,
		Counterparty: "ACME",
	}
}

func acmeDocument() domain.Document {
	return domain.Document{
		ID:           "doc-1",
		Amount:       "500 RON",
		DocumentDate: "01.05.2024",
		Supplier:     "ACME",
	}
}

func acmeInvoice(due time.Time) domain.Invoice {
	return domain.Invoice{
		ID:      "inv-1",
		Total:   500,
		DueDate: due,
		Client:  domain.Client{Name: "ACME"},
	}
}

func TestMatch_DocumentOnly(t *testing.T) {
	ledger := Ledger{Documents: []domain.Document{acmeDocument()}}

	rec := ledger.Match(bankTx())

	if rec.Confidence != 30 {
		t.Errorf("confidence = %d, want 30", rec.Confidence)
	}
	if rec.Status != domain.ReconciliationUnmatched {
		t.Errorf("status = %q, want unmatched (30 is not > 40)", rec.Status)
	}
	if len(rec.MatchedDocuments) != 1 || rec.MatchedDocuments[0] != "doc-1" {
		t.Errorf("matchedDocuments = %v", rec.MatchedDocuments)
	}
}

// Adding a qualifying invoice raises confidence by exactly 40; at 70 the
// status is still partial because the matched boundary is strict.
func TestMatch_InvoiceAddsFortyAndSeventyIsPartial(t *testing.T) {
	due := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)
	ledger := Ledger{
		Documents: []domain.Document{acmeDocument()},
		Invoices:  []domain.Invoice{acmeInvoice(due)},
	}

	rec := ledger.Match(bankTx())

	if rec.Confidence != 70 {
		t.Errorf("confidence = %d, want 70", rec.Confidence)
	}
	if rec.Status != domain.ReconciliationPartial {
		t.Errorf("status = %q, want partial", rec.Status)
	}
	if len(rec.MatchedInvoices) != 1 || rec.MatchedInvoices[0] != "inv-1" {
		t.Errorf("matchedInvoices = %v", rec.MatchedInvoices)
	}
}

// Scoring is additive per source, not per distinct rule: an invoice whose
// due date already matches scores the same whether or not the client name
// also matches.
func TestMatch_ScorePerSourceNotPerRule(t *testing.T) {
	tx := bankTx()
	dueFar := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)
	dueExact := tx.Date

	for _, due := range []time.Time{dueFar, dueExact} {
		ledger := Ledger{
			Documents: []domain.Document{acmeDocument()},
			Invoices:  []domain.Invoice{acmeInvoice(due)},
		}
		rec := ledger.Match(tx)
		if rec.Confidence != 70 {
			t.Errorf("due %v: confidence = %d, want 70", due, rec.Confidence)
		}
	}
}

func TestMatch_TransactionPassAddsConfidenceWithoutIdentity(t *testing.T) {
	tx := bankTx()
	ledger := Ledger{
		Transactions: []domain.Transaction{{
			ID:          "tx-1",
			Description: "plata catre acme", // bank description contains it, case-insensitive
			Amount:      500,
			Date:        tx.Date,
		}},
	}

	rec := ledger.Match(tx)

	if rec.Confidence != 25 {
		t.Errorf("confidence = %d, want 25", rec.Confidence)
	}
	if len(rec.MatchedDocuments) != 0 || len(rec.MatchedInvoices) != 0 {
		t.Error("transaction pass must not record matched ids")
	}
}

func TestMatch_AmountToleranceIsStrict(t *testing.T) {
	doc := acmeDocument()
	doc.Amount = "501 RON" // difference exactly 1, not < 1

	rec := Ledger{Documents: []domain.Document{doc}}.Match(bankTx())
	if rec.Confidence != 0 {
		t.Errorf("confidence = %d, want 0", rec.Confidence)
	}

	doc.Amount = "500,50 RON" // difference 0.5
	rec = Ledger{Documents: []domain.Document{doc}}.Match(bankTx())
	if rec.Confidence != 30 {
		t.Errorf("confidence = %d, want 30", rec.Confidence)
	}
}

func TestMatch_DateWindow(t *testing.T) {
	doc := acmeDocument()
	doc.Supplier = "FURNIZOR FANTOMA" // force the date rule to decide
	tx := bankTx()
	tx.Description = "plata"
	tx.Counterparty = "XYZ"

	doc.DocumentDate = "08.05.2024" // 7 days after, inside the window
	rec := Ledger{Documents: []domain.Document{doc}}.Match(tx)
	if rec.Confidence != 30 {
		t.Errorf("7 days: confidence = %d, want 30", rec.Confidence)
	}

	doc.DocumentDate = "09.05.2024" // 8 days, outside
	rec = Ledger{Documents: []domain.Document{doc}}.Match(tx)
	if rec.Confidence != 0 {
		t.Errorf("8 days: confidence = %d, want 0", rec.Confidence)
	}
}

func TestMatch_UnparseableDocumentDateFallsBackToDescription(t *testing.T) {
	doc := acmeDocument()
	doc.DocumentDate = "cândva anul trecut"

	rec := Ledger{Documents: []domain.Document{doc}}.Match(bankTx())
	if rec.Confidence != 30 {
		t.Errorf("confidence = %d, want 30 (description rule still matches)", rec.Confidence)
	}
}

func TestMatch_Idempotent(t *testing.T) {
	ledger := Ledger{
		Documents: []domain.Document{acmeDocument()},
		Invoices:  []domain.Invoice{acmeInvoice(time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC))},
		Transactions: []domain.Transaction{{
			Description: "ACME", Amount: 500,
			Date: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		}},
	}

	first := ledger.Match(bankTx())
	second := ledger.Match(bankTx())

	if first.Confidence != second.Confidence || first.Status != second.Status {
		t.Errorf("matching is not idempotent: %d/%s vs %d/%s",
			first.Confidence, first.Status, second.Confidence, second.Status)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		confidence int
		want       domain.ReconciliationStatus
	}{
		{71, domain.ReconciliationMatched},
		{70, domain.ReconciliationPartial},
		{41, domain.ReconciliationPartial},
		{40, domain.ReconciliationUnmatched},
		{0, domain.ReconciliationUnmatched},
		{95, domain.ReconciliationMatched},
	}

	for _, tt := range tests {
		if got := Classify(tt.confidence); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}

func TestMatchAll(t *testing.T) {
	ledger := Ledger{Documents: []domain.Document{acmeDocument()}}
	txs := []domain.BankTransaction{bankTx(), {ID: "btx-2", Amount: 999, Description: "altceva"}}

	recs := ledger.MatchAll(txs)

	if len(recs) != 2 {
		t.Fatalf("got %d reconciliations, want 2", len(recs))
	}
	if recs[0].ID != "rec-btx-1" || recs[1].ID != "rec-btx-2" {
		t.Errorf("ids = %q, %q", recs[0].ID, recs[1].ID)
	}
	if recs[0].Variance != 0 || recs[1].Variance != 0 {
		t.Error("variance must always be initialized to 0")
	}
}
