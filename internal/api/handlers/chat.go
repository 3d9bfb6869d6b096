package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vmunteanu/contaflow/internal/api/middleware"
	"github.com/vmunteanu/contaflow/internal/domain"
	"github.com/vmunteanu/contaflow/internal/store"
)

// ChatHandler answers bookkeeping questions with canned analyses built
// from the current store state. There is no model call here; the
// responder is keyword-driven.
type ChatHandler struct {
	documents  *store.DocumentStore
	accounting *store.AccountingStore
	log        zerolog.Logger
}

func NewChatHandler(documents *store.DocumentStore, accounting *store.AccountingStore, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{documents: documents, accounting: accounting, log: log}
}

// History handles GET /api/chat
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	history := h.accounting.ChatHistory()
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"messages": history,
		"count":    len(history),
	})
}

// Ask handles POST /api/chat
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Câmpul 'message' este obligatoriu")
		return
	}

	response, msgType := h.respond(req.Message)
	saved := h.accounting.AddChatMessage(req.Message, response, msgType)
	middleware.WriteJSON(w, http.StatusCreated, saved)
}

func (h *ChatHandler) respond(message string) (string, domain.ChatMessageType) {
	msg := strings.ToLower(message)
	company := h.accounting.Settings().Name
	if company == "" {
		company = "compania ta"
	}
	docs := h.documents.Documents()
	txs := h.documents.Transactions()

	switch {
	case containsAny(msg, "venit", "încasar", "incasar", "profit"):
		return revenueAnalysis(company, txs), domain.ChatAnalysis
	case containsAny(msg, "document", "factur", "bon"):
		return documentAnalysis(company, docs), domain.ChatAnalysis
	case containsAny(msg, "tranzac", "plat", "cheltuiel"):
		return transactionAnalysis(company, txs), domain.ChatAnalysis
	case containsAny(msg, "categor", "breakdown"):
		return categoryBreakdown(company, txs), domain.ChatAnalysis
	default:
		return fmt.Sprintf("Salut! Sunt asistentul pentru contabilitatea companiei %s. "+
			"Pot să te ajut cu analize financiare (venituri, cheltuieli, profit), "+
			"statusul documentelor și facturilor, analiza tranzacțiilor și "+
			"defalcarea pe categorii.", company), domain.ChatQuestion
	}
}

func revenueAnalysis(company string, txs []domain.Transaction) string {
	revenue, expenses := totals(txs)
	profit := revenue - expenses
	margin := 0.0
	if revenue > 0 {
		margin = profit / revenue * 100
	}
	verdict := "Compania înregistrează pierderi."
	if profit > 0 {
		verdict = "Compania este profitabilă."
	}
	return fmt.Sprintf("Analiza veniturilor pentru %s:\n"+
		"• Venituri totale: %.2f RON\n"+
		"• Cheltuieli totale: %.2f RON\n"+
		"• Profit net: %.2f RON\n"+
		"• Marja de profit: %.1f%%\n%s",
		company, revenue, expenses, profit, margin, verdict)
}

func documentAnalysis(company string, docs []domain.Document) string {
	var completed, processing int
	for _, d := range docs {
		switch d.Status {
		case domain.DocumentStatusCompleted:
			completed++
		case domain.DocumentStatusProcessing:
			processing++
		}
	}
	rate := 0.0
	if len(docs) > 0 {
		rate = float64(completed) / float64(len(docs)) * 100
	}
	return fmt.Sprintf("Status documente pentru %s:\n"+
		"• Total documente: %d\n"+
		"• Procesate cu succes: %d\n"+
		"• În procesare: %d\n"+
		"• Rata de succes: %.1f%%",
		company, len(docs), completed, processing, rate)
}

func transactionAnalysis(company string, txs []domain.Transaction) string {
	var incomeCount, expenseCount int
	var incomeSum, expenseSum float64
	for _, t := range txs {
		if t.Type == domain.TransactionIncome {
			incomeCount++
			incomeSum += t.Amount
		} else {
			expenseCount++
			expenseSum += math.Abs(t.Amount)
		}
	}
	avgIncome, avgExpense := 0.0, 0.0
	if incomeCount > 0 {
		avgIncome = incomeSum / float64(incomeCount)
	}
	if expenseCount > 0 {
		avgExpense = expenseSum / float64(expenseCount)
	}
	return fmt.Sprintf("Analiza tranzacțiilor pentru %s:\n"+
		"• Total tranzacții: %d\n"+
		"• Tranzacții venituri: %d\n"+
		"• Tranzacții cheltuieli: %d\n"+
		"• Valoare medie venit: %.2f RON\n"+
		"• Valoare medie cheltuială: %.2f RON",
		company, len(txs), incomeCount, expenseCount, avgIncome, avgExpense)
}

func categoryBreakdown(company string, txs []domain.Transaction) string {
	sums := make(map[string]float64)
	for _, t := range txs {
		sums[t.Category] += math.Abs(t.Amount)
	}
	type entry struct {
		category string
		amount   float64
	}
	entries := make([]entry, 0, len(sums))
	for c, a := range sums {
		entries = append(entries, entry{c, a})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].amount > entries[j].amount })
	if len(entries) > 5 {
		entries = entries[:5]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top categorii pentru %s:\n", company)
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s: %.2f RON\n", i+1, e.category, e.amount)
	}
	if len(entries) == 0 {
		b.WriteString("Nu există tranzacții înregistrate încă.")
	}
	return strings.TrimRight(b.String(), "\n")
}

func totals(txs []domain.Transaction) (revenue, expenses float64) {
	for _, t := range txs {
		if t.Type == domain.TransactionIncome {
			revenue += t.Amount
		} else {
			expenses += math.Abs(t.Amount)
		}
	}
	return revenue, expenses
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
