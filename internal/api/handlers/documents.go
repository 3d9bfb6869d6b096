// Package handlers contains the HTTP endpoints of the API server. Each
// handler owns the stores it reads; mutations go through the store
// methods, never directly at the slices.
package handlers

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/vmunteanu/contaflow/internal/api/middleware"
	"github.com/vmunteanu/contaflow/internal/store"
)

// DocumentsHandler serves uploaded documents and their generated
// transactions.
type DocumentsHandler struct {
	documents *store.DocumentStore
	log       zerolog.Logger
}

func NewDocumentsHandler(documents *store.DocumentStore, log zerolog.Logger) *DocumentsHandler {
	return &DocumentsHandler{documents: documents, log: log}
}

// ListDocuments handles GET /api/documents
func (h *DocumentsHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := h.documents.Documents()
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
		"count":     len(docs),
	})
}

// GetDocument handles GET /api/documents/{id}
func (h *DocumentsHandler) GetDocument(w http.ResponseWriter, r *http.Request, id string) {
	doc, ok := h.documents.Get(id)
	if !ok {
		middleware.WriteError(w, http.StatusNotFound, "Documentul nu există")
		return
	}
	middleware.WriteJSON(w, http.StatusOK, doc)
}

// ListTransactions handles GET /api/transactions
func (h *DocumentsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs := h.documents.Transactions()
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": txs,
		"count":        len(txs),
	})
}
