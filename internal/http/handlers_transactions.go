package http

import (
	"net/http"
	"strconv"

	"fintrack/internal/core"
)

type transactionRequest struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

type transactionResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

func toTransactionResponse(t core.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        string(t.Type),
		Category:    t.Category,
		Amount:      t.Amount,
		Date:        t.Date.String(),
		Description: t.Description,
	}
}

// pathID parses the {id} path segment. A non-numeric id can never match a
// stored record, so it reports not found rather than bad request.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, core.ErrNotFound
	}
	return id, nil
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	date, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	created, err := s.ledger.Create(r.Context(), core.Transaction{
		UserID:      currentUser(r.Context()).ID,
		Type:        core.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(created))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	list, err := s.ledger.List(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]transactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	t, err := s.ledger.Get(r.Context(), currentUser(r.Context()).ID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(t))
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	date, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	updated, err := s.ledger.Update(r.Context(), core.Transaction{
		ID:          id,
		UserID:      currentUser(r.Context()).ID,
		Type:        core.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(updated))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ledger.Delete(r.Context(), currentUser(r.Context()).ID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "deleted"})
}
