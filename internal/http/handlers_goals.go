package http

import (
	"net/http"

	"fintrack/internal/core"
)

type goalRequest struct {
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline"`
}

type goalResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline"`
}

func toGoalResponse(g core.Goal) goalResponse {
	return goalResponse{
		ID:            g.ID,
		UserID:        g.UserID,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline.String(),
	}
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	deadline, err := core.ParseDate(req.Deadline)
	if err != nil {
		writeError(w, err)
		return
	}

	created, err := s.goals.Create(r.Context(), core.Goal{
		UserID:        currentUser(r.Context()).ID,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      deadline,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalResponse(created))
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	list, err := s.goals.List(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]goalResponse, 0, len(list))
	for _, g := range list {
		out = append(out, toGoalResponse(g))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	g, err := s.goals.Get(r.Context(), currentUser(r.Context()).ID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	deadline, err := core.ParseDate(req.Deadline)
	if err != nil {
		writeError(w, err)
		return
	}

	updated, err := s.goals.Update(r.Context(), core.Goal{
		ID:            id,
		UserID:        currentUser(r.Context()).ID,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      deadline,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(updated))
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.goals.Delete(r.Context(), currentUser(r.Context()).ID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "deleted"})
}
