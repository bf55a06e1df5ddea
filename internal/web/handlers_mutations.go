package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SharmiliRS/money-manager-frontend/internal/core"
	"github.com/SharmiliRS/money-manager-frontend/internal/log"
)

// handleCreate proxies a new income or expense to the backend and
// invalidates the user's cached lists on success.
func (s *Server) handleCreate(kind core.TransactionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, sess, err := s.authedClient()
		if err != nil {
			s.writeUpstreamError(w, err)
			return
		}

		var t core.Transaction
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}

		var created core.Transaction
		if kind == core.Income {
			created, err = client.AddIncome(r.Context(), t)
		} else {
			created, err = client.AddExpense(r.Context(), t)
		}
		if err != nil {
			s.writeUpstreamError(w, err)
			return
		}

		s.invalidateLists(sess.Email)
		s.logger.Info("transaction created",
			log.FieldRequestID, requestIDFrom(r.Context()),
			log.FieldOperation, log.OpCreate,
			log.FieldType, string(kind),
			log.FieldAmountPaise, created.Amount.Paise)
		writeJSON(w, http.StatusCreated, created)
	}
}

func (s *Server) handleUpdate(kind core.TransactionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, sess, err := s.authedClient()
		if err != nil {
			s.writeUpstreamError(w, err)
			return
		}
		id := chi.URLParam(r, "id")

		var t core.Transaction
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		t.Type = kind

		var updated core.Transaction
		if kind == core.Income {
			updated, err = client.UpdateIncome(r.Context(), id, t)
		} else {
			updated, err = client.UpdateExpense(r.Context(), id, t)
		}
		if err != nil {
			s.writeUpstreamError(w, err)
			return
		}

		s.invalidateLists(sess.Email)
		s.logger.Info("transaction updated",
			log.FieldRequestID, requestIDFrom(r.Context()),
			log.FieldOperation, log.OpUpdate,
			log.FieldType, string(kind))
		writeJSON(w, http.StatusOK, updated)
	}
}

func (s *Server) handleDelete(kind core.TransactionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, sess, err := s.authedClient()
		if err != nil {
			s.writeUpstreamError(w, err)
			return
		}
		id := chi.URLParam(r, "id")

		var deleteErr error
		if kind == core.Income {
			deleteErr = client.DeleteIncome(r.Context(), id)
		} else {
			deleteErr = client.DeleteExpense(r.Context(), id)
		}
		if deleteErr != nil {
			s.writeUpstreamError(w, deleteErr)
			return
		}

		s.invalidateLists(sess.Email)
		s.logger.Info("transaction deleted",
			log.FieldRequestID, requestIDFrom(r.Context()),
			log.FieldOperation, log.OpDelete,
			log.FieldType, string(kind))
		writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully."})
	}
}

// invalidateLists drops every cached list for the user and resets the
// fetch sequencing so the next load starts clean.
func (s *Server) invalidateLists(email string) {
	s.listCache.InvalidatePrefix(email + "|")
}
