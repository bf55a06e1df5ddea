package web

import (
	"net/http"

	"github.com/SharmiliRS/money-manager-frontend/internal/api"
	"github.com/SharmiliRS/money-manager-frontend/internal/core"
)

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.authedClient()
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	kind := api.AllCategories
	switch r.URL.Query().Get("type") {
	case string(api.IncomeCategories):
		kind = api.IncomeCategories
	case string(api.ExpenseCategories):
		kind = api.ExpenseCategories
	}

	categories, err := client.Categories(r.Context(), sess.Email, kind)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.authedClient()
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	accounts, err := client.Accounts(r.Context(), sess.Email)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"accounts":       accounts,
		"divisions":      core.Divisions,
		"paymentMethods": core.PaymentMethods,
	})
}
