package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/SharmiliRS/money-manager-frontend/internal/api"
	"github.com/SharmiliRS/money-manager-frontend/internal/core"
	"github.com/SharmiliRS/money-manager-frontend/internal/export"
	"github.com/SharmiliRS/money-manager-frontend/internal/log"
)

// listedTransaction decorates a record with the advisory edit flag the
// UI uses to show or hide controls. The backend remains authoritative.
type listedTransaction struct {
	core.Transaction
	CanEdit bool `json:"canEdit"`
}

type listResponse struct {
	Transactions []listedTransaction `json:"transactions"`
	Page         core.Page           `json:"page"`
	Summary      core.Summary        `json:"summary"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.authedClient()
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	filter := parseFilter(r)
	txs, err := s.fetchTransactions(r.Context(), client, sess.Email, filter)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	// The backend's filtering and ordering are not trusted: re-apply
	// both over the in-memory list.
	matched := filter.Apply(txs)
	summary := core.Summarize(matched)
	page := core.Paginate(parsePage(r), parsePageSize(r), len(matched))

	now := s.now()
	listed := make([]listedTransaction, 0, page.End-page.Start)
	for _, t := range page.Slice(matched) {
		listed = append(listed, listedTransaction{
			Transaction: t,
			CanEdit:     core.CanMutate(t.CreatedAt, now),
		})
	}

	writeJSON(w, http.StatusOK, listResponse{
		Transactions: listed,
		Page:         page,
		Summary:      summary,
	})
}

func (s *Server) handleExportTransactions(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.authedClient()
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	filter := parseFilter(r)
	txs, err := s.fetchTransactions(r.Context(), client, sess.Email, filter)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	matched := filter.Apply(txs)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(s.now())+`"`)
	if err := export.WriteCSV(w, matched); err != nil {
		s.logger.Error("writing csv export",
			log.FieldOperation, log.OpExport,
			log.FieldError, err.Error())
	}
}

// fetchTransactions returns the cached list for the query or fetches
// it from the backend. Fetches take a sequencer ticket; a fetch that
// loses the race to a newer one is discarded in favor of the committed
// result.
func (s *Server) fetchTransactions(ctx context.Context, client *api.Client, email string, f core.Filter) ([]core.Transaction, error) {
	key := email + "|" + api.ListOptions{Filter: f}.Values(s.now()).Encode()
	if txs, ok := s.listCache.Get(key); ok {
		return txs, nil
	}

	ticket := s.seq.Begin(key)
	txs, err := client.Transactions(ctx, email, api.ListOptions{Filter: f})
	if err != nil {
		return nil, err
	}
	core.SortNewestFirst(txs)

	if s.seq.Commit(key, ticket) {
		s.listCache.Set(key, txs)
		return txs, nil
	}

	s.metrics.staleDiscards.Inc()
	s.logger.Debug("discarded stale fetch", log.FieldCacheKey, key)
	if fresh, ok := s.listCache.Get(key); ok {
		return fresh, nil
	}
	return txs, nil
}

// parseFilter reads the list query parameters. The literal "all" (and
// "both" for type) is the UI's match-everything sentinel.
func parseFilter(r *http.Request) core.Filter {
	q := r.URL.Query()
	var f core.Filter

	switch strings.ToLower(sentinel(q.Get("type"))) {
	case string(core.Income):
		f.Type = core.Income
	case string(core.Expense):
		f.Type = core.Expense
	}
	if v := sentinel(q.Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			f.Month = m
		}
	}
	if v := sentinel(q.Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			f.Year = y
		}
	}
	if d, err := core.ParseDate(q.Get("startDate")); err == nil {
		f.StartDate = d
	}
	if d, err := core.ParseDate(q.Get("endDate")); err == nil {
		f.EndDate = d
	}
	f.Division = sentinel(q.Get("division"))
	f.Category = sentinel(q.Get("category"))
	f.Account = sentinel(q.Get("account"))
	f.PaymentMethod = sentinel(q.Get("paymentMethod"))
	f.Search = strings.TrimSpace(q.Get("search"))
	return f
}

func sentinel(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") || strings.EqualFold(v, "both") {
		return ""
	}
	return v
}

func parsePage(r *http.Request) int {
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		return p
	}
	return 1
}

func parsePageSize(r *http.Request) int {
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 && n <= 100 {
		return n
	}
	return DefaultPageSize
}
