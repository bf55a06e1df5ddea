package web

import (
	"net/http"

	"github.com/SharmiliRS/money-manager-frontend/internal/api"
	"github.com/SharmiliRS/money-manager-frontend/internal/core"
)

// topCategoryCount is how many category buckets the dashboard shows
// per side.
const topCategoryCount = 4

type dashboardResponse struct {
	Summary    api.DashboardSummary            `json:"summary"`
	TopIncome  []core.BreakdownEntry           `json:"topIncomeCategories"`
	TopExpense []core.BreakdownEntry           `json:"topExpenseCategories"`
	Divisions  map[string][]api.DashboardGroup `json:"divisions"`
	Trend      []api.PeriodPoint               `json:"trend"`
	Recent     []listedTransaction             `json:"recentTransactions"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.authedClient()
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "month"
	}

	ov, err := client.Overview(r.Context(), sess.Email, period, DefaultPageSize)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	now := s.now()
	recent := make([]listedTransaction, 0, len(ov.Recent))
	for _, t := range ov.Recent {
		recent = append(recent, listedTransaction{
			Transaction: t,
			CanEdit:     core.CanMutate(t.CreatedAt, now),
		})
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Summary:    ov.Dashboard.Summary,
		TopIncome:  topCategories(ov.Dashboard.Categories.Income, ov.Dashboard.Summary.TotalIncome),
		TopExpense: topCategories(ov.Dashboard.Categories.Expense, ov.Dashboard.Summary.TotalExpense),
		Divisions: map[string][]api.DashboardGroup{
			"income":  ov.Dashboard.Divisions.Income,
			"expense": ov.Dashboard.Divisions.Expense,
		},
		Trend:  ov.Trend,
		Recent: recent,
	})
}

// topCategories ranks the backend's category buckets and annotates each
// with its share of the side's total.
func topCategories(groups []api.DashboardGroup, total core.Money) []core.BreakdownEntry {
	var b core.Breakdown
	for _, g := range groups {
		label := g.Label
		if label == "" {
			label = core.FallbackCategory
		}
		b.Add(label, g.Total)
	}
	return core.TopN(b, topCategoryCount, total)
}
