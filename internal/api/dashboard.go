package api

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/SharmiliRS/money-manager-frontend/internal/core"
)

// DashboardGroup is one aggregation bucket from the backend. The label
// arrives in the _id field of the aggregation result.
type DashboardGroup struct {
	Label string     `json:"_id"`
	Total core.Money `json:"total"`
}

// DashboardSummary carries the headline totals for a period.
type DashboardSummary struct {
	TotalIncome  core.Money `json:"totalIncome"`
	TotalExpense core.Money `json:"totalExpense"`
	Balance      core.Money `json:"balance"`
}

// Dashboard is the backend's aggregated view for one user and period.
type Dashboard struct {
	Summary    DashboardSummary `json:"summary"`
	Categories struct {
		Income  []DashboardGroup `json:"income"`
		Expense []DashboardGroup `json:"expense"`
	} `json:"categories"`
	Divisions struct {
		Income  []DashboardGroup `json:"income"`
		Expense []DashboardGroup `json:"expense"`
	} `json:"divisions"`
}

// PeriodPoint is one bucket of the income/expense trend series.
type PeriodPoint struct {
	Period  string     `json:"period"`
	Income  core.Money `json:"income"`
	Expense core.Money `json:"expense"`
}

// Overview bundles everything the dashboard screen needs.
type Overview struct {
	Dashboard *Dashboard
	Trend     []PeriodPoint
	Recent    []core.Transaction
}

// Dashboard fetches the aggregated summary for a period ("week",
// "month", "year").
func (c *Client) Dashboard(ctx context.Context, email, period string) (*Dashboard, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	var d Dashboard
	path := "/dashboard/" + url.PathEscape(email)
	if err := c.get(ctx, path, q, &d); err != nil {
		return nil, fmt.Errorf("fetching dashboard: %w", err)
	}
	return &d, nil
}

// DashboardTrend fetches the per-period income/expense series.
func (c *Client) DashboardTrend(ctx context.Context, email, period string) ([]PeriodPoint, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	var resp struct {
		Data []PeriodPoint `json:"data"`
	}
	path := "/dashboard/period/" + url.PathEscape(email)
	if err := c.get(ctx, path, q, &resp); err != nil {
		return nil, fmt.Errorf("fetching dashboard trend: %w", err)
	}
	return resp.Data, nil
}

// Overview fetches the dashboard summary, the trend series and the
// recent transactions concurrently. The first failure cancels the
// remaining fetches.
func (c *Client) Overview(ctx context.Context, email, period string, recentLimit int) (*Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		d, err := c.Dashboard(gctx, email, period)
		if err != nil {
			return err
		}
		out.Dashboard = d
		return nil
	})
	g.Go(func() error {
		trend, err := c.DashboardTrend(gctx, email, period)
		if err != nil {
			return err
		}
		out.Trend = trend
		return nil
	})
	g.Go(func() error {
		recent, err := c.RecentTransactions(gctx, email, recentLimit, 1)
		if err != nil {
			return err
		}
		core.SortNewestFirst(recent)
		out.Recent = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
