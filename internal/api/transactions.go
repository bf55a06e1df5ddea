package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/SharmiliRS/money-manager-frontend/internal/core"
)

// TaxonomyKind selects which category set to fetch.
type TaxonomyKind string

const (
	IncomeCategories  TaxonomyKind = "Income"
	ExpenseCategories TaxonomyKind = "Expense"
	AllCategories     TaxonomyKind = "Both"
)

// Transactions fetches the user's transactions matching opts. The
// backend's ordering is not trusted; callers re-sort with
// core.SortNewestFirst before presenting.
func (c *Client) Transactions(ctx context.Context, email string, opts ListOptions) ([]core.Transaction, error) {
	var txs []core.Transaction
	path := "/transactions/" + url.PathEscape(email)
	if err := c.get(ctx, path, opts.Values(time.Now()), &txs); err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return txs, nil
}

// RecentTransactions fetches the newest transactions, paged.
func (c *Client) RecentTransactions(ctx context.Context, email string, limit, page int) ([]core.Transaction, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	var txs []core.Transaction
	path := "/transactions/recent/" + url.PathEscape(email)
	if err := c.get(ctx, path, q, &txs); err != nil {
		return nil, fmt.Errorf("listing recent transactions: %w", err)
	}
	return txs, nil
}

// AddIncome records a new income transaction.
func (c *Client) AddIncome(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	t.Type = core.Income
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	var created core.Transaction
	if err := c.send(ctx, http.MethodPost, "/income/add", t, &created); err != nil {
		return core.Transaction{}, fmt.Errorf("adding income: %w", err)
	}
	return created, nil
}

// AddExpense records a new expense transaction.
func (c *Client) AddExpense(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	t.Type = core.Expense
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	var created core.Transaction
	if err := c.send(ctx, http.MethodPost, "/expense/minus", t, &created); err != nil {
		return core.Transaction{}, fmt.Errorf("adding expense: %w", err)
	}
	return created, nil
}

// UpdateIncome edits an income record. A rejection because the record
// left the mutability window comes back as ErrMutationWindowExpired.
func (c *Client) UpdateIncome(ctx context.Context, id string, t core.Transaction) (core.Transaction, error) {
	return c.update(ctx, "/income/", id, t)
}

// UpdateExpense edits an expense record, with the same window handling
// as UpdateIncome.
func (c *Client) UpdateExpense(ctx context.Context, id string, t core.Transaction) (core.Transaction, error) {
	return c.update(ctx, "/expense/", id, t)
}

func (c *Client) update(ctx context.Context, prefix, id string, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	var updated core.Transaction
	if err := c.send(ctx, http.MethodPut, prefix+url.PathEscape(id), t, &updated); err != nil {
		return core.Transaction{}, fmt.Errorf("updating transaction: %w", mutationError(err))
	}
	return updated, nil
}

// DeleteIncome removes an income record inside its mutability window.
func (c *Client) DeleteIncome(ctx context.Context, id string) error {
	return c.delete(ctx, "/income/", id)
}

// DeleteExpense removes an expense record inside its mutability window.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.delete(ctx, "/expense/", id)
}

func (c *Client) delete(ctx context.Context, prefix, id string) error {
	if err := c.send(ctx, http.MethodDelete, prefix+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("deleting transaction: %w", mutationError(err))
	}
	return nil
}

// Categories fetches the user's category names for the given kind,
// falling back to the built-in defaults when the account has none yet.
func (c *Client) Categories(ctx context.Context, email string, kind TaxonomyKind) ([]string, error) {
	q := url.Values{"type": {string(kind)}}
	var raw []struct {
		Name string `json:"name"`
	}
	path := "/categories/" + url.PathEscape(email)
	if err := c.get(ctx, path, q, &raw); err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	if len(raw) == 0 {
		return defaultCategories(kind), nil
	}
	names := make([]string, 0, len(raw))
	for _, r := range raw {
		names = append(names, r.Name)
	}
	return names, nil
}

func defaultCategories(kind TaxonomyKind) []string {
	switch kind {
	case IncomeCategories:
		return append([]string(nil), core.DefaultIncomeCategories...)
	case ExpenseCategories:
		return append([]string(nil), core.DefaultExpenseCategories...)
	default:
		out := append([]string(nil), core.DefaultIncomeCategories...)
		return append(out, core.DefaultExpenseCategories...)
	}
}

// Accounts fetches the user's account names, falling back to the
// built-in defaults when the account has none yet.
func (c *Client) Accounts(ctx context.Context, email string) ([]string, error) {
	var raw []struct {
		AccountName string `json:"accountName"`
	}
	path := "/accounts/" + url.PathEscape(email)
	if err := c.get(ctx, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	if len(raw) == 0 {
		return append([]string(nil), core.DefaultAccounts...), nil
	}
	names := make([]string, 0, len(raw))
	for _, r := range raw {
		names = append(names, r.AccountName)
	}
	return names, nil
}
