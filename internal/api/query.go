package api

import (
	"net/url"
	"strconv"
	"time"

	"github.com/SharmiliRS/money-manager-frontend/internal/core"
)

// ListOptions selects and pages a transaction list server-side. Zero
// fields are omitted from the query, which the backend treats as "all".
type ListOptions struct {
	Filter core.Filter
	Page   int
	Limit  int
}

// Values encodes the options as backend query parameters. A month or
// year selection is translated into the startDate/endDate pair the
// backend filters on; an explicit date range wins over month/year.
func (o ListOptions) Values(now time.Time) url.Values {
	q := url.Values{}
	f := o.Filter

	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() {
		q.Set("startDate", f.StartDate.String())
		q.Set("endDate", f.EndDate.String())
	} else if start, end, ok := f.DateRange(now); ok {
		q.Set("startDate", start.String())
		q.Set("endDate", end.String())
	}
	if f.Division != "" {
		q.Set("division", f.Division)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Account != "" {
		q.Set("account", f.Account)
	}
	if f.PaymentMethod != "" {
		q.Set("paymentMethod", f.PaymentMethod)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}
