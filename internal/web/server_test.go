package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SharmiliRS/money-manager-frontend/internal/api"
	"github.com/SharmiliRS/money-manager-frontend/internal/config"
	"github.com/SharmiliRS/money-manager-frontend/internal/core"
	"github.com/SharmiliRS/money-manager-frontend/internal/session"
)

const testEmail = "user@example.com"

func testServer(t *testing.T, upstream http.Handler, loggedIn bool) (*Server, *httptest.Server) {
	t.Helper()

	backend := httptest.NewServer(upstream)
	t.Cleanup(backend.Close)

	cfg := &config.Config{
		Port:           "0",
		APIBaseURL:     backend.URL,
		RequestTimeout: 5 * time.Second,
		CacheSize:      10,
		CacheTTL:       time.Minute,
	}

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if loggedIn {
		if err := store.Save(session.Session{Email: testEmail, Token: "tok", Name: "User"}); err != nil {
			t.Fatalf("saving session: %v", err)
		}
	}

	client := api.New(backend.URL, cfg.RequestTimeout, nil)
	s := NewServer(cfg, client, store, nil)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})

	gateway := httptest.NewServer(s.Handler)
	t.Cleanup(gateway.Close)
	return s, gateway
}

func upstreamTransactions(txs []core.Transaction, calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/transactions/") {
			if calls != nil {
				*calls++
			}
			json.NewEncoder(w).Encode(txs)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
}

func listBody(t *testing.T, resp *http.Response) listResponse {
	t.Helper()
	defer resp.Body.Close()
	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return body
}

func TestListSortsAndFlags(t *testing.T) {
	recent := time.Now().Add(-1 * time.Hour)
	old := time.Now().Add(-48 * time.Hour)
	txs := []core.Transaction{
		{ID: "a", Type: core.Expense, Amount: core.Money{Paise: 10000}, Source: "Old", Category: "Food",
			Date: core.NewDate(2024, 1, 1), CreatedAt: old},
		{ID: "b", Type: core.Expense, Amount: core.Money{Paise: 20000}, Source: "New", Category: "Food",
			Date: core.NewDate(2024, 1, 2), CreatedAt: recent},
	}
	_, gw := testServer(t, upstreamTransactions(txs, nil), true)

	resp, err := http.Get(gw.URL + "/api/transactions")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body := listBody(t, resp)

	if len(body.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(body.Transactions))
	}
	if body.Transactions[0].ID != "b" {
		t.Errorf("newest should come first, got %s", body.Transactions[0].ID)
	}
	if !body.Transactions[0].CanEdit {
		t.Error("1h-old record should be editable")
	}
	if body.Transactions[1].CanEdit {
		t.Error("48h-old record should not be editable")
	}
	if body.Summary.Total.Paise != 30000 {
		t.Errorf("summary total = %d paise, want 30000", body.Summary.Total.Paise)
	}
	if body.Page.TotalPages != 1 {
		t.Errorf("totalPages = %d", body.Page.TotalPages)
	}
}

func TestListAppliesFilterLocally(t *testing.T) {
	txs := []core.Transaction{
		{ID: "a", Type: core.Expense, Amount: core.Money{Paise: 100}, Category: "Food", Date: core.NewDate(2024, 1, 1)},
		{ID: "b", Type: core.Expense, Amount: core.Money{Paise: 200}, Category: "Travel", Date: core.NewDate(2024, 1, 2)},
	}
	_, gw := testServer(t, upstreamTransactions(txs, nil), true)

	resp, err := http.Get(gw.URL + "/api/transactions?category=Travel")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body := listBody(t, resp)

	if len(body.Transactions) != 1 || body.Transactions[0].ID != "b" {
		t.Fatalf("filter should keep only the Travel record, got %+v", body.Transactions)
	}
}

func TestListPagination(t *testing.T) {
	txs := make([]core.Transaction, 23)
	for i := range txs {
		txs[i] = core.Transaction{
			ID: string(rune('a' + i)), Type: core.Expense,
			Amount: core.Money{Paise: 100}, Date: core.NewDate(2024, 1, 1),
		}
	}
	_, gw := testServer(t, upstreamTransactions(txs, nil), true)

	resp, err := http.Get(gw.URL + "/api/transactions?page=3")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body := listBody(t, resp)

	if body.Page.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", body.Page.TotalPages)
	}
	if len(body.Transactions) != 3 {
		t.Errorf("page 3 should hold 3 records, got %d", len(body.Transactions))
	}
	if body.Page.Start != 20 || body.Page.End != 23 {
		t.Errorf("page range = [%d, %d), want [20, 23)", body.Page.Start, body.Page.End)
	}
}

func TestListUsesCacheUntilMutation(t *testing.T) {
	calls := 0
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/transactions/"):
			calls++
			json.NewEncoder(w).Encode([]core.Transaction{})
		case r.URL.Path == "/income/add":
			json.NewEncoder(w).Encode(core.Transaction{ID: "new"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	_, gw := testServer(t, upstream, true)

	for i := 0; i < 3; i++ {
		resp, err := http.Get(gw.URL + "/api/transactions")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		resp.Body.Close()
	}
	if calls != 1 {
		t.Fatalf("upstream called %d times, want 1 (cached)", calls)
	}

	income := core.Transaction{
		Type: core.Income, Amount: core.Money{Paise: 500000}, Source: "Salary",
		Category: "Salary/Wages", Division: "Personal", Account: "Cash",
		PaymentMethod: "Bank Transfer", Date: core.NewDate(2024, 1, 1),
	}
	payload, _ := json.Marshal(income)
	resp, err := http.Post(gw.URL+"/api/income", "application/json", strings.NewReader(string(payload)))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST status = %d", resp.StatusCode)
	}

	resp, err = http.Get(gw.URL + "/api/transactions")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if calls != 2 {
		t.Fatalf("mutation should invalidate the cache, upstream calls = %d", calls)
	}
}

func TestDeleteMapsWindowExpiry(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	_, gw := testServer(t, upstream, true)

	req, _ := http.NewRequest(http.MethodDelete, gw.URL+"/api/expense/abc", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	if !strings.Contains(body["error"], "12 hours") {
		t.Errorf("error = %q, want the window-expired message", body["error"])
	}
}

func TestUnauthenticatedRequests(t *testing.T) {
	_, gw := testServer(t, http.NotFoundHandler(), false)

	resp, err := http.Get(gw.URL + "/api/transactions")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestExportCSV(t *testing.T) {
	txs := []core.Transaction{
		{ID: "a", Type: core.Expense, Amount: core.Money{Paise: 10000}, Source: "Lunch",
			Category: "Food", Division: "Personal", Account: "Cash", PaymentMethod: "UPI",
			Date: core.NewDate(2024, 1, 1)},
	}
	_, gw := testServer(t, upstreamTransactions(txs, nil), true)

	resp, err := http.Get(gw.URL + "/api/transactions/export")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Content-Type"); got != "text/csv" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, "transactions_") {
		t.Errorf("Content-Disposition = %q", got)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	if !strings.Contains(lines[1], `"Lunch"`) {
		t.Errorf("row = %s", lines[1])
	}
}

func TestLoginSavesSession(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(api.LoginResult{
			Token: "tok-99",
			User:  api.User{Name: "User", Email: testEmail},
		})
	})
	s, gw := testServer(t, upstream, false)

	resp, err := http.Post(gw.URL+"/api/session", "application/json",
		strings.NewReader(`{"email":"user@example.com","password":"pw"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	sess, err := s.sessions.Load()
	if err != nil {
		t.Fatalf("session should be saved: %v", err)
	}
	if sess.Token != "tok-99" || sess.Email != testEmail {
		t.Errorf("session = %+v", sess)
	}
}

func TestHealthEndpoints(t *testing.T) {
	_, gw := testServer(t, http.NotFoundHandler(), false)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		resp, err := http.Get(gw.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d", path, resp.StatusCode)
		}
	}
}

func TestDashboardAggregatesTopCategories(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/dashboard/"+testEmail:
			w.Write([]byte(`{"summary":{"totalIncome":1000,"totalExpense":350,"balance":650},
				"categories":{"income":[{"_id":"Salary","total":1000}],
				"expense":[{"_id":"Food","total":300},{"_id":"Travel","total":50}]},
				"divisions":{"income":[],"expense":[]}}`))
		case r.URL.Path == "/dashboard/period/"+testEmail:
			w.Write([]byte(`{"data":[]}`))
		case strings.HasPrefix(r.URL.Path, "/transactions/recent/"):
			w.Write([]byte("[]"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	_, gw := testServer(t, upstream, true)

	resp, err := http.Get(gw.URL + "/api/dashboard?period=month")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	var body dashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(body.TopExpense) != 2 || body.TopExpense[0].Label != "Food" {
		t.Fatalf("topExpense = %+v", body.TopExpense)
	}
	if body.TopExpense[0].Percentage != 85.7 {
		t.Errorf("Food percentage = %v, want 85.7", body.TopExpense[0].Percentage)
	}
}
