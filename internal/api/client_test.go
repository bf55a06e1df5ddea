package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SharmiliRS/money-manager-frontend/internal/core"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil)
}

func validTransaction() core.Transaction {
	return core.Transaction{
		Type:          core.Expense,
		Amount:        core.Money{Paise: 25000},
		Source:        "Groceries",
		Category:      "Food & Dining",
		Division:      "Personal",
		Account:       "Cash",
		PaymentMethod: "UPI",
		Date:          core.NewDate(2024, 1, 15),
	}
}

func TestTransactionsForwardsQuery(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]core.Transaction{validTransaction()})
	}))

	opts := ListOptions{
		Filter: core.Filter{Month: 1, Year: 2024, Category: "Food & Dining"},
		Page:   2,
		Limit:  10,
	}
	txs, err := c.Transactions(context.Background(), "user@example.com", opts)
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if gotPath != "/transactions/user@example.com" {
		t.Errorf("path = %q", gotPath)
	}

	want := map[string]string{
		"startDate": "2024-01-01",
		"endDate":   "2024-01-31",
		"category":  "Food & Dining",
		"page":      "2",
		"limit":     "10",
	}
	for key, value := range want {
		if got := gotQuery[key]; len(got) != 1 || got[0] != value {
			t.Errorf("query[%s] = %v, want %q", key, got, value)
		}
	}
	if _, ok := gotQuery["month"]; ok {
		t.Error("month should be translated, not forwarded")
	}
}

func TestUpdateExpenseMapsWindowExpiry(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "editing window has expired"})
	}))

	_, err := c.UpdateExpense(context.Background(), "abc123", validTransaction())
	if !errors.Is(err, ErrMutationWindowExpired) {
		t.Fatalf("err = %v, want ErrMutationWindowExpired", err)
	}
}

func TestDeleteIncomeMapsWindowExpiry(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/income/abc123" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusForbidden)
	}))

	err := c.DeleteIncome(context.Background(), "abc123")
	if !errors.Is(err, ErrMutationWindowExpired) {
		t.Fatalf("err = %v, want ErrMutationWindowExpired", err)
	}
}

func TestServerErrorCarriesMessage(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "database down"})
	}))

	_, err := c.Transactions(context.Background(), "u@e.c", ListOptions{})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.StatusCode != 500 || apiErr.Message != "database down" {
		t.Errorf("got %+v", apiErr)
	}
}

func TestUnreachableBackend(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second, nil)
	_, err := c.Transactions(context.Background(), "u@e.c", ListOptions{})
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("err = %v, want ErrUnreachable", err)
	}
}

func TestAddIncomeValidatesBeforeSending(t *testing.T) {
	called := false
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	bad := validTransaction()
	bad.Amount = core.Money{}
	if _, err := c.AddIncome(context.Background(), bad); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
	if called {
		t.Error("invalid record should not reach the backend")
	}
}

func TestWithTokenSetsBearerHeader(t *testing.T) {
	var gotAuth string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]core.Transaction{})
	}))

	if _, err := c.WithToken("tok-42").Transactions(context.Background(), "u@e.c", ListOptions{}); err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if gotAuth != "Bearer tok-42" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestLogin(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "user@example.com" || body["password"] != "secret" {
			t.Errorf("body = %v", body)
		}
		json.NewEncoder(w).Encode(LoginResult{
			Token: "tok-123",
			User:  User{Name: "User"},
		})
	}))

	res, err := c.Login(context.Background(), "user@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "tok-123" {
		t.Errorf("token = %q", res.Token)
	}
	if res.User.Email != "user@example.com" {
		t.Errorf("email should fall back to the login email, got %q", res.User.Email)
	}
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	c := New("http://localhost:1", time.Second, nil)
	if _, err := c.Login(context.Background(), "", "pw"); err == nil {
		t.Fatal("expected error for empty email")
	}
}

func TestCategoriesFallBackToDefaults(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "Income" {
			t.Errorf("type = %q", got)
		}
		w.Write([]byte("[]"))
	}))

	got, err := c.Categories(context.Background(), "u@e.c", IncomeCategories)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(got) != len(core.DefaultIncomeCategories) {
		t.Errorf("got %d categories, want the %d defaults", len(got), len(core.DefaultIncomeCategories))
	}
}

func TestAccountsMapResponse(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"accountName":"Cash"},{"accountName":"Savings Account"}]`))
	}))

	got, err := c.Accounts(context.Background(), "u@e.c")
	if err != nil {
		t.Fatalf("Accounts: %v", err)
	}
	if len(got) != 2 || got[0] != "Cash" || got[1] != "Savings Account" {
		t.Errorf("got %v", got)
	}
}

func TestOverviewFetchesConcurrently(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/dashboard/u@e.c", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"summary":{"totalIncome":5000,"totalExpense":1200.50,"balance":3799.50},
			"categories":{"income":[{"_id":"Salary","total":5000}],"expense":[]},
			"divisions":{"income":[],"expense":[]}}`))
	})
	mux.HandleFunc("/dashboard/period/u@e.c", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"period":"Jan","income":5000,"expense":1200.50}]}`))
	})
	mux.HandleFunc("/transactions/recent/u@e.c", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]core.Transaction{validTransaction()})
	})
	c := testClient(t, mux)

	ov, err := c.Overview(context.Background(), "u@e.c", "month", 10)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if ov.Dashboard.Summary.TotalExpense.Paise != 120050 {
		t.Errorf("totalExpense = %d paise", ov.Dashboard.Summary.TotalExpense.Paise)
	}
	if len(ov.Dashboard.Categories.Income) != 1 || ov.Dashboard.Categories.Income[0].Label != "Salary" {
		t.Errorf("income categories = %+v", ov.Dashboard.Categories.Income)
	}
	if len(ov.Trend) != 1 || ov.Trend[0].Period != "Jan" {
		t.Errorf("trend = %+v", ov.Trend)
	}
	if len(ov.Recent) != 1 {
		t.Errorf("recent = %+v", ov.Recent)
	}
}

func TestOverviewPropagatesFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dashboard/period/u@e.c" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/transactions/recent/u@e.c", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})
	c := testClient(t, mux)

	if _, err := c.Overview(context.Background(), "u@e.c", "month", 10); err == nil {
		t.Fatal("expected error when one fetch fails")
	}
}
