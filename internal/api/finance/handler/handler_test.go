package financeHandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// fakeMiddleware trusts the X-User header instead of a bearer token.
type fakeMiddleware struct{}

func (fakeMiddleware) NewRateLimiter(ctx *fiber.Ctx) error { return ctx.Next() }

func (fakeMiddleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	userID := ctx.Get("X-User")
	if userID == "" {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	ctx.Locals("user", entity.UserLoginData{ID: userID})
	return ctx.Next()
}

func (fakeMiddleware) NewRequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error { return ctx.Next() }
}

func (fakeMiddleware) GetRequestID(*fiber.Ctx) string { return "test" }

type fakeService struct {
	wallet       entity.Wallet
	transactions []entity.Transaction
	totals       entity.TransactionTotals
	err          error

	lastCreate finance.CreateTransactionRequest
	lastUpdate finance.UpdateTransactionRequest
	lastPeriod string
}

func (f *fakeService) GetWallet(context.Context, string) (entity.Wallet, error) {
	return f.wallet, f.err
}

func (f *fakeService) UpdateWallet(_ context.Context, req finance.UpdateWalletRequest) (entity.Wallet, error) {
	if f.err != nil {
		return entity.Wallet{}, f.err
	}
	w := f.wallet
	w.MonthlyAllowance = req.MonthlyAllowance
	w.WeeklyAllowance = req.WeeklyAllowance
	return w, nil
}

func (f *fakeService) CreateTransaction(_ context.Context, req finance.CreateTransactionRequest) (entity.Transaction, error) {
	f.lastCreate = req
	if f.err != nil {
		return entity.Transaction{}, f.err
	}
	return entity.Transaction{ID: "t1", UserID: req.UserID, Title: req.Title, Amount: req.Amount, Type: req.Type, Category: req.Category}, nil
}

func (f *fakeService) GetTransactionByID(_ context.Context, id string, _ string) (entity.Transaction, error) {
	if f.err != nil {
		return entity.Transaction{}, f.err
	}
	return entity.Transaction{ID: id}, nil
}

func (f *fakeService) GetTransactionsByPeriod(_ context.Context, _ string, period string) ([]entity.Transaction, error) {
	f.lastPeriod = period
	return f.transactions, f.err
}

func (f *fakeService) UpdateTransaction(_ context.Context, req finance.UpdateTransactionRequest) (entity.Transaction, error) {
	f.lastUpdate = req
	if f.err != nil {
		return entity.Transaction{}, f.err
	}
	return entity.Transaction{ID: req.ID, Amount: req.Amount, Type: req.Type, Category: req.Category}, nil
}

func (f *fakeService) DeleteTransaction(context.Context, string, string) error {
	return f.err
}

func (f *fakeService) GetTotals(_ context.Context, _ string, period string) (entity.TransactionTotals, error) {
	f.lastPeriod = period
	return f.totals, f.err
}

func (f *fakeService) SyncBalances(context.Context) (finance.SyncReport, error) {
	return finance.SyncReport{}, f.err
}

func newTestApp(svc *fakeService) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	New(log, validator.New(), fakeMiddleware{}, svc).Start(app.Group("/api/v1"))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, user, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User", user)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, data
}

func TestCreateTransaction(t *testing.T) {
	tests := []struct {
		name       string
		user       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{
			name:       "created",
			user:       "u1",
			body:       `{"title":"makan siang","amount":25000,"type":"expense","category":"makanan"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing amount",
			user:       "u1",
			body:       `{"title":"makan siang","type":"expense","category":"makanan"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown type",
			user:       "u1",
			body:       `{"title":"x","amount":1,"type":"transfer","category":"lainnya"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "category rejected by service",
			user:       "u1",
			body:       `{"title":"x","amount":1,"type":"income","category":"makanan"}`,
			svcErr:     finance.ErrInvalidCategory,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no token",
			body:       `{"title":"x","amount":1,"type":"expense","category":"lainnya"}`,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.svcErr}
			status, _ := doRequest(t, newTestApp(svc), http.MethodPost, "/api/v1/transactions", tt.user, tt.body)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", status, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusCreated && svc.lastCreate.UserID != tt.user {
				t.Errorf("user id = %q, want %q", svc.lastCreate.UserID, tt.user)
			}
		})
	}
}

func TestGetTransactionsByPeriod(t *testing.T) {
	svc := &fakeService{transactions: []entity.Transaction{
		{ID: "a", Amount: 500_000, Type: "income", Category: "uang saku", TransactionDate: time.Now()},
		{ID: "b", Amount: 120_000, Type: "expense", Category: "makanan", TransactionDate: time.Now()},
	}}
	app := newTestApp(svc)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/transactions?period=week", "u1", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}
	if svc.lastPeriod != "week" {
		t.Errorf("period = %q, want week", svc.lastPeriod)
	}

	var res finance.TransactionListResponse
	if err := jsoniter.Unmarshal(body, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Transactions) != 2 || res.TotalIncome != 500_000 || res.TotalExpense != 120_000 || res.Net != 380_000 {
		t.Errorf("response = %+v", res)
	}

	doRequest(t, app, http.MethodGet, "/api/v1/transactions", "u1", "")
	if svc.lastPeriod != finance.PeriodAll {
		t.Errorf("default period = %q, want all", svc.lastPeriod)
	}
}

func TestGetSummary(t *testing.T) {
	svc := &fakeService{
		wallet: entity.Wallet{Balance: 1_000_000},
		totals: entity.TransactionTotals{Period: "month", Income: 2_000_000, Expense: 750_000,
			ByCategory: map[string]int64{"makanan": 500_000, "hiburan": 250_000}},
	}

	status, body := doRequest(t, newTestApp(svc), http.MethodGet, "/api/v1/transactions/summary", "u1", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}

	var res finance.SummaryResponse
	if err := jsoniter.Unmarshal(body, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Period != "month" || res.Net != 1_250_000 || res.Balance != 1_000_000 || res.ExpenseByCategory["makanan"] != 500_000 {
		t.Errorf("response = %+v", res)
	}
}

func TestTransactionByID_Errors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		err        error
		wantStatus int
	}{
		{"get not owned", http.MethodGet, "", finance.ErrTransactionNotOwned, http.StatusForbidden},
		{"get missing", http.MethodGet, "", finance.ErrTransactionNotFound, http.StatusNotFound},
		{"delete ok", http.MethodDelete, "", nil, http.StatusNoContent},
		{"delete missing", http.MethodDelete, "", finance.ErrTransactionNotFound, http.StatusNotFound},
		{"update invalid body", http.MethodPut, `{"amount":-5}`, nil, http.StatusBadRequest},
		{"update ok", http.MethodPut, `{"title":"x","amount":5,"type":"expense","category":"lainnya"}`, nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			status, body := doRequest(t, newTestApp(svc), tt.method, "/api/v1/transactions/t9", "u1", tt.body)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", status, tt.wantStatus, body)
			}
			if tt.method == http.MethodPut && status == http.StatusOK && svc.lastUpdate.ID != "t9" {
				t.Errorf("update id = %q, want t9", svc.lastUpdate.ID)
			}
		})
	}
}

func TestUpdateWallet(t *testing.T) {
	svc := &fakeService{wallet: entity.Wallet{Balance: 10}}
	app := newTestApp(svc)

	status, body := doRequest(t, app, http.MethodPut, "/api/v1/wallet", "u1", `{"monthly_allowance":2000000,"weekly_allowance":500000}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}
	var res finance.WalletResponse
	if err := jsoniter.Unmarshal(body, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.WeeklyAllowance != 500_000 || res.Balance != 10 {
		t.Errorf("response = %+v", res)
	}

	status, _ = doRequest(t, app, http.MethodPut, "/api/v1/wallet", "u1", `{"weekly_allowance":-1}`)
	if status != http.StatusBadRequest {
		t.Errorf("negative allowance status = %d, want 400", status)
	}
}
