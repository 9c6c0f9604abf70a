package chatHandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/chat"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/simulation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

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
	chatErr error
	simOut  simulation.Outcome
	simErr  error

	lastChat  chat.ChatRequest
	lastLimit int
	cleared   string
}

func (f *fakeService) Chat(_ context.Context, req chat.ChatRequest) (chat.ChatResponse, error) {
	f.lastChat = req
	if f.chatErr != nil {
		return chat.ChatResponse{}, f.chatErr
	}
	return chat.ChatResponse{Intents: []string{"unknown"}, Reply: "halo juga"}, nil
}

func (f *fakeService) Extract(_ context.Context, message string) (chat.ExtractResponse, error) {
	return chat.ExtractResponse{PrimaryIntent: "unknown", Intents: []string{"unknown"}}, nil
}

func (f *fakeService) Simulate(context.Context, chat.SimulateRequest) (simulation.Outcome, error) {
	return f.simOut, f.simErr
}

func (f *fakeService) History(_ context.Context, _ string, limit int) ([]entity.ChatExchange, error) {
	f.lastLimit = limit
	return nil, nil
}

func (f *fakeService) ClearHistory(_ context.Context, userID string) error {
	f.cleared = userID
	return nil
}

func (f *fakeService) Insights(_ context.Context, _ string, limit int) ([]entity.FinancialInsight, error) {
	f.lastLimit = limit
	return []entity.FinancialInsight{{ID: "i1", Intent: "report", Reply: "laporan"}}, nil
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

func TestChat(t *testing.T) {
	tests := []struct {
		name       string
		user       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"answered", "u1", `{"message":"halo"}`, nil, http.StatusOK, ""},
		{"missing message", "u1", `{}`, nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"too long", "u1", `{"message":"` + strings.Repeat("a", chat.MaxMessageLength+1) + `"}`, nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"blank after trim", "u1", `{"message":"   "}`, chat.ErrEmptyMessage, http.StatusBadRequest, "EMPTY_MESSAGE"},
		{"no token", "", `{"message":"halo"}`, nil, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{chatErr: tt.svcErr}
			status, body := doRequest(t, newTestApp(svc), http.MethodPost, "/api/v1/chat", tt.user, tt.body)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", status, tt.wantStatus, body)
			}
			if tt.wantCode != "" && !strings.Contains(string(body), `"code":"`+tt.wantCode+`"`) {
				t.Errorf("body = %s, want code %s", body, tt.wantCode)
			}
			if status == http.StatusOK && svc.lastChat.UserID != tt.user {
				t.Errorf("user id = %q, want %q", svc.lastChat.UserID, tt.user)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	status, body := doRequest(t, newTestApp(&fakeService{}), http.MethodPost, "/api/v1/chat/extract", "u1", `{"message":"halo"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}

	var res chat.ExtractResponse
	if err := jsoniter.Unmarshal(body, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.PrimaryIntent != "unknown" {
		t.Errorf("response = %+v", res)
	}
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		out        simulation.Outcome
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "reachable",
			body:       `{"target":10000000,"recurring":2000000,"unit":"month"}`,
			out:        simulation.Outcome{PeriodsNeeded: 5, Status: simulation.StatusReachable},
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero saving rate",
			body:       `{"target":10000000}`,
			out:        simulation.Outcome{Status: simulation.StatusInvalidRate, Narrative: "belum valid"},
			err:        simulation.ErrInvalidSavingRate,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_SAVING_RATE",
		},
		{
			name:       "zero target",
			body:       `{"recurring":1}`,
			out:        simulation.Outcome{Status: simulation.StatusInvalidTarget, Narrative: "belum tahu"},
			err:        simulation.ErrInvalidTarget,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_TARGET",
		},
		{
			name:       "unit outside the allowed set",
			body:       `{"target":1,"recurring":1,"unit":"year"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "negative balance",
			body:       `{"target":1,"recurring":1,"current_balance":-1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{simOut: tt.out, simErr: tt.err}
			status, body := doRequest(t, newTestApp(svc), http.MethodPost, "/api/v1/chat/simulate", "u1", tt.body)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body = %s", status, tt.wantStatus, body)
			}
			if tt.wantCode != "" && !strings.Contains(string(body), `"code":"`+tt.wantCode+`"`) {
				t.Errorf("body = %s, want code %s", body, tt.wantCode)
			}
			if tt.err != nil && !strings.Contains(string(body), tt.out.Narrative) {
				t.Errorf("body = %s, want narrative %q", body, tt.out.Narrative)
			}
		})
	}
}

func TestHistoryEndpoints(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/chat/history", "u1", "")
	if status != http.StatusOK || string(body) != `{"exchanges":[]}` {
		t.Fatalf("status = %d, body = %s", status, body)
	}
	if svc.lastLimit != chat.DefaultListLimit {
		t.Errorf("default limit = %d, want %d", svc.lastLimit, chat.DefaultListLimit)
	}

	status, body = doRequest(t, app, http.MethodGet, "/api/v1/chat/insights?limit=5", "u1", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}
	if svc.lastLimit != 5 {
		t.Errorf("limit = %d, want 5", svc.lastLimit)
	}
	var insights []chat.InsightResponse
	if err := jsoniter.Unmarshal(body, &insights); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(insights) != 1 || insights[0].ID != "i1" {
		t.Errorf("insights = %+v", insights)
	}

	status, _ = doRequest(t, app, http.MethodDelete, "/api/v1/chat/history", "u1", "")
	if status != http.StatusNoContent || svc.cleared != "u1" {
		t.Errorf("clear status = %d, cleared = %q", status, svc.cleared)
	}
}
