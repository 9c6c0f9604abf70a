package authHandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth"
	authService "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth/service"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type fakeMiddleware struct{}

func (fakeMiddleware) NewRateLimiter(ctx *fiber.Ctx) error { return ctx.Next() }

func (fakeMiddleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	if ctx.Get("X-User") == "" {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	ctx.Locals("user", entity.UserLoginData{ID: ctx.Get("X-User")})
	return ctx.Next()
}

func (fakeMiddleware) NewRequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error { return ctx.Next() }
}

func (fakeMiddleware) GetRequestID(*fiber.Ctx) string { return "test" }

type fakeAuth struct {
	registerErr error
	loginErr    error
	profileErr  error
}

func (f *fakeAuth) User() authService.UserDomain { return f }
func (f *fakeAuth) Auth() authService.AuthDomain { return f }

func (f *fakeAuth) RegisterUser(_ context.Context, req auth.CreateUserRequest) (auth.UserResponse, error) {
	if f.registerErr != nil {
		return auth.UserResponse{}, f.registerErr
	}
	return auth.UserResponse{ID: "u1", Name: req.Name, Email: req.Email}, nil
}

func (f *fakeAuth) GetProfile(_ context.Context, userID string) (auth.UserResponse, error) {
	if f.profileErr != nil {
		return auth.UserResponse{}, f.profileErr
	}
	return auth.UserResponse{ID: userID, Name: "Dina"}, nil
}

func (f *fakeAuth) Login(context.Context, auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	if f.loginErr != nil {
		return auth.LoginUserResponse{}, f.loginErr
	}
	return auth.LoginUserResponse{AccessToken: "token", ExpiresInMinutes: 1440}, nil
}

func newTestApp(svc *fakeAuth) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	New(log, svc, validator.New(), fakeMiddleware{}).Start(app.Group("/api/v1"))
	return app
}

func TestAuthHandler(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeAuth
		method     string
		path       string
		user       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name: "register", svc: &fakeAuth{}, method: http.MethodPost, path: "/api/v1/auth/register",
			body: `{"name":"Dina","email":"dina@mail.com","password":"rahasia123"}`, wantStatus: http.StatusCreated,
		},
		{
			name: "register short password", svc: &fakeAuth{}, method: http.MethodPost, path: "/api/v1/auth/register",
			body: `{"name":"Dina","email":"dina@mail.com","password":"pendek"}`, wantStatus: http.StatusBadRequest,
			wantCode: "VALIDATION_ERROR",
		},
		{
			name: "register email taken", svc: &fakeAuth{registerErr: auth.ErrEmailAlreadyExists}, method: http.MethodPost,
			path: "/api/v1/auth/register", body: `{"name":"Dina","email":"dina@mail.com","password":"rahasia123"}`,
			wantStatus: http.StatusConflict, wantCode: "EMAIL_ALREADY_EXISTS",
		},
		{
			name: "login", svc: &fakeAuth{}, method: http.MethodPost, path: "/api/v1/auth/login",
			body: `{"email":"dina@mail.com","password":"rahasia123"}`, wantStatus: http.StatusOK,
		},
		{
			name: "login wrong password", svc: &fakeAuth{loginErr: auth.ErrInvalidEmailOrPassword}, method: http.MethodPost,
			path: "/api/v1/auth/login", body: `{"email":"dina@mail.com","password":"salah"}`,
			wantStatus: http.StatusBadRequest, wantCode: "INVALID_CREDENTIALS",
		},
		{
			name: "profile", svc: &fakeAuth{}, method: http.MethodGet, path: "/api/v1/auth/profile",
			user: "u1", wantStatus: http.StatusOK,
		},
		{
			name: "profile without token", svc: &fakeAuth{}, method: http.MethodGet, path: "/api/v1/auth/profile",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "profile of deleted user", svc: &fakeAuth{profileErr: auth.ErrUserNotFound}, method: http.MethodGet,
			path: "/api/v1/auth/profile", user: "u1", wantStatus: http.StatusNotFound, wantCode: "USER_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			req.Header.Set("Content-Type", "application/json")
			if tt.user != "" {
				req.Header.Set("X-User", tt.user)
			}

			resp, err := newTestApp(tt.svc).Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			if tt.wantCode != "" {
				var res struct {
					Code string `json:"code"`
				}
				data, _ := io.ReadAll(resp.Body)
				if err := jsoniter.Unmarshal(data, &res); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if res.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", res.Code, tt.wantCode)
				}
			}
		})
	}
}
