package authService

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth"
	authRepository "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth/repository"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/bcrypt"
	jwtPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/jwt"
	"github.com/sirupsen/logrus"
	cryptoBcrypt "golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	users      map[string]entity.User
	wallets    map[string]time.Time
	failWallet bool
	rollbacks  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]entity.User{}, wallets: map[string]time.Time{}}
}

// NewClient buffers writes until Commit.
func (r *fakeRepo) NewClient(bool) (authRepository.Client, error) {
	tx := &fakeTx{repo: r, users: map[string]entity.User{}, wallets: map[string]time.Time{}}
	return authRepository.Client{
		Users:   tx,
		Wallets: tx,
		Commit: func() error {
			for k, v := range tx.users {
				r.users[k] = v
			}
			for k, v := range tx.wallets {
				r.wallets[k] = v
			}
			return nil
		},
		Rollback: func() error {
			r.rollbacks++
			return nil
		},
	}, nil
}

type fakeTx struct {
	repo    *fakeRepo
	users   map[string]entity.User
	wallets map[string]time.Time
}

func (f *fakeTx) CreateUser(_ context.Context, user entity.User) error {
	for _, u := range f.repo.users {
		if u.Email == user.Email {
			return auth.ErrEmailAlreadyExists
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeTx) GetByID(_ context.Context, id string) (entity.User, error) {
	u, ok := f.repo.users[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeTx) GetByEmail(_ context.Context, email string) (entity.User, error) {
	for _, u := range f.repo.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeTx) CreateWallet(_ context.Context, userID string, createdAt time.Time) error {
	if f.repo.failWallet {
		return auth.ErrCreateWallet
	}
	f.wallets[userID] = createdAt
	return nil
}

type fixedUtils struct{}

func (fixedUtils) NewULIDFromTimestamp(time.Time) (string, error) {
	return "01HZY0000000000000000000AB", nil
}

func newTestService(repo *fakeRepo) AuthService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log, repo, bcrypt.NewWithCost(cryptoBcrypt.MinCost), fixedUtils{})
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	res, err := svc.User().RegisterUser(context.Background(), auth.CreateUserRequest{
		Name: " Dina ", Email: " Dina@Mail.COM ", Password: "rahasia123",
	})
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	if res.Email != "dina@mail.com" || res.Name != "Dina" {
		t.Errorf("response = %+v", res)
	}

	stored, ok := repo.users[res.ID]
	if !ok {
		t.Fatal("user not committed")
	}
	if stored.Password == "rahasia123" {
		t.Error("password stored in plain text")
	}
	if _, ok := repo.wallets[res.ID]; !ok {
		t.Error("wallet not created with the user")
	}
}

func TestRegisterUser_Failures(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeRepo()
		repo.users["old"] = entity.User{ID: "old", Email: "dina@mail.com"}
		svc := newTestService(repo)

		_, err := svc.User().RegisterUser(context.Background(), auth.CreateUserRequest{
			Name: "Dina", Email: "DINA@mail.com", Password: "rahasia123",
		})
		if !errors.Is(err, auth.ErrEmailAlreadyExists) {
			t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
		}
		if len(repo.wallets) != 0 {
			t.Error("wallet created for rejected user")
		}
	})

	t.Run("wallet failure rolls back", func(t *testing.T) {
		repo := newFakeRepo()
		repo.failWallet = true
		svc := newTestService(repo)

		_, err := svc.User().RegisterUser(context.Background(), auth.CreateUserRequest{
			Name: "Dina", Email: "dina@mail.com", Password: "rahasia123",
		})
		if !errors.Is(err, auth.ErrCreateWallet) {
			t.Fatalf("err = %v, want ErrCreateWallet", err)
		}
		if repo.rollbacks != 1 {
			t.Errorf("rollbacks = %d, want 1", repo.rollbacks)
		}
		if len(repo.users) != 0 {
			t.Error("user committed without wallet")
		}
	})
}

func TestLogin(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")

	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	registered, err := svc.User().RegisterUser(ctx, auth.CreateUserRequest{
		Name: "Dina", Email: "dina@mail.com", Password: "rahasia123",
	})
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	res, err := svc.Auth().Login(ctx, auth.LoginUserRequest{Email: "Dina@mail.com", Password: "rahasia123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if res.ExpiresInMinutes < 23*60 {
		t.Errorf("ExpiresInMinutes = %v, want about a day", res.ExpiresInMinutes)
	}

	token, err := jwtPkg.ParseToken(res.AccessToken, jwtPkg.AccessTokenSecretEnv)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	user, err := jwtPkg.UserFromClaims(token)
	if err != nil {
		t.Fatalf("UserFromClaims() error = %v", err)
	}
	if user.ID != registered.ID || user.Username != "Dina" {
		t.Errorf("claims user = %+v", user)
	}

	tests := []struct {
		name string
		req  auth.LoginUserRequest
	}{
		{"wrong password", auth.LoginUserRequest{Email: "dina@mail.com", Password: "salah"}},
		{"unknown email", auth.LoginUserRequest{Email: "budi@mail.com", Password: "rahasia123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Auth().Login(ctx, tt.req); !errors.Is(err, auth.ErrInvalidEmailOrPassword) {
				t.Errorf("err = %v, want ErrInvalidEmailOrPassword", err)
			}
		})
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	if _, err := svc.User().GetProfile(context.Background(), "ghost"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
