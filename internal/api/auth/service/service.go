package authService

import (
	"context"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth"
	authRepository "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth/repository"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/bcrypt"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/utils"
	"github.com/sirupsen/logrus"
)

const tokenLifetime = 24 * time.Hour

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.CreateUserRequest) (auth.UserResponse, error)
	GetProfile(c context.Context, userID string) (auth.UserResponse, error)
}

type AuthDomain interface {
	Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
}

type authService struct {
	userDomain UserDomain
	authDomain AuthDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
	now         func() time.Time
}

type authDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		userDomain: &userDomainImpl{log: log, repo: authRepo, bcryptUtils: bcryptUtils, utils: utils, now: time.Now},
		authDomain: &authDomainImpl{log: log, repo: authRepo, bcryptUtils: bcryptUtils},
	}
}
