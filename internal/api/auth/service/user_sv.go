package authService

import (
	"context"
	"strings"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/sirupsen/logrus"
)

// RegisterUser stores the account and its empty wallet in one transaction.
func (s *userDomainImpl) RegisterUser(ctx context.Context, req auth.CreateUserRequest) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.UserResponse{}, err
	}

	now := s.now()
	ULID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.UserResponse{}, err
	}

	user := entity.User{
		ID:        ULID,
		Name:      strings.TrimSpace(req.Name),
		Email:     normalizeEmail(req.Email),
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		_ = repo.Rollback()
		return auth.UserResponse{}, err
	}

	if err := repo.Wallets.CreateWallet(ctx, user.ID, now); err != nil {
		_ = repo.Rollback()
		return auth.UserResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit user registration")
		return auth.UserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("User registered")

	return makeUserResponse(user), nil
}

func (s *userDomainImpl) GetProfile(ctx context.Context, userID string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return makeUserResponse(user), nil
}
