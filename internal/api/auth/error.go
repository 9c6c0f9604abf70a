package auth

import (
	"net/http"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/response"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrCreateWallet           = response.NewError(http.StatusInternalServerError, "failed to create wallet")
)
