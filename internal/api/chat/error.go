package chat

import (
	"net/http"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/response"
)

var (
	ErrEmptyMessage      = response.NewError(http.StatusBadRequest, "message must not be empty")
	ErrMessageTooLong    = response.NewError(http.StatusBadRequest, "message is too long")
	ErrInvalidSimulation = response.NewError(http.StatusUnprocessableEntity, "simulation input is not valid")
	ErrListInsights      = response.NewError(http.StatusInternalServerError, "failed to list insights")
)
