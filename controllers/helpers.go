package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/services"
	"github.com/yeremiapane/bar-app/utils"
)

// statusFor maps core errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidTableID),
		errors.Is(err, services.ErrItemIndex),
		errors.Is(err, services.ErrNoItems),
		errors.Is(err, services.ErrEmptyDraft),
		errors.Is(err, services.ErrRangeTooLong):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrExpenseNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrTableExists),
		errors.Is(err, services.ErrTableBusy),
		errors.Is(err, services.ErrNoOrder),
		errors.Is(err, services.ErrTableInPayment):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondServiceError(c *gin.Context, err error) {
	utils.RespondError(c, statusFor(err), err)
}

// tableIDParam reads :id, responding 400 when it is not a positive integer
func tableIDParam(c *gin.Context) (int, bool) {
	id, err := services.ParseTableID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.ErrInvalidTableID)
		return 0, false
	}
	return id, true
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.ErrItemIndex)
		return 0, false
	}
	return index, true
}
