package handler

import (
	"net/http"
	"strconv"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/middleware"
	"hospital-coordination-backend/internal/service"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError writes the error envelope for err. Internal failures keep
// their cause on the context for the request logger and show the client a
// generic message.
func respondError(c *gin.Context, err error) {
	status, message := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	utils.ErrorResponse(c, status, message)
}

// hospitalIDParam parses :hospitalId as a positive integer
func hospitalIDParam(c *gin.Context) (uint, bool) {
	return positiveIDParam(c, "hospitalId", "Invalid hospital ID")
}

func positiveIDParam(c *gin.Context, name, message string) (uint, bool) {
	id, err := parsePositiveID(c.Param(name))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, message)
		return 0, false
	}
	return id, true
}

func parsePositiveID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}

// actor returns the session principal, writing 401 when there is none
func actor(c *gin.Context) (service.Actor, bool) {
	a, ok := middleware.CurrentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
	}
	return a, ok
}
