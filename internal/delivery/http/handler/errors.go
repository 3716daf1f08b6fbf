package handler

import (
	"errors"
	"net/http"

	"fruitarians-api/internal/logger"
	"fruitarians-api/internal/middleware"
	appErrors "fruitarians-api/pkg/errors"
	"fruitarians-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInvalidBody = "Invalid request body"

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if kind := appErrors.KindOf(err); kind != appErrors.KindInternal {
		var appErr *appErrors.AppError
		errors.As(err, &appErr)
		utils.ErrorResponse(c, kind.HTTPStatus(), appErr.Message)
		return
	}

	logger.Error("Internal server error",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}

// currentUserID writes a 401 and returns false when the request carries no
// authenticated user.
func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondWithError(c, appErrors.ErrUnauthorized)
		return "", false
	}
	return userID, true
}
