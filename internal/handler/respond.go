package handler

import (
	"errors"
	"net/http"
	"strconv"

	"tangle/internal/middleware"
	"tangle/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// fail maps service errors to responses. Anything that is not an AppError is
// an internal failure: log the detail, return the generic message.
func fail(c *gin.Context, err error) {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"request_id": c.GetString(middleware.ContextRequestIDKey),
		"path":       c.Request.URL.Path,
	}).Error("internal error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// bindFail turns validator errors into the field-level errors array.
func bindFail(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, gin.H{"field": fe.Field(), "message": bindingMessage(fe)})
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": out})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "is too short"
	case "oneof":
		return "has an invalid value"
	default:
		return "is invalid"
	}
}

func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func pageQuery(c *gin.Context, defLimit int) (pkg.PageQuery, bool) {
	q, err := pkg.ParsePageQuery(c.Query("page"), c.Query("limit"), defLimit)
	if err != nil {
		fail(c, err)
		return pkg.PageQuery{}, false
	}
	return q, true
}
