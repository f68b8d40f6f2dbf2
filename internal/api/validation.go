package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is one validation failure, reported per field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "a valid email is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// bindJSON binds the request body and, on failure, writes a 400 with
// per-field errors. Returns false when the request has been rejected.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrs := make([]FieldError, len(verrs))
		for i, fe := range verrs {
			fieldErrs[i] = FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: fieldMessage(fe),
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
	return false
}
