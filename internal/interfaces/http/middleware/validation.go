package middleware

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/agency/backend/internal/interfaces/http/dto"
)

// SetupValidator configures the validator with custom tags
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Use JSON tag names for field names in errors
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	}
}

// FormatValidationErrors formats validation errors into a standard response
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: getValidationMessage(e),
			})
		}
	}

	message := "Request validation failed"
	if len(details) > 0 {
		// Name the first offending field in the top-level message
		message = details[0].Message
	}

	return dto.NewValidationErrorResponse(message, requestID, details)
}

// HandleValidationError returns a validation error response
func HandleValidationError(c *gin.Context, err error) {
	requestID := c.GetString("request_id")
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, requestID))
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Field '" + e.Field() + "' is required"
	case "email":
		return "Field '" + e.Field() + "' must be a valid email address"
	case "min":
		if e.Type().Kind() == reflect.String || e.Type().Kind() == reflect.Slice {
			return "Field '" + e.Field() + "' must have at least " + e.Param() + " entries or characters"
		}
		return "Field '" + e.Field() + "' must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String || e.Type().Kind() == reflect.Slice {
			return "Field '" + e.Field() + "' must have at most " + e.Param() + " entries or characters"
		}
		return "Field '" + e.Field() + "' must be at most " + e.Param()
	case "uuid":
		return "Field '" + e.Field() + "' must be a valid UUID"
	case "oneof":
		return "Field '" + e.Field() + "' must be one of: " + e.Param()
	case "url":
		return "Field '" + e.Field() + "' must be a valid URL"
	case "startswith":
		return "Field '" + e.Field() + "' must start with " + e.Param()
	default:
		return "Field '" + e.Field() + "' is invalid"
	}
}
