package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{"SOMETHING_NEW", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetHTTPStatus(tt.code), tt.code)
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	// Domain codes map to transport codes; everything else passes through
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeInvalidInput, NormalizeErrorCode("INVALID_INPUT"))
	assert.Equal(t, ErrCodeUnauthorized, NormalizeErrorCode("INVALID_CREDENTIALS"))
	assert.Equal(t, ErrCodeInternal, NormalizeErrorCode("INTERNAL_ERROR"))
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound))
	assert.Equal(t, "CUSTOM_ERROR", NormalizeErrorCode("CUSTOM_ERROR"))
}

func TestEveryMappedDomainCodeHasHTTPStatus(t *testing.T) {
	for domainCode, transportCode := range DomainErrorCodeMapping {
		_, ok := ErrorCodeHTTPStatus[transportCode]
		assert.True(t, ok, "domain code %s maps to %s which has no HTTP status", domainCode, transportCode)
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrCodeNotFound, "Quote not found")

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Quote not found", resp.Error.Message)
	assert.Empty(t, resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "email", Message: "Field 'email' must be a valid email address"},
		{Field: "phone", Message: "Field 'phone' is required"},
	}

	resp := NewValidationErrorResponse("Field 'email' must be a valid email address", "req-42", details)

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-42", resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "phone", resp.Error.Details[1].Field)
}

func TestErrorEnvelopeJSONShape(t *testing.T) {
	data, err := json.Marshal(NewErrorResponseWithRequestID(ErrCodeUnauthorized, "Authentication required", "req-7"))
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(data, &envelope))

	assert.Equal(t, false, envelope["success"])
	assert.NotContains(t, envelope, "data")
	errObj, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ERR_UNAUTHORIZED", errObj["code"])
	assert.Equal(t, "req-7", errObj["request_id"])
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		pageSize      int
		expectedPages int
		expectedSize  int
	}{
		{"exact pages", 100, 10, 10, 10},
		{"partial last page", 101, 10, 11, 10},
		{"empty", 0, 10, 0, 10},
		{"single page", 9, 10, 1, 10},
		{"zero page size falls back", 100, 0, 5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewSuccessResponseWithMeta([]string{"a"}, tt.total, 1, tt.pageSize)

			assert.True(t, resp.Success)
			assert.Nil(t, resp.Error)
			require.NotNil(t, resp.Meta)
			assert.Equal(t, tt.total, resp.Meta.Total)
			assert.Equal(t, tt.expectedPages, resp.Meta.TotalPages)
			assert.Equal(t, tt.expectedSize, resp.Meta.PageSize)
		})
	}
}
