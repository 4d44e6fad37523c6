package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHandleError_StatusAndCode(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{err: access.ErrForbidden, status: http.StatusForbidden, code: CodeForbidden},
		{err: access.ErrMissingIdentity, status: http.StatusUnauthorized, code: CodeUnauthorized},
		{err: employee.ErrEmailExists, status: http.StatusConflict, code: CodeConflict},
		{err: leave.ErrLeaveRequestNotFound, status: http.StatusNotFound, code: CodeNotFound},
		{err: leave.ErrLeaveRequestAlreadyProcessed, status: http.StatusConflict, code: CodeConflict},
		{err: leave.ErrProfileNotLinked, status: http.StatusBadRequest, code: CodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()

			HandleError(w, tt.err)

			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, validator.ValidationErrors{{Field: "status", Message: "invalid"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	require.NotNil(t, body.Error)
	assert.Equal(t, CodeValidation, body.Error.Code)
	assert.Equal(t, map[string]string{"status": "invalid"}, body.Error.Details)
}

func TestSuccess_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	Created(w, "Department created successfully", map[string]string{"name": "Finance"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := decode(t, w)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.Equal(t, "Department created successfully", body.Message)
}
