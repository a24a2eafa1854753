package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prs/studentmanagement/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "student not found",
			err:        apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found with ID: S9999"),
			wantStatus: http.StatusNotFound,
			wantBody:   "Student not found with ID: S9999",
		},
		{
			name:       "course not found",
			err:        apperrors.NewCustomError(apperrors.ErrCourseNotFound, "Course not found: XX999"),
			wantStatus: http.StatusNotFound,
			wantBody:   "Course not found: XX999",
		},
		{
			name:       "fee not found",
			err:        apperrors.NewCustomError(apperrors.ErrFeeNotFound, "Fee record not found with ID: 42"),
			wantStatus: http.StatusNotFound,
			wantBody:   "Fee record not found with ID: 42",
		},
		{
			name:       "invalid credentials",
			err:        apperrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid credentials",
		},
		{
			name:       "duplicate email",
			err:        apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "email already exists"),
			wantStatus: http.StatusConflict,
			wantBody:   "email already exists",
		},
		{
			name:       "validation failure",
			err:        apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid student ID format"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid student ID format",
		},
		{
			name:       "unexpected errors stay opaque",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			require.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
		})
	}
}
