package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"watchlog-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func errorRouter(production bool, err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(production))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})
	return r
}

func serveBoom(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return w
}

func TestErrorHandler_TaxonomyMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", apperror.Validation("Name can't be empty"), http.StatusUnprocessableEntity, `{"error":"Name can't be empty"}`},
		{"conflict", apperror.Conflict("This email is already registered"), http.StatusConflict, `{"error":"This email is already registered"}`},
		{"not found", apperror.NotFound("Review not found"), http.StatusNotFound, `{"error":"Review not found"}`},
		{"forbidden", apperror.Forbidden("Forbidden"), http.StatusForbidden, `{"error":"Forbidden"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveBoom(errorRouter(false, tt.err))
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestErrorHandler_UnexpectedErrorInProduction(t *testing.T) {
	w := serveBoom(errorRouter(true, errors.New("pq: connection refused")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestErrorHandler_UnexpectedErrorInDevelopment(t *testing.T) {
	w := serveBoom(errorRouter(false, errors.New("pq: connection refused")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"pq: connection refused"}`, w.Body.String())
}
