package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pawtrack/core/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func record(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, err)
	return w
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "validation",
			err:  apperr.Validationf("Missing extracted_text"),
			code: http.StatusBadRequest,
			body: `{"error":"Missing extracted_text"}`,
		},
		{
			name: "schema",
			err:  apperr.Schemaf("visit_type %q is not a known value", "grooming"),
			code: http.StatusBadGateway,
			body: `{"error":"visit_type \"grooming\" is not a known value"}`,
		},
		{
			name: "upstream",
			err:  apperr.Upstream(errors.New("connection reset")),
			code: http.StatusInternalServerError,
			body: `{"error":"connection reset"}`,
		},
		{
			name: "untyped",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
			body: `{"error":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record(tt.err)
			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
