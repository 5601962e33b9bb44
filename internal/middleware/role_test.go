package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/vitahires/internal/model"
)

func runWithRole(t *testing.T, mw echo.MiddlewareFunc, role any) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	return rec.Code
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		allowed []model.Role
		role    any
		want    int
	}{
		{"matching role passes", []model.Role{model.RoleJobSeeker}, "jobseeker", http.StatusOK},
		{"one of several passes", []model.Role{model.RoleEmployer, model.RoleAdmin}, "admin", http.StatusOK},
		{"wrong role forbidden", []model.Role{model.RoleAdmin}, "jobseeker", http.StatusForbidden},
		{"missing role forbidden", []model.Role{model.RoleAdmin}, nil, http.StatusForbidden},
		{"unknown role forbidden", []model.Role{model.RoleAdmin}, "superuser", http.StatusForbidden},
		{"non-string claim forbidden", []model.Role{model.RoleAdmin}, 42, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runWithRole(t, RequireRole(tt.allowed...), tt.role)
			assert.Equal(t, tt.want, got)
		})
	}
}
