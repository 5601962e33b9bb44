package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/vitahires/internal/queue"
	"github.com/iliyamo/vitahires/internal/repository"
)

func searchContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParseSearchQueryPageCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"absent defaults to 1", "", 1},
		{"valid page kept", "page=3", 3},
		{"zero coerced", "page=0", 1},
		{"negative coerced", "page=-4", 1},
		{"garbage coerced", "page=banana", 1},
		{"float coerced", "page=2.5", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := parseSearchQuery(searchContext(t, tt.raw))
			assert.Equal(t, tt.want, q.Page)
		})
	}
}

func TestParseSearchQueryFilters(t *testing.T) {
	q := parseSearchQuery(searchContext(t,
		"keywords=go+engineer&location=berlin&category=devops&job_type=remote&experience_level=senior&page=2"))
	assert.Equal(t, repository.JobSearchQuery{
		Keywords:        "go engineer",
		Location:        "berlin",
		Category:        "devops",
		JobType:         "remote",
		ExperienceLevel: "senior",
		Page:            2,
	}, q)
}

func TestParseSearchQueryTrimsEnumParams(t *testing.T) {
	q := parseSearchQuery(searchContext(t, "category=+devops+&job_type=++"))
	assert.Equal(t, "devops", q.Category)
	assert.Equal(t, "", q.JobType, "whitespace-only filter behaves like absence")
}

func contactContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestContactAcceptsWhenPublishFails(t *testing.T) {
	// Notification transport is best effort everywhere: a broker outage
	// must never surface to the form submitter.
	h := &PublicHandler{
		AdminEmail: "admin@vitahires.com",
		Notify: func(_ context.Context, _ queue.EmailNotification) error {
			return errors.New("broker down")
		},
	}
	c, rec := contactContext(t, `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`)

	require.NoError(t, h.Contact(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestContactRejectsMissingFields(t *testing.T) {
	h := &PublicHandler{AdminEmail: "admin@vitahires.com"}
	c, rec := contactContext(t, `{"name":"Ada"}`)

	require.NoError(t, h.Contact(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
