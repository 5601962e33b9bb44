package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/vitahires/internal/model"
	"github.com/iliyamo/vitahires/internal/queue"
	"github.com/iliyamo/vitahires/internal/repository"
)

type fakeJobs struct {
	jobs map[uint64]model.Job
}

func (f *fakeJobs) GetVisible(_ context.Context, id uint64) (model.Job, error) {
	if j, ok := f.jobs[id]; ok {
		return j, nil
	}
	return model.Job{}, repository.ErrJobNotFound
}

type fakeApplications struct {
	existing map[uint64]bool // jobIDs already applied by the test user
	created  []uint64
	rows     []repository.SeekerApplicationRow
}

func (f *fakeApplications) Create(_ context.Context, jobID, userID uint64, coverLetter string) (model.Application, error) {
	if f.existing[jobID] {
		return model.Application{}, repository.ErrAlreadyApplied
	}
	f.created = append(f.created, jobID)
	return model.Application{
		ID:          uint64(len(f.created)),
		JobID:       jobID,
		UserID:      userID,
		CoverLetter: coverLetter,
		Status:      model.ApplicationPending,
		AppliedAt:   time.Now().UTC(),
	}, nil
}

func (f *fakeApplications) ListByUser(_ context.Context, _ uint64) ([]repository.SeekerApplicationRow, error) {
	return f.rows, nil
}

type fakeSaved struct {
	saved map[uint64]bool
	rows  []repository.SavedJobRow
}

func (f *fakeSaved) Toggle(_ context.Context, jobID, _ uint64) (bool, error) {
	if f.saved == nil {
		f.saved = map[uint64]bool{}
	}
	f.saved[jobID] = !f.saved[jobID]
	return f.saved[jobID], nil
}

func (f *fakeSaved) ListByUser(_ context.Context, _ uint64) ([]repository.SavedJobRow, error) {
	return f.rows, nil
}

type fakeUsers struct {
	users map[uint64]model.User
}

func (f *fakeUsers) GetByID(_ context.Context, id uint64) (model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return model.User{}, errors.New("no such user")
}

type fakeInbox struct {
	rows []repository.InboxRow
}

func (f *fakeInbox) ListInbox(_ context.Context, _ uint64, _ int) ([]repository.InboxRow, error) {
	return f.rows, nil
}

func newSeekerContext(t *testing.T, method, target, body, jobID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(7))
	c.Set("role", model.RoleJobSeeker.String())
	c.SetParamNames("id")
	c.SetParamValues(jobID)
	return c, rec
}

func seekerFixture() (*SeekerHandler, *fakeApplications, *[]queue.EmailNotification) {
	jobs := &fakeJobs{jobs: map[uint64]model.Job{
		1: {ID: 1, Title: "Go Engineer", PostedBy: 2, IsActive: true, IsApproved: true},
	}}
	apps := &fakeApplications{existing: map[uint64]bool{}}
	users := &fakeUsers{users: map[uint64]model.User{
		2: {ID: 2, Email: "hr@acme.test", Role: model.RoleEmployer, IsActive: true},
	}}
	var sent []queue.EmailNotification
	notify := func(_ context.Context, n queue.EmailNotification) error {
		sent = append(sent, n)
		return nil
	}
	h := NewSeekerHandler(jobs, apps, &fakeSaved{}, users, &fakeInbox{}, notify)
	return h, apps, &sent
}

func TestApplyCreatesApplication(t *testing.T) {
	h, apps, sent := seekerFixture()
	c, rec := newSeekerContext(t, http.MethodPost, "/v1/jobs/1/apply", `{"cover_letter":"hi"}`, "1")

	require.NoError(t, h.Apply(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []uint64{1}, apps.created)

	require.Len(t, *sent, 1)
	n := (*sent)[0]
	assert.Equal(t, []string{"hr@acme.test"}, n.To)
	assert.Contains(t, n.Subject, "Go Engineer")
}

func TestApplyTwiceConflicts(t *testing.T) {
	h, apps, _ := seekerFixture()
	apps.existing[1] = true
	c, rec := newSeekerContext(t, http.MethodPost, "/v1/jobs/1/apply", "", "1")

	require.NoError(t, h.Apply(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already applied")
	assert.Empty(t, apps.created)
}

func TestApplyHiddenJobNotFound(t *testing.T) {
	h, apps, sent := seekerFixture()
	c, rec := newSeekerContext(t, http.MethodPost, "/v1/jobs/99/apply", "", "99")

	require.NoError(t, h.Apply(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, apps.created)
	assert.Empty(t, *sent)
}

func TestApplySucceedsWhenNotifyFails(t *testing.T) {
	h, apps, _ := seekerFixture()
	h.Notify = func(_ context.Context, _ queue.EmailNotification) error {
		return errors.New("broker down")
	}
	c, rec := newSeekerContext(t, http.MethodPost, "/v1/jobs/1/apply", "", "1")

	require.NoError(t, h.Apply(c))
	assert.Equal(t, http.StatusCreated, rec.Code, "publish failure must not fail the apply")
	assert.Equal(t, []uint64{1}, apps.created)
}

func TestApplyInvalidJobID(t *testing.T) {
	h, _, _ := seekerFixture()
	c, rec := newSeekerContext(t, http.MethodPost, "/v1/jobs/abc/apply", "", "abc")

	require.NoError(t, h.Apply(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleSaveRoundTrip(t *testing.T) {
	h, _, _ := seekerFixture()

	c, rec := newSeekerContext(t, http.MethodPost, "/v1/jobs/1/save", "", "1")
	require.NoError(t, h.ToggleSave(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"saved":true`)

	// Toggling again removes the bookmark instead of erroring.
	c, rec = newSeekerContext(t, http.MethodPost, "/v1/jobs/1/save", "", "1")
	require.NoError(t, h.ToggleSave(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"saved":false`)
}

func TestToggleSaveHiddenJobNotFound(t *testing.T) {
	h, _, _ := seekerFixture()
	c, rec := newSeekerContext(t, http.MethodPost, "/v1/jobs/404/save", "", "404")

	require.NoError(t, h.ToggleSave(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardEmptyState(t *testing.T) {
	h, _, _ := seekerFixture()
	c, rec := newSeekerContext(t, http.MethodGet, "/v1/seeker/dashboard", "", "")

	require.NoError(t, h.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"application_count":0`)
	assert.Contains(t, rec.Body.String(), `"saved_count":0`)
}
