package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/roster/internal/domain"
	"example.com/roster/internal/persistence/memory"
)

func newTestMux(t *testing.T, seed []domain.Activity, opts ...memory.Option) *http.ServeMux {
	t.Helper()

	registry := memory.NewRegistry(seed, opts...)
	service := domain.NewService(registry)
	handler := NewHandler(service, t.TempDir())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux
}

func defaultMux(t *testing.T) *http.ServeMux {
	return newTestMux(t, memory.DefaultActivities())
}

func doRequest(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func signupURL(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
}

func unregisterURL(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/unregister?email=" + url.QueryEscape(email)
}

func decodeActivities(t *testing.T, rr *httptest.ResponseRecorder) map[string]ActivityView {
	t.Helper()

	var data map[string]ActivityView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &data))
	return data
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Detail
}

func TestRootRedirectsToIndex(t *testing.T) {
	rr := doRequest(defaultMux(t), http.MethodGet, "/")

	assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	assert.Equal(t, "/static/index.html", rr.Header().Get("Location"))
}

func TestListActivities(t *testing.T) {
	rr := doRequest(defaultMux(t), http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	data := decodeActivities(t, rr)
	require.NotEmpty(t, data)

	chess, ok := data["Chess Club"]
	require.True(t, ok)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Contains(t, chess.Participants, "michael@mergington.edu")

	for name, view := range data {
		assert.Positive(t, view.MaxParticipants, name)
		assert.LessOrEqual(t, len(view.Participants), view.MaxParticipants, name)
		assert.NotNil(t, view.Participants, name)
	}
}

func TestSignupSuccess(t *testing.T) {
	mux := defaultMux(t)

	rr := doRequest(mux, http.MethodPost, signupURL("Soccer Team", "newstudent@mergington.edu"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "newstudent@mergington.edu")
	assert.Contains(t, resp.Message, "Soccer Team")

	data := decodeActivities(t, doRequest(mux, http.MethodGet, "/activities"))
	assert.Contains(t, data["Soccer Team"].Participants, "newstudent@mergington.edu")
}

func TestSignupUnknownActivity(t *testing.T) {
	rr := doRequest(defaultMux(t), http.MethodPost, signupURL("Nonexistent Activity", "x@y.com"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, decodeDetail(t, rr), "not found")
}

func TestSignupDuplicateStudent(t *testing.T) {
	mux := defaultMux(t)

	first := doRequest(mux, http.MethodPost, signupURL("Soccer Team", "duplicate@mergington.edu"))
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(mux, http.MethodPost, signupURL("Soccer Team", "duplicate@mergington.edu"))
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, decodeDetail(t, second), "already signed up")
}

func TestSignupMissingEmail(t *testing.T) {
	rr := doRequest(defaultMux(t), http.MethodPost, "/activities/Chess%20Club/signup")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeDetail(t, rr), "email is required")
}

func TestSignupActivityNameWithSpaces(t *testing.T) {
	rr := doRequest(defaultMux(t), http.MethodPost, signupURL("Art Club", "artist@mergington.edu"))
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestSignupFullActivity(t *testing.T) {
	seed := []domain.Activity{{
		Name:            "Knitting Circle",
		Description:     "Knit and crochet together",
		Schedule:        "Mondays, 3:30 PM - 4:30 PM",
		MaxParticipants: 1,
		Participants:    []string{"first@mergington.edu"},
	}}

	t.Run("rejected when enforcement is on", func(t *testing.T) {
		rr := doRequest(newTestMux(t, seed), http.MethodPost, signupURL("Knitting Circle", "late@mergington.edu"))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeDetail(t, rr), "full")
	})

	t.Run("accepted when enforcement is off", func(t *testing.T) {
		mux := newTestMux(t, seed, memory.WithCapacityEnforcement(false))
		rr := doRequest(mux, http.MethodPost, signupURL("Knitting Circle", "late@mergington.edu"))
		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	})
}

func TestUnregisterSuccess(t *testing.T) {
	mux := defaultMux(t)

	rr := doRequest(mux, http.MethodDelete, unregisterURL("Soccer Team", "alex@mergington.edu"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "alex@mergington.edu")
	assert.Contains(t, resp.Message, "Soccer Team")

	data := decodeActivities(t, doRequest(mux, http.MethodGet, "/activities"))
	assert.NotContains(t, data["Soccer Team"].Participants, "alex@mergington.edu")
}

func TestUnregisterUnknownActivity(t *testing.T) {
	rr := doRequest(defaultMux(t), http.MethodDelete, unregisterURL("Nonexistent Activity", "x@y.com"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, decodeDetail(t, rr), "not found")
}

func TestUnregisterNotSignedUp(t *testing.T) {
	rr := doRequest(defaultMux(t), http.MethodDelete, unregisterURL("Soccer Team", "notsignedup@mergington.edu"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeDetail(t, rr), "not signed up")
}

func TestSignupAndUnregisterWorkflow(t *testing.T) {
	mux := defaultMux(t)
	email := "workflow@mergington.edu"

	rr := doRequest(mux, http.MethodPost, signupURL("Drama Club", email))
	require.Equal(t, http.StatusOK, rr.Code)

	data := decodeActivities(t, doRequest(mux, http.MethodGet, "/activities"))
	require.Contains(t, data["Drama Club"].Participants, email)

	rr = doRequest(mux, http.MethodDelete, unregisterURL("Drama Club", email))
	require.Equal(t, http.StatusOK, rr.Code)

	data = decodeActivities(t, doRequest(mux, http.MethodGet, "/activities"))
	assert.NotContains(t, data["Drama Club"].Participants, email)
}

func TestHealthz(t *testing.T) {
	rr := doRequest(defaultMux(t), http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}
