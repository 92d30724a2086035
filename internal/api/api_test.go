package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedoosh/schedoosh/internal/api/models"
	"github.com/schedoosh/schedoosh/internal/config"
	"github.com/schedoosh/schedoosh/internal/database"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Listen:   "127.0.0.1:0",
		Database: &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")},
		Auth: &config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenValidity: time.Hour,
		},
	}

	db, err := database.New(cfg.Database.Path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s, err := New(cfg, db, true)
	require.NoError(t, err)
	s.setupRoutes()
	return s
}

func (s *Server) request(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.ginEngine.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, s *Server, username, password string) string {
	t.Helper()

	w := s.request(t, "POST", "/api/auth/register", `{"username":"`+username+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.request(t, "POST", "/api/auth/login", `{"username":"`+username+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/me"},
		{"PATCH", "/api/me"},
		{"POST", "/api/groups"},
		{"GET", "/api/groups"},
		{"GET", "/api/groups/1"},
		{"POST", "/api/groups/1/join"},
		{"POST", "/api/groups/1/leave"},
		{"POST", "/api/groups/1/invite"},
		{"GET", "/api/events"},
		{"POST", "/api/events"},
		{"DELETE", "/api/events/1"},
		{"GET", "/api/events/group/1"},
	} {
		w := s.request(t, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestGroupEventsEndToEnd(t *testing.T) {
	s := newTestServer(t)

	alice := registerAndLogin(t, s, "alice", "pw1")
	bob := registerAndLogin(t, s, "bob", "pw2")

	// alice creates the group, bob joins it.
	w := s.request(t, "POST", "/api/groups", `{"name":"study"}`, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	var group models.GroupSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &group))

	w = s.request(t, "POST", "/api/groups/"+itoa(group.ID)+"/join", "", bob)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.request(t, "POST", "/api/events", `{"title":"standup","weekday":0,"hour":9,"minute":0}`, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	w = s.request(t, "POST", "/api/events", `{"title":"lecture","weekday":0,"hour":10,"minute":0}`, bob)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.request(t, "GET", "/api/events/group/"+itoa(group.ID), "", alice)
	require.Equal(t, http.StatusOK, w.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 2)
	assert.Equal(t, "standup", events[0].Title)
	assert.Equal(t, "lecture", events[1].Title)

	// The member list is visible to bob and carries scores.
	w = s.request(t, "GET", "/api/groups/"+itoa(group.ID), "", bob)
	require.Equal(t, http.StatusOK, w.Code)
	var detail models.GroupDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Len(t, detail.Members, 2)

	// After bob leaves, his events disappear from the aggregate.
	w = s.request(t, "POST", "/api/groups/"+itoa(group.ID)+"/leave", "", bob)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.request(t, "GET", "/api/events/group/"+itoa(group.ID), "", alice)
	require.Equal(t, http.StatusOK, w.Code)
	events = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "standup", events[0].Title)

	// And bob can no longer read the group at all.
	w = s.request(t, "GET", "/api/groups/"+itoa(group.ID), "", bob)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestScoreSurvivesInGroupDetail(t *testing.T) {
	s := newTestServer(t)

	alice := registerAndLogin(t, s, "alice", "pw1")

	w := s.request(t, "PATCH", "/api/me", `{"score":7}`, alice)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.request(t, "POST", "/api/groups", `{"name":"golf"}`, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	var group models.GroupSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &group))

	w = s.request(t, "GET", "/api/groups/"+itoa(group.ID), "", alice)
	require.Equal(t, http.StatusOK, w.Code)
	var detail models.GroupDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.Len(t, detail.Members, 1)
	assert.Equal(t, 7, detail.Members[0].Score)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
