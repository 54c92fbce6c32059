package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/footyhub/footyhub/controllers"
	"github.com/footyhub/footyhub/database"
	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/repositories"
	"github.com/footyhub/footyhub/services"
)

// httptest.NewRequest uses 192.0.2.1:1234 as the remote address
const clientAddress = "192.0.2.1"

type recorderStub struct {
	mu      sync.Mutex
	entries []models.AuditLogEntry
}

func (r *recorderStub) Record(entry models.AuditLogEntry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return true
}

func (r *recorderStub) mutations() []models.AuditLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AuditLogEntry
	for _, e := range r.entries {
		if e.RequestType == models.RequestMutation {
			out = append(out, e)
		}
	}
	return out
}

type testServer struct {
	handler  http.Handler
	srvs     *services.Services
	repos    *repositories.Repositories
	recorder *recorderStub
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := database.Initialize(context.Background(), database.DriverSQLite, filepath.Join(t.TempDir(), "router.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repos := repositories.NewRepositories(db)
	recorder := &recorderStub{}
	srvs := services.NewServices(repos, recorder, services.Upstreams{}, services.Options{
		BcryptCost:  bcrypt.MinCost,
		MaxPageSize: models.MaxPageSize,
	})

	r, err := setupRouter(controllers.NewControllers(srvs, nil), srvs, recorder, routerOptions{})
	require.NoError(t, err)

	return &testServer{handler: r, srvs: srvs, repos: repos, recorder: recorder}
}

// loginAs creates a user and binds the test client address to it
func (s *testServer) loginAs(t *testing.T, username string, isAdmin bool) *models.User {
	t.Helper()
	user, err := s.srvs.Users.Create(context.Background(), &models.SignupForm{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret",
		IsAdmin:  isAdmin,
	})
	require.NoError(t, err)
	require.NoError(t, s.repos.Sessions.Bind(context.Background(), clientAddress, user.ID))
	return user
}

func (s *testServer) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := setupTestServer(t)

	rec := s.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy", "service": "footyhub"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestStaticAndNotFound(t *testing.T) {
	s := setupTestServer(t)

	rec := s.do(http.MethodGet, "/static/style.css", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/no-such-page", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/login/sso", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnonymousIsSentToLogin(t *testing.T) {
	s := setupTestServer(t)

	for _, path := range []string{"/search", "/team-info", "/football-news", "/history", "/add", "/admin"} {
		t.Run(path, func(t *testing.T) {
			rec := s.do(http.MethodGet, path, nil)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/login?next="+url.QueryEscape(path), rec.Header().Get("Location"))
		})
	}

	rec := s.do(http.MethodGet, "/list", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNonAdminIsForbidden(t *testing.T) {
	s := setupTestServer(t)
	s.loginAs(t, "bob", false)

	rec := s.do(http.MethodGet, "/admin", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/search", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	form := url.Values{"name": {"Sevilla"}, "league": {"La Liga"}, "founded": {"1890"}}
	rec = s.do(http.MethodPost, "/add", form)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	count, err := s.srvs.Team.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	mutations := s.recorder.mutations()
	require.Len(t, mutations, 1)
	assert.Equal(t, http.StatusForbidden, mutations[0].StatusCode)
	assert.Equal(t, "POST /add", mutations[0].RequestData)
}

func TestAdminMutationsAreAudited(t *testing.T) {
	s := setupTestServer(t)
	admin := s.loginAs(t, "admin", true)

	form := url.Values{"name": {"Sevilla"}, "league": {"La Liga"}, "founded": {"1890"}}
	rec := s.do(http.MethodPost, "/add", form)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	form = url.Values{"username": {"carol"}, "email": {"carol@example.com"}, "password": {"hunter2"}}
	rec = s.do(http.MethodPost, "/admin/addUser", form)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	mutations := s.recorder.mutations()
	require.Len(t, mutations, 2)
	for _, m := range mutations {
		require.NotNil(t, m.UserID)
		assert.Equal(t, admin.ID, *m.UserID)
		assert.Equal(t, http.StatusSeeOther, m.StatusCode)
	}
	assert.NotContains(t, mutations[1].ResponseData, "hunter2")

	rec = s.do(http.MethodGet, "/admin/carol", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignupThenResolve(t *testing.T) {
	s := setupTestServer(t)

	form := url.Values{"username": {"alice"}, "email": {"alice@example.com"}, "password": {"pw1"}}
	rec := s.do(http.MethodPost, "/signup", form)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = s.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")

	rec = s.do(http.MethodGet, "/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = s.do(http.MethodGet, "/search", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
