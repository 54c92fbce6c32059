package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/userctx"
)

type identityStub func(ctx context.Context, address string) (*models.User, error)

func (f identityStub) Resolve(ctx context.Context, address string) (*models.User, error) {
	return f(ctx, address)
}

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

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestClientAddress(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded first hop", headers: map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.1"}, remote: "10.0.0.2:5000", want: "203.0.113.1"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "203.0.113.9"}, remote: "10.0.0.2:5000", want: "203.0.113.9"},
		{name: "remote addr", remote: "192.0.2.4:41000", want: "192.0.2.4"},
		{name: "ipv6 remote addr", remote: "[2001:db8::1]:41000", want: "2001:db8::1"},
		{name: "remote addr without port", remote: "192.0.2.4", want: "192.0.2.4"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, ClientAddress(r))
		})
	}
}

func TestResolveIdentity(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice"}
	identity := identityStub(func(ctx context.Context, address string) (*models.User, error) {
		if address == "192.0.2.1" {
			return alice, nil
		}
		return nil, nil
	})

	var seen *models.User
	var seenAddress string
	handler := ResolveIdentity(identity)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = userctx.GetUser(r.Context())
		seenAddress = userctx.GetAddress(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:1234"
	handler.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, alice, seen)
	assert.Equal(t, "192.0.2.1", seenAddress)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.2:1234"
	handler.ServeHTTP(httptest.NewRecorder(), r)
	assert.Nil(t, seen)
}

func TestResolveIdentityStoreFailure(t *testing.T) {
	identity := identityStub(func(ctx context.Context, address string) (*models.User, error) {
		return nil, errors.New("database is locked")
	})

	rec := httptest.NewRecorder()
	ResolveIdentity(identity)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func withUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(userctx.SetUser(r.Context(), user))
}

func TestRequireAuth(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireAuth(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?"+url.Values{"next": {"/search"}}.Encode(), rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	r := withUser(httptest.NewRequest(http.MethodGet, "/search", nil), &models.User{ID: 1})
	RequireAuth(okHandler).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	forbidden := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	gate := RequireAdmin(forbidden)(okHandler)

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/add", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	gate.ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/admin", nil), &models.User{ID: 2}))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	gate.ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/admin", nil), &models.User{ID: 3, IsAdmin: true}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuditMutations(t *testing.T) {
	recorder := &recorderStub{}
	handler := AuditMutations(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handlers still see the parsed form
		assert.Equal(t, "Sevilla", r.FormValue("name"))
		w.WriteHeader(http.StatusBadRequest)
	}))

	form := url.Values{"name": {"Sevilla"}, "password": {"hunter2"}}
	r := httptest.NewRequest(http.MethodPost, "/edit/4", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r = withUser(r, &models.User{ID: 8, IsAdmin: true})

	handler.ServeHTTP(httptest.NewRecorder(), r)

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, models.RequestMutation, entry.RequestType)
	assert.Equal(t, "POST /edit/4", entry.RequestData)
	assert.Equal(t, http.StatusBadRequest, entry.StatusCode)
	assert.Equal(t, int64(8), *entry.UserID)

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(entry.ResponseData), &data))
	assert.Equal(t, "Sevilla", data["name"])
	assert.Equal(t, redacted, data["password"])
}

func TestAuditMutationsSkipsReads(t *testing.T) {
	recorder := &recorderStub{}
	AuditMutations(recorder)(okHandler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/list", nil))

	assert.Empty(t, recorder.entries)
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	incoming := uuid.NewString()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, incoming)
	handler.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, incoming, seen)
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
