package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"splitwise-platform/internal/domain/models"
	jwtauth "splitwise-platform/internal/infrastructure/auth"
	"splitwise-platform/internal/infrastructure/config"
	httpserver "splitwise-platform/internal/infrastructure/http"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/utils"
	"splitwise-platform/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newTestServer(t *testing.T, db httpserver.Pinger) (*httptest.Server, *mocks.UserInputPort, *jwtauth.Manager) {
	svc := mocks.NewUserInputPort(t)
	tokens := jwtauth.NewManager("test-secret", "splitwise", time.Minute)
	cfg := &config.Config{ServiceName: "USER-SERVICE"}

	r := httpserver.NewRouter(logger.New("test"), svc, tokens, db)
	r.Setup(cfg)
	srv := httptest.NewServer(r.GetRouter())
	t.Cleanup(srv.Close)
	return srv, svc, tokens
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&out)
	}
	return resp, out
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func sampleUser() *models.User {
	return &models.User{
		ID: 1, Username: "alice", Email: "alice@example.com", Role: "MEMBER", IsActive: true,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestUserRoutes_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(svc *mocks.UserInputPort)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"username":"alice","email":"alice@example.com","password":"secret-pass"}`,
			mockSetup: func(svc *mocks.UserInputPort) {
				svc.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(in models.UserCreate) bool {
					return in.Username == "alice" && in.Password == "secret-pass"
				})).Return(sampleUser(), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "invalid username",
			body:       `{"username":"a!","email":"alice@example.com","password":"secret-pass"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "email longer than the column",
			body:       `{"username":"alice","email":"` + strings.Repeat("a", 250) + `@example.com","password":"secret-pass"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name: "username taken",
			body: `{"username":"alice","email":"alice@example.com","password":"secret-pass"}`,
			mockSetup: func(svc *mocks.UserInputPort) {
				svc.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, utils.ErrUsernameTaken)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name: "internal",
			body: `{"username":"alice","email":"alice@example.com","password":"secret-pass"}`,
			mockSetup: func(svc *mocks.UserInputPort) {
				svc.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, svc, _ := newTestServer(t, nil)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}
			resp, body := do(t, http.MethodPost, srv.URL+"/api/users", tt.body)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				require.Equal(t, tt.wantCode, errorCode(body))
				return
			}
			require.Equal(t, "/api/users/1", resp.Header.Get("Location"))
			require.Equal(t, "alice", body["username"])
			require.Equal(t, "2024-01-02 03:04:05", body["created_at"])
		})
	}
}

func TestUserRoutes_Get(t *testing.T) {
	srv, svc, _ := newTestServer(t, nil)
	svc.EXPECT().GetUser(mock.Anything, int64(1)).Return(sampleUser(), nil)
	svc.EXPECT().GetUser(mock.Anything, int64(2)).Return(nil, utils.ErrUserNotFound)
	svc.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(sampleUser(), nil)
	svc.EXPECT().GetUserByEmail(mock.Anything, "alice@example.com").Return(sampleUser(), nil)

	resp, body := do(t, http.MethodGet, srv.URL+"/api/users/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "alice@example.com", body["email"])

	resp, body = do(t, http.MethodGet, srv.URL+"/api/users/2", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", errorCode(body))

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/users/abc", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/users/username/alice", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/users/email/alice@example.com", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUserRoutes_List(t *testing.T) {
	srv, svc, _ := newTestServer(t, nil)
	want := models.PageRequest{Page: 1, Size: 5, SortBy: "username", Direction: "desc"}
	svc.EXPECT().ListUsers(mock.Anything, want, mock.MatchedBy(func(b *bool) bool { return b != nil && !*b })).
		Return(models.NewPage([]*models.User{sampleUser()}, want, 6), nil)

	resp, body := do(t, http.MethodGet, srv.URL+"/api/users?page=1&size=5&sort=username&direction=desc&active=false", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 6, body["total_items"])
	require.EqualValues(t, 2, body["total_pages"])
	require.Len(t, body["items"], 1)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/users?page=x", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/users?active=maybe", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserRoutes_SearchStatsExists(t *testing.T) {
	srv, svc, _ := newTestServer(t, nil)
	svc.EXPECT().SearchUsers(mock.Anything, "ali", mock.Anything).
		Return(models.NewPage([]*models.User{sampleUser()}, models.PageRequest{Size: 10}, 1), nil)
	svc.EXPECT().UserStats(mock.Anything).Return(&models.UserStats{Total: 3, Active: 2, Inactive: 1}, nil)
	svc.EXPECT().CheckAvailability(mock.Anything, "alice", "").
		Return(&models.Availability{Username: "alice", UsernameExists: true}, nil)
	svc.EXPECT().FindUsersByName(mock.Anything, "Ann", "Lee", true).Return([]*models.User{}, nil)

	resp, body := do(t, http.MethodGet, srv.URL+"/api/users/search?q=ali", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body["items"], 1)

	resp, body = do(t, http.MethodGet, srv.URL+"/api/users/stats", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 3, body["total"])
	require.EqualValues(t, 1, body["inactive"])

	resp, body = do(t, http.MethodGet, srv.URL+"/api/users/exists?username=alice", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["username_exists"])
	require.NotContains(t, body, "email_exists")

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/users/by-name?first_name=Ann&last_name=Lee&active_only=true", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUserRoutes_UpdateActiveDelete(t *testing.T) {
	srv, svc, _ := newTestServer(t, nil)
	inactive := sampleUser()
	inactive.IsActive = false
	svc.EXPECT().UpdateUserActive(mock.Anything, int64(1), false).Return(inactive, nil)
	svc.EXPECT().UpdateUser(mock.Anything, int64(1), mock.MatchedBy(func(in models.UserUpdate) bool {
		return in.FirstName != nil && *in.FirstName == "Al" && in.Email == nil
	})).Return(sampleUser(), nil)
	svc.EXPECT().DeleteUser(mock.Anything, int64(1)).Return(nil)

	resp, body := do(t, http.MethodPatch, srv.URL+"/api/users/1/active", `{"is_active":false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, false, body["is_active"])

	resp, _ = do(t, http.MethodPatch, srv.URL+"/api/users/1/active", `{}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPut, srv.URL+"/api/users/1", `{"first_name":"Al"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, http.MethodPut, srv.URL+"/api/users/1", `{"email":"nope"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodDelete, srv.URL+"/api/users/1", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestAuthRoutes_Login(t *testing.T) {
	srv, svc, tokens := newTestServer(t, nil)
	svc.EXPECT().Authenticate(mock.Anything, "alice", "secret-pass").Return(sampleUser(), nil)
	svc.EXPECT().Authenticate(mock.Anything, "alice", "wrong").Return(nil, utils.ErrInvalidCredentials)

	resp, body := do(t, http.MethodPost, srv.URL+"/api/auth/login", `{"login":"alice","password":"secret-pass"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Bearer", body["token_type"])
	claims, err := tokens.Parse(body["token"].(string))
	require.NoError(t, err)
	require.Equal(t, int64(1), claims.UserID)

	resp, body = do(t, http.MethodPost, srv.URL+"/api/auth/login", `{"login":"alice","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "UNAUTHORIZED", errorCode(body))
}

func TestHealthAndReady(t *testing.T) {
	srv, _, _ := newTestServer(t, pinger{err: errors.New("down")})

	resp, body := do(t, http.MethodGet, srv.URL+"/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "UP", body["status"])

	resp, body = do(t, http.MethodGet, srv.URL+"/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	require.Equal(t, "DOWN", body["status"])

	resp, _ = do(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
