package auth_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"recruitd/internal/auth"
	"recruitd/internal/models"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(f *fixture) *mux.Router {
	r := mux.NewRouter()
	auth.RegisterRoutes(r, auth.NewHandler(f.svc))
	return r
}

func registerBody(f *fixture, username, email, password string, roles ...string) string {
	ids := make([]string, 0, len(roles))
	for _, role := range roles {
		ids = append(ids, fmt.Sprintf("%d", f.roles[role].ID))
	}
	return fmt.Sprintf(`{"username":%q,"email":%q,"password":%q,"role_ids":[%s]}`,
		username, email, password, strings.Join(ids, ","))
}

func TestHTTP_RegisterAndLogin(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	r := newAuthRouter(f)

	// регистрация
	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(registerBody(f, "alice", "alice@x.com", "pw1", models.RoleRecruiter)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "alice", res.User.Username)
	require.NotEmpty(t, res.Token)

	// повторная регистрация — 400 с тем же сообщением
	req = httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(registerBody(f, "alice", "alice@x.com", "pw1", models.RoleRecruiter)))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var problem struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Equal(t, "User Already exists. Please Log in", problem.Detail)

	// логин с неверным паролем
	q := url.Values{"username": {"alice"}, "password": {"wrongpw"}}
	req = httptest.NewRequest(http.MethodGet, "/auth/login?"+q.Encode(), nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Equal(t, "Incorrect Username or Password", problem.Detail)

	// логин с верными данными
	q = url.Values{"username": {"alice"}, "password": {"pw1"}}
	req = httptest.NewRequest(http.MethodGet, "/auth/login?"+q.Encode(), nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
}

func TestHTTP_RegisterBadBody(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	r := newAuthRouter(f)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
