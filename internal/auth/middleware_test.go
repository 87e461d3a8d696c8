package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recruitd/internal/auth"
	"recruitd/internal/models"
	"recruitd/internal/token"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func newGateRouter(iss *token.Issuer) *mux.Router {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := mux.NewRouter()
	sec := r.PathPrefix("/x").Subrouter()
	sec.Use(auth.Bearer(iss))
	sec.Handle("/gate", auth.RequirePage(models.PageViewJobs)(ok)).Methods(http.MethodGet)
	sec.Handle("/admin", auth.RequireRole(models.RoleAdministrator)(ok)).Methods(http.MethodGet)
	return r
}

func doGet(t *testing.T, r *mux.Router, path, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestBearer_MissingOrInvalidToken(t *testing.T) {
	t.Parallel()

	iss := token.NewIssuer([]byte("k"), time.Hour)
	r := newGateRouter(iss)

	require.Equal(t, http.StatusUnauthorized, doGet(t, r, "/x/gate", "").Code)
	require.Equal(t, http.StatusUnauthorized, doGet(t, r, "/x/gate", "garbage").Code)

	// токен, подписанный другим ключом
	other, err := token.NewIssuer([]byte("other"), time.Hour).Issue("u1", nil, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, doGet(t, r, "/x/gate", other).Code)
}

func TestRequirePage_Gate(t *testing.T) {
	t.Parallel()

	iss := token.NewIssuer([]byte("k"), time.Hour)
	r := newGateRouter(iss)

	withPage, err := iss.Issue("u1", []string{models.RoleRecruiter}, []string{models.PageViewJobs})
	require.NoError(t, err)
	withoutPage, err := iss.Issue("u1", []string{models.RoleRecruiter}, []string{models.PageApplications})
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, doGet(t, r, "/x/gate", withPage).Code)
	// отсутствие страницы в claim'ах — 401, не 403
	require.Equal(t, http.StatusUnauthorized, doGet(t, r, "/x/gate", withoutPage).Code)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	iss := token.NewIssuer([]byte("k"), time.Hour)
	r := newGateRouter(iss)

	admin, err := iss.Issue("u1", []string{models.RoleAdministrator}, nil)
	require.NoError(t, err)
	recruiter, err := iss.Issue("u2", []string{models.RoleRecruiter}, nil)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, doGet(t, r, "/x/admin", admin).Code)
	require.Equal(t, http.StatusForbidden, doGet(t, r, "/x/admin", recruiter).Code)
}
