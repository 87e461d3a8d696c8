package jobs

import (
	"net/http"

	"recruitd/internal/auth"
	"recruitd/internal/models"
	"recruitd/internal/token"

	"github.com/gorilla/mux"
)

func chain(h http.Handler, mws ...mux.MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func RegisterRoutes(r *mux.Router, h *Handler, iss *token.Issuer) {
	// публичный список вакансий
	r.HandleFunc("/jobs", h.List).Methods(http.MethodGet)

	sec := r.PathPrefix("/jobs").Subrouter()
	sec.Use(auth.Bearer(iss))

	staff := auth.RequireRole(models.RoleAdministrator, models.RoleRecruiter)

	sec.Handle("/recruiters", chain(http.HandlerFunc(h.Recruiters),
		auth.RequireRole(models.RoleAdministrator),
		auth.RequirePage(models.PageViewJobs))).Methods(http.MethodGet)

	sec.Handle("/mine", chain(http.HandlerFunc(h.Mine),
		staff, auth.RequirePage(models.PageViewJobs))).Methods(http.MethodGet)

	sec.Handle("", chain(http.HandlerFunc(h.Create),
		staff, auth.RequirePage(models.PageAddJob))).Methods(http.MethodPost)

	sec.Handle("/{id:[0-9]+}", chain(http.HandlerFunc(h.Get),
		staff)).Methods(http.MethodGet)

	sec.Handle("/{id:[0-9]+}", chain(http.HandlerFunc(h.Update),
		staff, auth.RequirePage(models.PageAddJob))).Methods(http.MethodPut)
}
