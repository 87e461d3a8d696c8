package jobs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"recruitd/internal/auth"
	"recruitd/internal/logs"
	"recruitd/internal/models"
	"recruitd/internal/repo"

	"github.com/gorilla/mux"
	"gorm.io/datatypes"
)

type Handler struct {
	store *repo.JobStore
}

func New(store *repo.JobStore) *Handler { return &Handler{store: store} }

type jobInput struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	SalaryMin   uint           `json:"salary_min"`
	SalaryMax   uint           `json:"salary_max"`
	Details     datatypes.JSON `json:"details"`
}

// GET /jobs — публичный список активных вакансий.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, jobs)
}

// GET /jobs/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	j, err := h.store.Get(r.Context(), uint(id))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, j)
}

// GET /jobs/mine — вакансии текущего пользователя.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	pr, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token", nil)
		return
	}
	jobs, err := h.store.ListByUser(r.Context(), pr.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, jobs)
}

// GET /jobs/recruiters
func (h *Handler) Recruiters(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.Recruiters(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, users)
}

// POST /jobs
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	pr, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token", nil)
		return
	}
	var in jobInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", "invalid request body", nil)
		return
	}
	if in.Title == "" {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", "title is required", nil)
		return
	}
	j := &models.Job{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		SalaryMin:   in.SalaryMin,
		SalaryMax:   in.SalaryMax,
		Details:     in.Details,
		PostedBy:    pr.UserID,
	}
	if err := h.store.Create(r.Context(), j); err != nil {
		h.fail(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, j)
}

// PUT /jobs/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	j, err := h.store.Get(r.Context(), uint(id))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in jobInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", "invalid request body", nil)
		return
	}
	if in.Title != "" {
		j.Title = in.Title
	}
	j.Description = in.Description
	j.Location = in.Location
	j.SalaryMin = in.SalaryMin
	j.SalaryMax = in.SalaryMax
	if in.Details != nil {
		j.Details = in.Details
	}
	if err := h.store.Update(r.Context(), j); err != nil {
		h.fail(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, j)
}

// Отказы слоя вакансий отдаются как 400 с текстом — как и в auth.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, repo.ErrJobNotFound) {
		logs.Logger.Errorf("jobs: %s %s: %v", r.Method, r.URL.Path, err)
	}
	models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
}
