package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"recruitd/internal/logs"
	"recruitd/internal/models"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", "invalid request body", nil)
		return
	}
	res, err := h.svc.Register(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, res)
}

// GET /auth/login?username=...&password=...
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.svc.Login(r.Context(), q.Get("username"), q.Get("password"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, res)
}

// Вся таксономия отказов сервиса (валидация/конфликт/креденшелы/токен)
// сплющивается в единый 400 с текстом сообщения — контракт исходного API.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var se *Error
	if errors.As(err, &se) {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", se.Message, nil)
		return
	}
	logs.Logger.Errorf("auth: %s %s: %v", r.Method, r.URL.Path, err)
	models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
}
