package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/internal/service/problem"
)

// problemService defines the minimal interface needed by ProblemHandler.
type problemService interface {
	Create(ctx context.Context, input problem.CreateInput) (*domain.Problem, error)
	Get(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error)
	List(ctx context.Context, input problem.ListInput) ([]*domain.Problem, error)
	Update(ctx context.Context, input problem.UpdateInput) (*domain.Problem, error)
	Archive(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error)
	Unarchive(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error)
	Delete(ctx context.Context, problemID uuid.UUID) error
}

// ProblemHandler serves problem REST endpoints.
type ProblemHandler struct {
	svc problemService
	log *slog.Logger
}

// NewProblemHandler creates a ProblemHandler.
func NewProblemHandler(svc problemService, logger *slog.Logger) *ProblemHandler {
	return &ProblemHandler{svc: svc, log: logger.With("handler", "problem")}
}

type createProblemRequest struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags"`
	CompanyTags []string `json:"companyTags"`
	Notes       string   `json:"notes"`
}

type updateProblemRequest struct {
	Title       *string  `json:"title"`
	Link        *string  `json:"link"`
	Difficulty  *string  `json:"difficulty"`
	Tags        []string `json:"tags"`
	CompanyTags []string `json:"companyTags"`
	Notes       *string  `json:"notes"`
}

type problemResponse struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Link                 string     `json:"link,omitempty"`
	Difficulty           string     `json:"difficulty"`
	Tags                 []string   `json:"tags"`
	CompanyTags          []string   `json:"companyTags"`
	Status               string     `json:"status"`
	Archived             bool       `json:"archived"`
	Notes                string     `json:"notes,omitempty"`
	RevisionIntervalDays int        `json:"revisionIntervalDays"`
	LastRevisedAt        *time.Time `json:"lastRevisedAt,omitempty"`
	NextRevisionAt       time.Time  `json:"nextRevisionAt"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// Create handles POST /api/v1/problems.
func (h *ProblemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Create(r.Context(), problem.CreateInput{
		Title:       req.Title,
		Link:        req.Link,
		Difficulty:  domain.Difficulty(req.Difficulty),
		Tags:        req.Tags,
		CompanyTags: req.CompanyTags,
		Notes:       req.Notes,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProblemResponse(p))
}

// Get handles GET /api/v1/problems/{id}.
func (h *ProblemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProblemResponse(p))
}

// List handles GET /api/v1/problems.
// Query params: difficulty, status, tag, company, includeArchived, limit, offset.
func (h *ProblemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := problem.ListInput{
		Difficulty:      domain.Difficulty(q.Get("difficulty")),
		Status:          domain.ProblemStatus(q.Get("status")),
		Tag:             q.Get("tag"),
		CompanyTag:      q.Get("company"),
		IncludeArchived: q.Get("includeArchived") == "true",
	}
	if v := q.Get("limit"); v != "" {
		input.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		input.Offset, _ = strconv.Atoi(v)
	}

	problems, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]problemResponse, 0, len(problems))
	for _, p := range problems {
		items = append(items, toProblemResponse(p))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Update handles PATCH /api/v1/problems/{id}.
func (h *ProblemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req updateProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := problem.UpdateInput{
		ProblemID:   id,
		Title:       req.Title,
		Link:        req.Link,
		Tags:        req.Tags,
		CompanyTags: req.CompanyTags,
		Notes:       req.Notes,
	}
	if req.Difficulty != nil {
		d := domain.Difficulty(*req.Difficulty)
		input.Difficulty = &d
	}

	p, err := h.svc.Update(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProblemResponse(p))
}

// Archive handles POST /api/v1/problems/{id}/archive.
func (h *ProblemHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Archive(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProblemResponse(p))
}

// Unarchive handles POST /api/v1/problems/{id}/unarchive.
func (h *ProblemHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Unarchive(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProblemResponse(p))
}

// Delete handles DELETE /api/v1/problems/{id}.
func (h *ProblemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProblemHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid problem id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProblemHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toProblemResponse(p *domain.Problem) problemResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	companies := p.CompanyTags
	if companies == nil {
		companies = []string{}
	}
	return problemResponse{
		ID:                   p.ID.String(),
		Title:                p.Title,
		Link:                 p.Link,
		Difficulty:           p.Difficulty.String(),
		Tags:                 tags,
		CompanyTags:          companies,
		Status:               p.Status.String(),
		Archived:             p.Archived,
		Notes:                p.Notes,
		RevisionIntervalDays: p.RevisionIntervalDays,
		LastRevisedAt:        p.LastRevisedAt,
		NextRevisionAt:       p.NextRevisionAt,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
