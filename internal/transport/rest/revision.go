package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/domain"
	"github.com/sambangiadharsh/algomind/internal/service/revision"
)

// revisionService defines the minimal interface needed by RevisionHandler.
type revisionService interface {
	GetTodaysSession(ctx context.Context) (*revision.SessionResult, error)
	MarkReviewed(ctx context.Context, input revision.MarkReviewedInput) (*domain.SessionEntry, error)
	RefreshIfNeeded(ctx context.Context) revision.RefreshOutcome
	GetStreak(ctx context.Context) (*domain.StreakSummary, error)
	GetSettings(ctx context.Context) (*domain.RevisionSettings, error)
	UpdateSettings(ctx context.Context, input revision.UpdateSettingsInput) (*domain.RevisionSettings, error)
}

// RevisionHandler serves revision REST endpoints.
type RevisionHandler struct {
	svc revisionService
	log *slog.Logger
}

// NewRevisionHandler creates a RevisionHandler.
func NewRevisionHandler(svc revisionService, logger *slog.Logger) *RevisionHandler {
	return &RevisionHandler{svc: svc, log: logger.With("handler", "revision")}
}

type entryResponse struct {
	ProblemID  string     `json:"problemId"`
	Difficulty string     `json:"difficulty"`
	Status     string     `json:"status"`
	Confidence *string    `json:"confidence,omitempty"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
}

type countsResponse struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

type sessionResponse struct {
	ID        string          `json:"id"`
	DayKey    string          `json:"dayKey"`
	Entries   []entryResponse `json:"entries"`
	Complete  bool            `json:"complete"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type todayResponse struct {
	Session   *sessionResponse `json:"session"`
	Requested countsResponse   `json:"requested"`
	Actual    countsResponse   `json:"actual"`
}

type reviewRequest struct {
	SessionID  string `json:"sessionId"`
	ProblemID  string `json:"problemId"`
	Confidence string `json:"confidence"`
}

type refreshResponse struct {
	Refreshed  bool `json:"refreshed"`
	AddedCount int  `json:"addedCount"`
}

type streakResponse struct {
	CurrentStreak     int      `json:"currentStreak"`
	LongestStreak     int      `json:"longestStreak"`
	CompletedDates    []string `json:"completedDates"`
	AllSessionDates   []string `json:"allSessionDates"`
	TotalSessions     int      `json:"totalSessions"`
	TotalRevisionDays int      `json:"totalRevisionDays"`
}

type settingsResponse struct {
	EasyCount   int      `json:"easyCount"`
	MediumCount int      `json:"mediumCount"`
	HardCount   int      `json:"hardCount"`
	Mode        string   `json:"mode"`
	Topics      []string `json:"topics"`
	Companies   []string `json:"companies"`
}

type updateSettingsRequest struct {
	EasyCount   *int     `json:"easyCount"`
	MediumCount *int     `json:"mediumCount"`
	HardCount   *int     `json:"hardCount"`
	Mode        *string  `json:"mode"`
	Topics      []string `json:"topics"`
	Companies   []string `json:"companies"`
}

// Today handles GET /api/v1/revision/today.
// It returns the existing session for today, builds one if none exists,
// or an empty-day response when nothing is eligible.
func (h *RevisionHandler) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetTodaysSession(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodayResponse(result))
}

// Review handles POST /api/v1/revision/review.
func (h *RevisionHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Unparseable IDs flow through as uuid.Nil; input validation reports
	// them as missing fields.
	sessionID, _ := uuid.Parse(req.SessionID)
	problemID, _ := uuid.Parse(req.ProblemID)

	entry, err := h.svc.MarkReviewed(r.Context(), revision.MarkReviewedInput{
		SessionID:  sessionID,
		ProblemID:  problemID,
		Confidence: domain.Confidence(req.Confidence),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(*entry))
}

// Refresh handles POST /api/v1/revision/refresh.
// It tops up today's open session with newly eligible problems.
func (h *RevisionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	outcome := h.svc.RefreshIfNeeded(r.Context())
	writeJSON(w, http.StatusOK, refreshResponse{
		Refreshed:  outcome.Refreshed,
		AddedCount: outcome.AddedCount,
	})
}

// Streak handles GET /api/v1/revision/streak.
func (h *RevisionHandler) Streak(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetStreak(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStreakResponse(summary))
}

// GetSettings handles GET /api/v1/revision/settings.
func (h *RevisionHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.GetSettings(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}

// UpdateSettings handles PUT /api/v1/revision/settings.
func (h *RevisionHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := revision.UpdateSettingsInput{
		EasyCount:   req.EasyCount,
		MediumCount: req.MediumCount,
		HardCount:   req.HardCount,
		Topics:      req.Topics,
		Companies:   req.Companies,
	}
	if req.Mode != nil {
		m := domain.RevisionMode(*req.Mode)
		input.Mode = &m
	}

	settings, err := h.svc.UpdateSettings(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}

func (h *RevisionHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict, retry the request")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toTodayResponse(result *revision.SessionResult) todayResponse {
	resp := todayResponse{
		Requested: countsResponse(result.Requested),
		Actual:    countsResponse(result.Actual),
	}
	if result.Session != nil {
		s := toSessionResponse(result.Session)
		resp.Session = &s
	}
	return resp
}

func toSessionResponse(s *domain.RevisionSession) sessionResponse {
	entries := make([]entryResponse, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, toEntryResponse(e))
	}
	return sessionResponse{
		ID:        s.ID.String(),
		DayKey:    s.DayKey,
		Entries:   entries,
		Complete:  s.IsComplete(),
		Version:   s.Version,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toEntryResponse(e domain.SessionEntry) entryResponse {
	resp := entryResponse{
		ProblemID:  e.ProblemID.String(),
		Difficulty: e.Difficulty.String(),
		Status:     e.Status.String(),
		ReviewedAt: e.ReviewedAt,
	}
	if e.Confidence != nil {
		c := e.Confidence.String()
		resp.Confidence = &c
	}
	return resp
}

func toStreakResponse(s *domain.StreakSummary) streakResponse {
	completed := s.CompletedDates
	if completed == nil {
		completed = []string{}
	}
	all := s.AllSessionDates
	if all == nil {
		all = []string{}
	}
	return streakResponse{
		CurrentStreak:     s.CurrentStreak,
		LongestStreak:     s.LongestStreak,
		CompletedDates:    completed,
		AllSessionDates:   all,
		TotalSessions:     s.TotalSessions,
		TotalRevisionDays: s.TotalRevisionDays,
	}
}

func toSettingsResponse(s *domain.RevisionSettings) settingsResponse {
	topics := s.Topics
	if topics == nil {
		topics = []string{}
	}
	companies := s.Companies
	if companies == nil {
		companies = []string{}
	}
	return settingsResponse{
		EasyCount:   s.EasyCount,
		MediumCount: s.MediumCount,
		HardCount:   s.HardCount,
		Mode:        s.Mode.String(),
		Topics:      topics,
		Companies:   companies,
	}
}
