package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/NejeNejeNeje/ropa-sub001/internal/common"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/circles"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/karma"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/swipes"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/users"
)

// Handlers exposes the core operations over JSON.
type Handlers struct {
	swipes  swipes.Service
	circles circles.Service
	karma   karma.Service
	users   users.Service
}

func NewHandlers(swipeService swipes.Service, circleService circles.Service, karmaService karma.Service, userService users.Service) *Handlers {
	return &Handlers{
		swipes:  swipeService,
		circles: circleService,
		karma:   karmaService,
		users:   userService,
	}
}

type registerRequest struct {
	Nickname string `json:"nickname"`
}

func (h *Handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Nickname == "" {
		writeError(w, http.StatusBadRequest, "nickname is required")
		return
	}

	u, err := h.users.Register(r.Context(), req.Nickname)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, u)
}

type swipeRequest struct {
	SwiperID  uint   `json:"swiper_id"`
	ListingID uint   `json:"listing_id"`
	Direction string `json:"direction"`
}

type rsvpRequest struct {
	UserID   uint `json:"user_id"`
	CircleID uint `json:"circle_id"`
}

func (h *Handlers) handleSwipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req swipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.swipes.RecordSwipe(r.Context(), req.SwiperID, req.ListingID, req.Direction)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *Handlers) handleSwipeStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	swiperID, ok := queryID(w, r, "swiper_id")
	if !ok {
		return
	}

	stats, err := h.swipes.Stats(r.Context(), swiperID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handlers) handleRSVP(w http.ResponseWriter, r *http.Request) {
	var req rsvpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var err error
	switch r.Method {
	case http.MethodPost:
		err = h.circles.RSVP(r.Context(), req.UserID, req.CircleID)
	case http.MethodDelete:
		err = h.circles.CancelRSVP(r.Context(), req.UserID, req.CircleID)
	default:
		methodNotAllowed(w, http.MethodPost, http.MethodDelete)
		return
	}

	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handlers) handleKarmaLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	userID, ok := queryID(w, r, "user_id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.karma.Log(r.Context(), userID, limit)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (h *Handlers) handleKarmaStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	userID, ok := queryID(w, r, "user_id")
	if !ok {
		return
	}

	stats, err := h.karma.Stats(r.Context(), userID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// writeDomainError maps core errors to response statuses. Invariant
// violations are bugs and fail loudly as 500s.
func (h *Handlers) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrListingNotFound),
		errors.Is(err, common.ErrCircleNotFound),
		errors.Is(err, common.ErrRSVPNotFound),
		errors.Is(err, common.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrSelfSwipeForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, common.ErrCircleFull),
		errors.Is(err, common.ErrDuplicateRSVP),
		errors.Is(err, common.ErrDuplicateNickname):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, common.ErrInvariantViolation):
		log.WithError(err).WithField("path", r.URL.Path).Error("invariant violation")
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func queryID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := r.URL.Query().Get(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		writeError(w, http.StatusBadRequest, name+" is required")
		return 0, false
	}
	return uint(id), true
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	for _, m := range allowed {
		w.Header().Add("Allow", m)
	}
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
