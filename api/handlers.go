package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	achievementservice "github.com/fairway-links-club/greens-engine/app/modules/achievement/application"
	handicapservice "github.com/fairway-links-club/greens-engine/app/modules/handicap/application"
	leaderboardservice "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/application"
	leaderboarddb "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/infrastructure/repositories"
	outingservice "github.com/fairway-links-club/greens-engine/app/modules/outing/application"
	outingdb "github.com/fairway-links-club/greens-engine/app/modules/outing/infrastructure/repositories"
	scoredb "github.com/fairway-links-club/greens-engine/app/modules/score/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// Services collects the read surfaces the display API exposes.
type Services struct {
	Leaderboard leaderboardservice.Service
	Achievement achievementservice.Service
	Handicap    handicapservice.Service
	Outing      outingservice.Service
	ScoreRepo   scoredb.Repository
	DB          *bun.DB
}

type handlers struct {
	svc    Services
	logger *slog.Logger
}

func (h *handlers) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	regionKey := sharedtypes.RegionKey(chi.URLParam(r, "regionKey"))
	courseID := sharedtypes.CourseID(chi.URLParam(r, "courseID"))

	view, err := h.svc.Leaderboard.GetLeaderboard(r.Context(), regionKey, courseID)
	if err != nil {
		if errors.Is(err, leaderboarddb.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "leaderboard not found")
			return
		}
		h.serverError(w, r, "failed to fetch leaderboard", err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

func (h *handlers) listRegionLeaderboards(w http.ResponseWriter, r *http.Request) {
	regionKey := sharedtypes.RegionKey(chi.URLParam(r, "regionKey"))

	views, err := h.svc.Leaderboard.ListRegionLeaderboards(r.Context(), regionKey)
	if err != nil {
		h.serverError(w, r, "failed to list region leaderboards", err)
		return
	}
	h.respondJSON(w, http.StatusOK, views)
}

func (h *handlers) getAchievements(w http.ResponseWriter, r *http.Request) {
	userID := sharedtypes.UserID(chi.URLParam(r, "userID"))

	view, err := h.svc.Achievement.GetAchievements(r.Context(), userID)
	if err != nil {
		h.serverError(w, r, "failed to fetch achievements", err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

func (h *handlers) getHandicapWindow(w http.ResponseWriter, r *http.Request) {
	userID := sharedtypes.UserID(chi.URLParam(r, "userID"))

	view, err := h.svc.Handicap.GetWindow(r.Context(), userID)
	if err != nil {
		h.serverError(w, r, "failed to fetch handicap window", err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

func (h *handlers) getOutingStandings(w http.ResponseWriter, r *http.Request) {
	outingID := chi.URLParam(r, "outingID")
	groupID := r.URL.Query().Get("group")

	var (
		view *outingservice.StandingsView
		err  error
	)
	if groupID != "" {
		view, err = h.svc.Outing.BuildGroupStandings(r.Context(), outingID, groupID)
	} else {
		view, err = h.svc.Outing.BuildStandings(r.Context(), outingID)
	}
	if err != nil {
		if errors.Is(err, outingdb.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "outing not found")
			return
		}
		h.serverError(w, r, "failed to build standings", err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

// ingestStats reports how many score events the engine has accepted and
// rejected since the audit table was last pruned.
type ingestStats struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

func (h *handlers) getStats(w http.ResponseWriter, r *http.Request) {
	accepted, err := h.svc.ScoreRepo.CountByStatus(r.Context(), h.svc.DB, scoredb.StatusAccepted)
	if err != nil {
		h.serverError(w, r, "failed to count accepted ingestions", err)
		return
	}
	rejected, err := h.svc.ScoreRepo.CountByStatus(r.Context(), h.svc.DB, scoredb.StatusRejected)
	if err != nil {
		h.serverError(w, r, "failed to count rejected ingestions", err)
		return
	}
	h.respondJSON(w, http.StatusOK, ingestStats{Accepted: accepted, Rejected: rejected})
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.svc.DB.PingContext(ctx); err != nil {
		h.respondError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", slog.String("error", err.Error()))
	}
}

func (h *handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

func (h *handlers) serverError(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.logger.ErrorContext(r.Context(), message, slog.String("error", err.Error()))
	h.respondError(w, http.StatusInternalServerError, message)
}
