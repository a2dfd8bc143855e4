package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"focusboss/internal/domain"
	"focusboss/internal/logging"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: s.version})
}

func (s *Server) handleListPersonas(w http.ResponseWriter, r *http.Request) {
	list := s.catalog.List()
	resp := make([]personaResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, personaResponse{Icon: p.Icon, ID: p.ID, Name: p.DisplayName()})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPrefs(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.prefs.GetPreferences(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPrefsResponse(prefs))
}

func (s *Server) handleSetInterval(w http.ResponseWriter, r *http.Request) {
	var req intervalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No data provided"})
		return
	}
	if err := s.prefs.SetNotificationInterval(r.Context(), req.Minutes); err != nil {
		writeError(w, err)
		return
	}
	s.handleGetPrefs(w, r)
}

func (s *Server) handleConsent(w http.ResponseWriter, r *http.Request) {
	if err := s.prefs.GiveConsent(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to save preferences"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "consent recorded"})
}

func (s *Server) handleStartDay(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No data provided"})
		return
	}

	if _, err := s.tracker.StartDay(r.Context(), req.Persona, req.Goals); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, startResponse{Status: "started"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	result, err := s.tracker.PollStatus(r.Context(), s.clock.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	work, distraction, idle := result.Totals.Seconds()
	writeJSON(w, http.StatusOK, statusResponse{
		DistractionTime: distraction,
		IdleTime:        idle,
		Message:         result.Message,
		Nudge:           result.NudgeKind,
		WorkTime:        work,
	})
}

func (s *Server) handleEndDay(w http.ResponseWriter, r *http.Request) {
	report, err := s.tracker.EndDay(r.Context(), s.clock.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	work, distraction, idle := report.Totals.Seconds()
	writeJSON(w, http.StatusOK, endResponse{
		DistractionTime: distraction,
		IdleTime:        idle,
		PersonaReport:   report.Report,
		WorkTime:        work,
	})
}

func (s *Server) handleCurrentDay(w http.ResponseWriter, r *http.Request) {
	snap, err := s.tracker.Snapshot()
	if errors.Is(err, domain.ErrNoActiveSession) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "No active session"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	work, distraction, idle := snap.Totals.Seconds()
	writeJSON(w, http.StatusOK, dayResponse{
		DistractionTime: distraction,
		Goals:           snap.Goals,
		IdleTime:        idle,
		LastCheck:       snap.LastCheck,
		PersonaID:       snap.PersonaID,
		PersonaName:     snap.PersonaName,
		StartedAt:       snap.StartedAt,
		WorkTime:        work,
	})
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := s.history.ListDays(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]dayLogResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dayLogResponse{
			Date:            e.Date,
			DistractionTime: e.DistractionTime,
			EndedAt:         e.EndedAt,
			Goals:           e.Goals,
			ID:              e.ID,
			IdleTime:        e.IdleTime,
			PersonaID:       e.PersonaID,
			Report:          e.Report,
			StartedAt:       e.StartedAt,
			WorkTime:        e.WorkTime,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toPrefsResponse(p *domain.Preferences) prefsResponse {
	return prefsResponse{
		ConsentGiven:         p.ConsentGiven,
		LastPersona:          p.LastPersona,
		NotificationInterval: p.NotificationIntervalMinutes,
	}
}

// writeError maps domain errors to the status codes the frontend expects
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoActiveSession):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No active session"})
	case errors.Is(err, domain.ErrSessionAlreadyActive):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Day already started"})
	case errors.Is(err, domain.ErrUnknownPersona):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid persona"})
	case errors.Is(err, domain.ErrConsentRequired):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "Consent required"})
	case errors.Is(err, domain.ErrStateConflict), errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logging.Logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Warn("Failed to write response", "error", err)
	}
}
