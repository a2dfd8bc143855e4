package server

import (
	"time"

	"focusboss/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type personaResponse struct {
	Icon string `json:"icon"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type prefsResponse struct {
	ConsentGiven         bool   `json:"consent_given"`
	LastPersona          string `json:"last_persona"`
	NotificationInterval int    `json:"notification_interval"`
}

type intervalRequest struct {
	Minutes int `json:"minutes"`
}

type startRequest struct {
	Goals   string `json:"goals"`
	Persona string `json:"persona"`
}

type startResponse struct {
	InitialMessage *string `json:"initial_message"`
	Status         string  `json:"status"`
}

type statusResponse struct {
	DistractionTime int              `json:"distraction_time"`
	IdleTime        int              `json:"idle_time"`
	Message         string           `json:"message"`
	Nudge           domain.NudgeKind `json:"nudge,omitempty"`
	WorkTime        int              `json:"work_time"`
}

type endResponse struct {
	DistractionTime int    `json:"distraction_time"`
	IdleTime        int    `json:"idle_time"`
	PersonaReport   string `json:"persona_report"`
	WorkTime        int    `json:"work_time"`
}

type dayResponse struct {
	DistractionTime int       `json:"distraction_time"`
	Goals           string    `json:"goals"`
	IdleTime        int       `json:"idle_time"`
	LastCheck       time.Time `json:"last_check"`
	PersonaID       string    `json:"persona_id"`
	PersonaName     string    `json:"persona_name"`
	StartedAt       time.Time `json:"started_at"`
	WorkTime        int       `json:"work_time"`
}

type dayLogResponse struct {
	Date            string    `json:"date"`
	DistractionTime int       `json:"distraction_time"`
	EndedAt         time.Time `json:"ended_at"`
	Goals           string    `json:"goals"`
	ID              string    `json:"id"`
	IdleTime        int       `json:"idle_time"`
	PersonaID       string    `json:"persona_id"`
	Report          string    `json:"report"`
	StartedAt       time.Time `json:"started_at"`
	WorkTime        int       `json:"work_time"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
