package storage

import (
	"focusboss/internal/domain"
)

// preferencesModelToDomain converts a PreferencesModel (GORM) to domain.Preferences
func preferencesModelToDomain(m PreferencesModel) domain.Preferences {
	return domain.Preferences{
		AutoLaunch:                  m.AutoLaunch,
		ConsentGiven:                m.ConsentGiven,
		LastPersona:                 m.LastPersona,
		NotificationIntervalMinutes: m.NotificationInterval,
	}
}

// dayLogModelToDomain converts a DayLogModel (GORM) to domain.DayLogEntry
func dayLogModelToDomain(m DayLogModel) domain.DayLogEntry {
	return domain.DayLogEntry{
		Date:            m.Date,
		DistractionTime: m.DistractionSeconds,
		EndedAt:         m.EndedAt,
		Goals:           m.Goals,
		ID:              m.ID,
		IdleTime:        m.IdleSeconds,
		PersonaID:       m.PersonaID,
		Report:          m.Report,
		StartedAt:       m.StartedAt,
		WorkTime:        m.WorkSeconds,
	}
}

// domainToDayLogModel converts a domain.DayLogEntry to DayLogModel (GORM)
func domainToDayLogModel(e domain.DayLogEntry) DayLogModel {
	return DayLogModel{
		Date:               e.Date,
		DistractionSeconds: e.DistractionTime,
		EndedAt:            e.EndedAt.UTC(),
		Goals:              e.Goals,
		ID:                 e.ID,
		IdleSeconds:        e.IdleTime,
		PersonaID:          e.PersonaID,
		Report:             e.Report,
		StartedAt:          e.StartedAt.UTC(),
		WorkSeconds:        e.WorkTime,
	}
}
