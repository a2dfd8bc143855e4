package storage

import "time"

// preferencesRowID is the primary key of the single preferences row
const preferencesRowID = 1

// PreferencesModel is the GORM model for the preferences table (one row)
type PreferencesModel struct {
	AutoLaunch           bool   `gorm:"not null;default:false"`
	ConsentGiven         bool   `gorm:"not null;default:false"`
	CreatedAt            time.Time
	ID                   uint   `gorm:"primaryKey"`
	LastPersona          string `gorm:"not null;default:''"`
	NotificationInterval int    `gorm:"not null;default:15;check:notification_interval > 0"`
	UpdatedAt            time.Time
}

// TableName specifies the table name for GORM
func (PreferencesModel) TableName() string { return "preferences" }

// DayLogModel is the GORM model for the day_logs table
type DayLogModel struct {
	CreatedAt          time.Time
	Date               string    `gorm:"not null;index:idx_day_log_date"`
	DistractionSeconds int       `gorm:"not null;default:0"`
	EndedAt            time.Time `gorm:"not null;index:idx_day_log_ended_at"`
	Goals              string    `gorm:"not null;default:''"`
	ID                 string    `gorm:"primaryKey"`
	IdleSeconds        int       `gorm:"not null;default:0"`
	PersonaID          string    `gorm:"not null"`
	Report             string    `gorm:"not null;default:''"`
	StartedAt          time.Time `gorm:"not null"`
	WorkSeconds        int       `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (DayLogModel) TableName() string { return "day_logs" }
