package models

import (
	"strings"
	"time"
)

// IncidentStatus - статус инцидента с точки зрения оператора
type IncidentStatus string

const (
	StatusPending  IncidentStatus = "pending"
	StatusAccepted IncidentStatus = "accepted"
	StatusRejected IncidentStatus = "rejected"
)

// Severity - степень тяжести ДТП
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// ParseSeverity приводит значение бэкенда к одному из известных уровней.
// Неизвестные значения возвращаются без изменений.
func ParseSeverity(raw string) Severity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return SeverityLow
	case "medium":
		return SeverityMedium
	case "high":
		return SeverityHigh
	}
	return Severity(raw)
}

// Incident - инцидент, назначенный оператору полиции
type Incident struct {
	ID          int64          `json:"id"`
	Address     string         `json:"address"`
	Severity    Severity       `json:"severity"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
	EvidenceRef string         `json:"evidence_ref"`
	Status      IncidentStatus `json:"status"`
}

// EvidenceIsVideo сообщает, является ли доказательство видеозаписью
func (i *Incident) EvidenceIsVideo() bool {
	return i.EvidenceRef != "" && (strings.HasSuffix(i.EvidenceRef, ".mp4") || strings.Contains(i.EvidenceRef, "video"))
}

// Clone возвращает копию инцидента
func (i *Incident) Clone() *Incident {
	c := *i
	return &c
}
