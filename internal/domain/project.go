package domain

import "time"

type ProjectStatus string

const (
	StatusPlanning  ProjectStatus = "planning"
	StatusConfirmed ProjectStatus = "confirmed"
	StatusExecuting ProjectStatus = "executing"
	StatusClosed    ProjectStatus = "closed"
	StatusLost      ProjectStatus = "lost"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPlanning, StatusConfirmed, StatusExecuting, StatusClosed, StatusLost:
		return true
	}
	return false
}

// UsageEntry is a point-in-time copy of an equipment name and the quantity a
// project needs. It references equipment by name, not by id: the named record
// may be renamed or deleted later and the entry stays exactly as entered.
type UsageEntry struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type Project struct {
	ID             string        `json:"id" gorm:"primaryKey;size:36"`
	Name           string        `json:"name"`
	Client         string        `json:"client"`
	Location       string        `json:"location"`
	Status         ProjectStatus `json:"status"`
	StartDate      *time.Time    `json:"start_date"`
	EndDate        *time.Time    `json:"end_date"`
	Revenue        float64       `json:"revenue"`
	Cost           float64       `json:"cost"`
	Quote          float64       `json:"quote"`
	EquipmentsUsed []UsageEntry  `json:"equipments_used" gorm:"serializer:json"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
