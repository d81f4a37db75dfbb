package projects

import (
	"eventdesk/internal/domain"
	"eventdesk/internal/planning"
)

type UsageEntryInput struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type ProjectRequest struct {
	Name           string            `json:"name" binding:"required"`
	Client         string            `json:"client"`
	Location       string            `json:"location"`
	Status         string            `json:"status"`
	StartDate      string            `json:"start_date" binding:"required"`
	EndDate        string            `json:"end_date" binding:"required"`
	Revenue        float64           `json:"revenue"`
	Cost           float64           `json:"cost"`
	Quote          float64           `json:"quote"`
	EquipmentsUsed []UsageEntryInput `json:"equipments_used"`
}

type ProjectResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Client         string               `json:"client"`
	Location       string               `json:"location"`
	Status         domain.ProjectStatus `json:"status"`
	StartDate      string               `json:"start_date"`
	EndDate        string               `json:"end_date"`
	Revenue        float64              `json:"revenue"`
	Cost           float64              `json:"cost"`
	Quote          float64              `json:"quote"`
	Profit         float64              `json:"profit"`
	EquipmentsUsed []domain.UsageEntry  `json:"equipments_used"`
}

func toResponse(p domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Client:         p.Client,
		Location:       p.Location,
		Status:         p.Status,
		Revenue:        p.Revenue,
		Cost:           p.Cost,
		Quote:          p.Quote,
		Profit:         planning.Profit(p),
		EquipmentsUsed: p.EquipmentsUsed,
	}
	if p.StartDate != nil {
		resp.StartDate = planning.DayKey(*p.StartDate)
	}
	if p.EndDate != nil {
		resp.EndDate = planning.DayKey(*p.EndDate)
	}
	if resp.EquipmentsUsed == nil {
		resp.EquipmentsUsed = []domain.UsageEntry{}
	}
	return resp
}

func toResponseList(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toResponse(p))
	}
	return out
}
