package models

import "github.com/m04kA/SMC-TestDriveService/internal/domain"

// WorkingHours schedule of one weekday
type WorkingHours struct {
	DayOfWeek string `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`  // "09:00"
	CloseTime string `json:"closeTime,omitempty"` // "18:00"
}

// WorkingHoursResponse weekly schedule of the dealership
type WorkingHoursResponse struct {
	DealershipName string         `json:"dealershipName"`
	WorkingHours   []WorkingHours `json:"workingHours"`
}

// UpdateWorkingHoursRequest full replacement of the weekly schedule
type UpdateWorkingHoursRequest struct {
	UserID       int64          `json:"userId"`
	WorkingHours []WorkingHours `json:"workingHours"`
}

// FromDomainWorkingHours converts domain entries to DTOs
func FromDomainWorkingHours(name string, entries []domain.WorkingHoursEntry) *WorkingHoursResponse {
	resp := &WorkingHoursResponse{
		DealershipName: name,
		WorkingHours:   make([]WorkingHours, 0, len(entries)),
	}

	for _, e := range entries {
		resp.WorkingHours = append(resp.WorkingHours, WorkingHours{
			DayOfWeek: string(e.DayOfWeek),
			IsOpen:    e.IsOpen,
			OpenTime:  e.OpenTime,
			CloseTime: e.CloseTime,
		})
	}

	return resp
}
