package get_available_slots

import (
	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TestDriveService/internal/usecase/get_available_slots"
)

type SlotResponse struct {
	ID        string `json:"id"`    // "09:00-10:00"
	Label     string `json:"label"` // "09:00 - 10:00"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type AvailableSlotsResponse struct {
	CarID int64          `json:"carId"`
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		CarID: resp.CarID,
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			ID:        s.ID,
			Label:     s.Label,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return out
}
