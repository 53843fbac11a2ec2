package models

import (
	"time"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	"github.com/m04kA/SMC-PitchBookingService/pkg/types"
)

// Request модели

// CreatePitchRequest запрос на создание площадки
type CreatePitchRequest struct {
	UserID    string  `json:"-"`
	Name      string  `json:"name"`
	Location  string  `json:"location,omitempty"`
	Capacity  int     `json:"capacity,omitempty"`
	OpenTime  *string `json:"openTime,omitempty"`  // "08:00"
	CloseTime *string `json:"closeTime,omitempty"` // "22:00", "24:00" - полночь
	SortOrder int     `json:"sortOrder,omitempty"`
}

// ToDomainPitch конвертирует request в domain модель
func (r *CreatePitchRequest) ToDomainPitch() (*domain.Pitch, error) {
	pitch := &domain.Pitch{
		Name:      r.Name,
		Location:  r.Location,
		Capacity:  r.Capacity,
		SortOrder: r.SortOrder,
	}

	if r.OpenTime != nil {
		openTime, err := types.NewTimeStringFromString(*r.OpenTime)
		if err != nil {
			return nil, err
		}
		pitch.OpenTime = openTime
	}
	if r.CloseTime != nil {
		closeTime, err := types.NewTimeStringFromString(*r.CloseTime)
		if err != nil {
			return nil, err
		}
		pitch.CloseTime = closeTime
	}

	return pitch, nil
}

// Response модели

// PitchResponse ответ с данными площадки
type PitchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Capacity  int       `json:"capacity,omitempty"`
	OpenTime  string    `json:"openTime,omitempty"`
	CloseTime string    `json:"closeTime,omitempty"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

// PitchListResponse ответ со списком площадок
type PitchListResponse struct {
	Pitches []PitchResponse `json:"pitches"`
}

// Методы конвертации

// FromDomainPitch конвертирует domain модель в DTO
func FromDomainPitch(p *domain.Pitch) *PitchResponse {
	if p == nil {
		return nil
	}

	resp := &PitchResponse{
		ID:        p.ID,
		Name:      p.Name,
		Location:  p.Location,
		Capacity:  p.Capacity,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
	}

	if !p.OpenTime.IsZero() {
		resp.OpenTime = p.OpenTime.String()
	}
	if !p.CloseTime.IsZero() {
		resp.CloseTime = p.CloseTime.String()
	}

	return resp
}

// FromDomainPitchList конвертирует список domain моделей в DTO
func FromDomainPitchList(pitches []*domain.Pitch) *PitchListResponse {
	resp := &PitchListResponse{
		Pitches: make([]PitchResponse, 0, len(pitches)),
	}

	for _, pitch := range pitches {
		if pitchResp := FromDomainPitch(pitch); pitchResp != nil {
			resp.Pitches = append(resp.Pitches, *pitchResp)
		}
	}

	return resp
}
