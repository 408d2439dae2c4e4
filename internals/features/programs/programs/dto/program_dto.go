// file: internals/features/programs/programs/dto/program_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	model "skbudget_backend/internals/features/programs/programs/model"
)

const dateLayout = "2006-01-02"

/* =========================
   Requests
   ========================= */

type CreateProgramRequest struct {
	Code        string  `json:"code" validate:"required,min=1,max=30"`
	Name        string  `json:"name" validate:"required,min=1,max=160"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type UpdateProgramRequest struct {
	Code        *string `json:"code,omitempty" validate:"omitempty,min=1,max=30"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=160"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ParseDate reads a YYYY-MM-DD value; empty string clears the date.
func ParseDate(raw *string, label string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+label+", expected YYYY-MM-DD")
	}
	return &t, nil
}

// ValidateDateRange rejects a start date after the end date.
func ValidateDateRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return fiber.NewError(fiber.StatusBadRequest, "Start date cannot be after end date")
	}
	return nil
}

/* =========================
   Responses
   ========================= */

type ProgramDocumentResponse struct {
	ID        int64     `json:"id"`
	ProgramID int64     `json:"programId"`
	Title     string    `json:"title"`
	FileURL   string    `json:"fileUrl"`
	FileType  string    `json:"fileType"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProgramResponse struct {
	ID          int64                     `json:"id"`
	Code        string                    `json:"code"`
	Name        string                    `json:"name"`
	Description *string                   `json:"description,omitempty"`
	Location    *string                   `json:"location,omitempty"`
	StartDate   *string                   `json:"startDate,omitempty"`
	EndDate     *string                   `json:"endDate,omitempty"`
	IsActive    bool                      `json:"isActive"`
	Documents   []ProgramDocumentResponse `json:"documents,omitempty"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func FromDocumentModel(m *model.ProgramDocument) ProgramDocumentResponse {
	return ProgramDocumentResponse{
		ID:        m.ProgramDocumentID,
		ProgramID: m.ProgramDocumentProgramID,
		Title:     m.ProgramDocumentTitle,
		FileURL:   m.ProgramDocumentFileURL,
		FileType:  m.ProgramDocumentFileType,
		CreatedAt: m.ProgramDocumentCreatedAt,
	}
}

func FromDocumentModels(items []model.ProgramDocument) []ProgramDocumentResponse {
	out := make([]ProgramDocumentResponse, 0, len(items))
	for i := range items {
		out = append(out, FromDocumentModel(&items[i]))
	}
	return out
}

func FromModel(m *model.Program, documents []model.ProgramDocument) ProgramResponse {
	return ProgramResponse{
		ID:          m.ProgramID,
		Code:        m.ProgramCode,
		Name:        m.ProgramName,
		Description: m.ProgramDescription,
		Location:    m.ProgramLocation,
		StartDate:   formatDate(m.ProgramStartDate),
		EndDate:     formatDate(m.ProgramEndDate),
		IsActive:    m.ProgramIsActive,
		Documents:   FromDocumentModels(documents),
		CreatedAt:   m.ProgramCreatedAt,
		UpdatedAt:   m.ProgramUpdatedAt,
	}
}

func FromModels(items []model.Program) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i], nil))
	}
	return out
}
