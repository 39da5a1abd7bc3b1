package task

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
)

// CreateInput holds the parameters for creating a task.
type CreateInput struct {
	Title         string
	TargetMinutes int
	WeekStart     string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = appendTitleErrors(errs, i.Title)
	errs = appendTargetErrors(errs, i.TargetMinutes)
	if !domain.ValidWeekStart(i.WeekStart) {
		errs = append(errs, domain.FieldError{Field: "weekStart", Message: "must be a date in YYYY-MM-DD format"})
	}
	return domain.NewValidationErrors(errs)
}

// PatchInput holds the fields to change; nil means keep.
type PatchInput struct {
	Title         *string
	TargetMinutes *int
}

// Validate checks only the provided fields.
func (i PatchInput) Validate() error {
	var errs []domain.FieldError
	if i.Title != nil {
		errs = appendTitleErrors(errs, *i.Title)
	}
	if i.TargetMinutes != nil {
		errs = appendTargetErrors(errs, *i.TargetMinutes)
	}
	return domain.NewValidationErrors(errs)
}

// LogInput holds a signed minute delta.
type LogInput struct {
	Minutes *int
}

// Validate checks all fields and collects all errors.
func (i LogInput) Validate() error {
	if i.Minutes == nil {
		return domain.NewValidationError("minutes", "required")
	}
	if *i.Minutes < -domain.LogMinutesLimit || *i.Minutes > domain.LogMinutesLimit {
		return domain.NewValidationError("minutes",
			fmt.Sprintf("must be between %d and %d", -domain.LogMinutesLimit, domain.LogMinutesLimit))
	}
	return nil
}

func appendTitleErrors(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case utf8.RuneCountInString(title) > domain.TitleMaxLen:
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", domain.TitleMaxLen)})
	}
	return errs
}

func appendTargetErrors(errs []domain.FieldError, target int) []domain.FieldError {
	if target < domain.TargetMinutesMin || target > domain.TargetMinutesMax {
		errs = append(errs, domain.FieldError{
			Field:   "targetMinutes",
			Message: fmt.Sprintf("must be between %d and %d", domain.TargetMinutesMin, domain.TargetMinutesMax),
		})
	}
	return errs
}
