package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"dayheat/internal/adapter/http/dto"
	"dayheat/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	if strings.TrimSpace(req.Date) == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	date, err := time.ParseInLocation(domain.DateLayout, req.Date, time.UTC)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	// Blank descriptions are stored as NULL, not empty strings.
	var description *string
	if req.Description != nil {
		value := strings.TrimSpace(*req.Description)
		if value != "" {
			description = &value
		}
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: description,
		Date:        date,
	}, nil
}

// ParseCompletedField requires a JSON body with a "completed" key holding a
// strict boolean. Binding tags cannot express this: a required bool rejects
// an explicit false, and a plain *bool silently accepts a missing key.
func ParseCompletedField(body []byte) (bool, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return false, ErrInvalidTaskPayload
	}

	value, ok := raw["completed"]
	if !ok {
		return false, ErrInvalidTaskPayload
	}

	var completed bool
	if err := json.Unmarshal(value, &completed); err != nil {
		return false, ErrInvalidTaskPayload
	}

	return completed, nil
}
