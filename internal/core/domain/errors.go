package domain

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrEntryNotFound = errors.New("entry not found")
)
