package entity

import (
	"time"

	"github.com/google/uuid"
)

// Action represents an advisor task. ClientID is nil for firm-wide tasks
// that are not tied to a specific client.
type Action struct {
	ID          uuid.UUID
	ClientID    *uuid.UUID
	Title       string
	Description *string
	Priority    Priority
	DueDate     *time.Time
	IsCompleted bool
	CreatedAt   time.Time
}

// NewAction creates a new incomplete Action entity.
func NewAction(
	clientID *uuid.UUID,
	title string,
	description *string,
	priority Priority,
	dueDate *time.Time,
) *Action {
	return &Action{
		ID:          uuid.New(),
		ClientID:    clientID,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		IsCompleted: false,
		CreatedAt:   time.Now().UTC(),
	}
}
