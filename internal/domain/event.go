package domain

import "time"

type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
}

// EventAttendee is the projection of a joined user on an event.
type EventAttendee struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
