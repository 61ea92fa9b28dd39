package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("room name cannot be empty")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
)

// Room is a bookable physical room. Immutable within a validation pass; room
// management (create/update/delete) happens outside the engine.
type Room struct {
	id       uuid.UUID
	name     string
	capacity int
	location string
	active   bool
}

func NewRoom(id uuid.UUID, name string, capacity int, location string, active bool) (Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Room{}, ErrEmptyName
	}
	if capacity <= 0 {
		return Room{}, ErrInvalidCapacity
	}
	return Room{
		id:       id,
		name:     name,
		capacity: capacity,
		location: location,
		active:   active,
	}, nil
}

func (r Room) ID() uuid.UUID    { return r.id }
func (r Room) Name() string     { return r.name }
func (r Room) Capacity() int    { return r.capacity }
func (r Room) Location() string { return r.location }
func (r Room) Active() bool     { return r.active }

func (r Room) Fits(participantCount int) bool {
	return r.capacity >= participantCount
}
