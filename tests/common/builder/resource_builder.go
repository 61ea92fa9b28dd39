//go:build unit

package builder

import (
	domroom "meetingsync/internal/domain/room"
	"meetingsync/internal/domain/videoaccount"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID       uuid.UUID
	Name     string
	Capacity int
	Location string
	Active   bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:       uuid.New(),
		Name:     "Conference A",
		Capacity: 10,
		Location: "Floor 2",
		Active:   true,
	}
}

func (b *RoomBuilder) WithName(name string) *RoomBuilder {
	b.Name = name
	return b
}

func (b *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	b.Capacity = capacity
	return b
}

func (b *RoomBuilder) WithLocation(location string) *RoomBuilder {
	b.Location = location
	return b
}

func (b *RoomBuilder) Build() (domroom.Room, error) {
	return domroom.NewRoom(b.ID, b.Name, b.Capacity, b.Location, b.Active)
}

func (b *RoomBuilder) MustBuild() domroom.Room {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

type AccountBuilder struct {
	ID            uuid.UUID
	ExternalRef   string
	MaxConcurrent int
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		ID:            uuid.New(),
		ExternalRef:   "host@example.com",
		MaxConcurrent: videoaccount.DefaultMaxConcurrent,
	}
}

func (b *AccountBuilder) WithExternalRef(ref string) *AccountBuilder {
	b.ExternalRef = ref
	return b
}

func (b *AccountBuilder) WithMaxConcurrent(n int) *AccountBuilder {
	b.MaxConcurrent = n
	return b
}

func (b *AccountBuilder) MustBuild() videoaccount.Account {
	a, err := videoaccount.NewAccount(b.ID, b.ExternalRef, b.MaxConcurrent)
	if err != nil {
		panic(err)
	}
	return a
}
