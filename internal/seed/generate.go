package seed

import (
	"errors"
	"fmt"
)

var (
	ErrPrecondition      = errors.New("precondition failed")
	ErrUsersNotGenerated = fmt.Errorf("%w: users have not been generated", ErrPrecondition)
	ErrRoomsNotGenerated = fmt.Errorf("%w: rooms have not been generated", ErrPrecondition)
	ErrInvalidCount      = errors.New("invalid count")
)

const (
	MinMessagesPerRoom   = 5
	MaxMessagesPerRoom   = 1000
	MinGroupParticipants = 3
	MaxGroupParticipants = 8
	maxDirectRooms       = 10
	maxGroupRooms        = 8
)

// Params sizes a generation run.
type Params struct {
	Users           int
	MessagesPerRoom int
	Meetings        int
}

// Generate runs every generation step in dependency order.
func Generate(src *Source, p Params) (*Dataset, error) {
	users, err := GenerateUsers(src, p.Users)
	if err != nil {
		return nil, fmt.Errorf("generating users: %w", err)
	}

	rooms, err := GenerateRooms(src, users)
	if err != nil {
		return nil, fmt.Errorf("generating rooms: %w", err)
	}

	messages, err := GenerateMessages(src, users, rooms, p.MessagesPerRoom)
	if err != nil {
		return nil, fmt.Errorf("generating messages: %w", err)
	}

	meetings, err := GenerateMeetings(src, rooms, p.Meetings)
	if err != nil {
		return nil, fmt.Errorf("generating meetings: %w", err)
	}

	return &Dataset{
		Users:       users,
		Rooms:       rooms,
		Messages:    messages,
		Meetings:    meetings,
		GeneratedAt: src.Now(),
	}, nil
}
