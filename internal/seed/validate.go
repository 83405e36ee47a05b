package seed

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"time"
)

var ErrInvalidDataset = errors.New("invalid dataset")

var validate = validator.New()

// Validate checks field formats and every cross-entity invariant of ds: foreign
// references resolve, participant lists are distinct and correctly sized, replies
// point backwards within a room and timestamps follow their causal order.
// All violations are reported together.
func Validate(ds *Dataset) error {
	v := datasetValidator{
		users:    make(map[string]struct{}, len(ds.Users)),
		rooms:    make(map[string]Room, len(ds.Rooms)),
		messages: make(map[string]Message, len(ds.Messages)),
	}

	for _, u := range ds.Users {
		v.user(u)
	}
	for _, r := range ds.Rooms {
		v.room(r)
	}
	lastInRoom := make(map[string]time.Time, len(ds.Rooms))
	for _, m := range ds.Messages {
		v.message(m, lastInRoom)
	}
	for _, m := range ds.Meetings {
		v.meeting(m)
	}

	if len(v.errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(v.errs...))
	}
	return nil
}

type datasetValidator struct {
	users    map[string]struct{}
	rooms    map[string]Room
	messages map[string]Message
	errs     []error
}

func (v *datasetValidator) fail(format string, args ...interface{}) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *datasetValidator) fields(kind, id string, entity interface{}) {
	if err := validate.Struct(entity); err != nil {
		v.fail("%s %s: %w", kind, id, err)
	}
}

func (v *datasetValidator) knownUser(kind, id, userID string) {
	if _, ok := v.users[userID]; !ok {
		v.fail("%s %s: unknown user %s", kind, id, userID)
	}
}

func (v *datasetValidator) user(u User) {
	v.fields("user", u.ID, u)
	if _, ok := v.users[u.ID]; ok {
		v.fail("user %s: duplicate id", u.ID)
	}
	v.users[u.ID] = struct{}{}
}

func (v *datasetValidator) room(r Room) {
	v.fields("room", r.ID, r)
	if _, ok := v.rooms[r.ID]; ok {
		v.fail("room %s: duplicate id", r.ID)
	}
	v.rooms[r.ID] = r

	for _, id := range r.Participants {
		v.knownUser("room", r.ID, id)
	}
	if !isParticipant(r, r.CreatedBy) {
		v.fail("room %s: creator %s is not a participant", r.ID, r.CreatedBy)
	}

	switch r.Type {
	case RoomDirect:
		if len(r.Participants) != 2 {
			v.fail("room %s: direct room has %d participants", r.ID, len(r.Participants))
		}
		if r.Name != nil || r.Description != nil || r.AvatarURL != nil {
			v.fail("room %s: direct room must not have a name, description or avatar", r.ID)
		}
	case RoomGroup:
		if len(r.Participants) < MinGroupParticipants || len(r.Participants) > MaxGroupParticipants {
			v.fail("room %s: group room has %d participants", r.ID, len(r.Participants))
		}
		if r.Name == nil || *r.Name == "" {
			v.fail("room %s: group room has no name", r.ID)
		}
	}
}

func (v *datasetValidator) message(m Message, lastInRoom map[string]time.Time) {
	v.fields("message", m.ID, m)
	if _, ok := v.messages[m.ID]; ok {
		v.fail("message %s: duplicate id", m.ID)
	}
	defer func() { v.messages[m.ID] = m }()

	room, ok := v.rooms[m.RoomID]
	if !ok {
		v.fail("message %s: unknown room %s", m.ID, m.RoomID)
		return
	}
	if !isParticipant(room, m.UserID) {
		v.fail("message %s: sender %s is not a participant of room %s", m.ID, m.UserID, room.ID)
	}

	if last, ok := lastInRoom[room.ID]; ok && m.CreatedAt.Before(last) {
		v.fail("message %s: created before the previous message of room %s", m.ID, room.ID)
	}
	lastInRoom[room.ID] = m.CreatedAt

	if m.ReplyTo != nil {
		target, ok := v.messages[*m.ReplyTo]
		switch {
		case !ok:
			v.fail("message %s: reply target %s is not an earlier message", m.ID, *m.ReplyTo)
		case target.RoomID != m.RoomID:
			v.fail("message %s: reply target %s belongs to another room", m.ID, target.ID)
		case !target.CreatedAt.Before(m.CreatedAt):
			v.fail("message %s: reply target %s is not older", m.ID, target.ID)
		}
	}

	if m.EditedAt != nil && m.EditedAt.Before(m.CreatedAt) {
		v.fail("message %s: edited before creation", m.ID)
	}
	if m.DeletedAt != nil && m.DeletedAt.Before(m.CreatedAt) {
		v.fail("message %s: deleted before creation", m.ID)
	}

	reactors := make(map[string]struct{}, len(m.Reactions))
	for _, r := range m.Reactions {
		if !isParticipant(room, r.UserID) {
			v.fail("message %s: reaction from non-participant %s", m.ID, r.UserID)
		}
		if _, dup := reactors[r.UserID]; dup {
			v.fail("message %s: several reactions from %s", m.ID, r.UserID)
		}
		reactors[r.UserID] = struct{}{}
	}
}

func (v *datasetValidator) meeting(m Meeting) {
	v.fields("meeting", m.ID, m)

	room, ok := v.rooms[m.RoomID]
	if !ok {
		v.fail("meeting %s: unknown room %s", m.ID, m.RoomID)
		return
	}
	if !isParticipant(room, m.HostID) {
		v.fail("meeting %s: host %s is not a participant of room %s", m.ID, m.HostID, room.ID)
	}

	hosts := 0
	seen := make(map[string]struct{}, len(m.Participants))
	for _, p := range m.Participants {
		if _, dup := seen[p.UserID]; dup {
			v.fail("meeting %s: participant %s listed twice", m.ID, p.UserID)
		}
		seen[p.UserID] = struct{}{}
		if !isParticipant(room, p.UserID) {
			v.fail("meeting %s: participant %s is not a member of room %s", m.ID, p.UserID, room.ID)
		}
		if p.Role == RoleHost {
			hosts++
			if p.UserID != m.HostID {
				v.fail("meeting %s: host role given to %s", m.ID, p.UserID)
			}
		}
		v.attendance(m, p)
	}
	if hosts != 1 {
		v.fail("meeting %s: %d hosts", m.ID, hosts)
	}

	switch m.State {
	case MeetingUpcoming:
		if m.StartedAt != nil || m.EndedAt != nil {
			v.fail("meeting %s: upcoming meeting has start or end time", m.ID)
		}
	case MeetingActive:
		if m.StartedAt == nil || m.EndedAt != nil {
			v.fail("meeting %s: active meeting must have a start and no end", m.ID)
		}
	case MeetingCompleted:
		if m.StartedAt == nil || m.EndedAt == nil {
			v.fail("meeting %s: completed meeting must have start and end", m.ID)
			break
		}
		if d := m.EndedAt.Sub(*m.StartedAt); d < 15*time.Minute || d > 120*time.Minute {
			v.fail("meeting %s: duration %s out of range", m.ID, d)
		}
	}
	if m.StartedAt != nil && m.StartedAt.Before(m.ScheduledFor) {
		v.fail("meeting %s: started before it was scheduled", m.ID)
	}
	if m.RecordingURL != nil && m.State != MeetingCompleted {
		v.fail("meeting %s: recording on a meeting that has not completed", m.ID)
	}
}

func (v *datasetValidator) attendance(m Meeting, p MeetingParticipant) {
	if m.State == MeetingUpcoming {
		if p.JoinedAt != nil || p.LeftAt != nil {
			v.fail("meeting %s: %s attended an upcoming meeting", m.ID, p.UserID)
		}
		return
	}
	if p.LeftAt != nil && p.JoinedAt == nil {
		v.fail("meeting %s: %s left without joining", m.ID, p.UserID)
	}
	if p.JoinedAt != nil && m.StartedAt != nil && p.JoinedAt.Before(*m.StartedAt) {
		v.fail("meeting %s: %s joined before the start", m.ID, p.UserID)
	}
	if p.LeftAt != nil && p.JoinedAt != nil && !p.LeftAt.After(*p.JoinedAt) {
		v.fail("meeting %s: %s left before joining", m.ID, p.UserID)
	}
	if p.LeftAt != nil && m.EndedAt != nil && p.LeftAt.After(*m.EndedAt) {
		v.fail("meeting %s: %s left after the end", m.ID, p.UserID)
	}
}
