// Package schema maps a generated dataset onto the rows of the chat application's tables.
// The SQL renderer and the direct loader both consume these rows, so both write exactly
// the same columns in the same order.
package schema

import "chat-seeder/internal/seed"

// ID is a value stored in a uuid column.
type ID string

// Room participant roles as stored in room_participants.role.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Section names group an entity's table with the tables of its children.
const (
	SectionUsers    = "users"
	SectionRooms    = "rooms"
	SectionMessages = "messages"
	SectionMeetings = "meetings"
)

// Sections lists the sections in insertion order.
var Sections = []string{SectionUsers, SectionRooms, SectionMessages, SectionMeetings}

type Table struct {
	Name    string
	Section string
	Columns []string
}

var (
	UserProfiles = &Table{
		Name:    "user_profiles",
		Section: SectionUsers,
		Columns: []string{"id", "display_name", "avatar_url", "phone_number", "status_message", "is_online", "last_seen"},
	}
	Rooms = &Table{
		Name:    "rooms",
		Section: SectionRooms,
		Columns: []string{"id", "name", "description", "type", "created_by", "avatar_url", "last_message_at", "created_at"},
	}
	RoomParticipants = &Table{
		Name:    "room_participants",
		Section: SectionRooms,
		Columns: []string{"room_id", "user_id", "role", "joined_at", "is_active"},
	}
	Messages = &Table{
		Name:    "messages",
		Section: SectionMessages,
		Columns: []string{"id", "room_id", "user_id", "content", "type", "reply_to", "created_at", "edited_at", "deleted_at"},
	}
	MessageReactions = &Table{
		Name:    "message_reactions",
		Section: SectionMessages,
		Columns: []string{"message_id", "user_id", "emoji", "created_at"},
	}
	Meetings = &Table{
		Name:    "meetings",
		Section: SectionMeetings,
		Columns: []string{"id", "room_id", "livekit_room_name", "host_id", "title", "description", "scheduled_for", "started_at", "ended_at", "max_participants", "recording_url"},
	}
	MeetingParticipants = &Table{
		Name:    "meeting_participants",
		Section: SectionMeetings,
		Columns: []string{"meeting_id", "user_id", "role", "joined_at", "left_at", "is_audio_enabled", "is_video_enabled", "connection_quality"},
	}
)

// Inserted lists the populated tables, referenced tables first.
var Inserted = []*Table{UserProfiles, Rooms, RoomParticipants, Messages, MessageReactions, Meetings, MeetingParticipants}

// Cleared lists every table emptied before seeding, referencing tables first.
// message_status, typing_indicators, user_presence, meeting_recordings and
// meeting_invitations are never populated but reference seeded rows.
var Cleared = []string{
	"message_reactions",
	"message_status",
	"messages",
	"typing_indicators",
	"user_presence",
	"meeting_recordings",
	"meeting_invitations",
	"meeting_participants",
	"meetings",
	"room_participants",
	"rooms",
	"user_profiles",
}

// Row is one record of Table. Values line up with Table.Columns and hold one of
// ID, *ID, string, *string, bool, int, time.Time or *time.Time; nil pointers are NULL.
type Row struct {
	Table  *Table
	Values []interface{}
}

// Rows returns every row of ds in statement order: users, then each room followed by
// its participants, then each message followed by its reactions, then each meeting
// followed by its participants.
func Rows(ds *seed.Dataset) []Row {
	rows := make([]Row, 0, len(ds.Users)+len(ds.Rooms)*5+len(ds.Messages)*2+len(ds.Meetings)*4)

	for _, u := range ds.Users {
		rows = append(rows, Row{UserProfiles, []interface{}{
			ID(u.ID), u.DisplayName, u.AvatarURL, u.PhoneNumber, u.StatusMessage, u.IsOnline, u.LastSeen,
		}})
	}

	for _, r := range ds.Rooms {
		rows = append(rows, Row{Rooms, []interface{}{
			ID(r.ID), r.Name, r.Description, string(r.Type), ID(r.CreatedBy), r.AvatarURL, r.LastMessageAt, r.CreatedAt,
		}})
		for _, p := range r.Participants {
			role := RoleMember
			if p == r.CreatedBy {
				role = RoleAdmin
			}
			rows = append(rows, Row{RoomParticipants, []interface{}{
				ID(r.ID), ID(p), role, r.CreatedAt, true,
			}})
		}
	}

	for _, m := range ds.Messages {
		rows = append(rows, Row{Messages, []interface{}{
			ID(m.ID), ID(m.RoomID), ID(m.UserID), m.Content, string(m.Type), optionalID(m.ReplyTo), m.CreatedAt, m.EditedAt, m.DeletedAt,
		}})
		for _, r := range m.Reactions {
			rows = append(rows, Row{MessageReactions, []interface{}{
				ID(m.ID), ID(r.UserID), r.Emoji, m.CreatedAt,
			}})
		}
	}

	for _, m := range ds.Meetings {
		rows = append(rows, Row{Meetings, []interface{}{
			ID(m.ID), ID(m.RoomID), m.LiveKitRoomName, ID(m.HostID), m.Title, m.Description,
			m.ScheduledFor, m.StartedAt, m.EndedAt, m.MaxParticipants, m.RecordingURL,
		}})
		for _, p := range m.Participants {
			rows = append(rows, Row{MeetingParticipants, []interface{}{
				ID(m.ID), ID(p.UserID), string(p.Role), p.JoinedAt, p.LeftAt, p.IsAudioEnabled, p.IsVideoEnabled, p.ConnectionQuality,
			}})
		}
	}

	return rows
}

// ByTable splits rows per table, keeping their relative order.
func ByTable(rows []Row) map[*Table][][]interface{} {
	out := make(map[*Table][][]interface{}, len(Inserted))
	for _, r := range rows {
		out[r.Table] = append(out[r.Table], r.Values)
	}
	return out
}

func optionalID(s *string) *ID {
	if s == nil {
		return nil
	}
	id := ID(*s)
	return &id
}
