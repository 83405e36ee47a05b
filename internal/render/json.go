package render

import (
	"bytes"
	"chat-seeder/internal/seed"
	"encoding/json"
	"github.com/valyala/fastjson"
	"time"
)

// JSON renders ds as an indented document {users, rooms, messages, meetings, generated_at}.
// Object keys keep the order of the entity fields and absent optional values are null.
func JSON(ds *seed.Dataset) ([]byte, error) {
	d := document{}
	a := &d.arena

	doc := a.NewObject()
	doc.Set("users", array(a, len(ds.Users), func(i int) *fastjson.Value { return d.user(ds.Users[i]) }))
	doc.Set("rooms", array(a, len(ds.Rooms), func(i int) *fastjson.Value { return d.room(ds.Rooms[i]) }))
	doc.Set("messages", array(a, len(ds.Messages), func(i int) *fastjson.Value { return d.message(ds.Messages[i]) }))
	doc.Set("meetings", array(a, len(ds.Meetings), func(i int) *fastjson.Value { return d.meeting(ds.Meetings[i]) }))
	doc.Set("generated_at", d.timestamp(ds.GeneratedAt))

	var out bytes.Buffer
	if err := json.Indent(&out, doc.MarshalTo(nil), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

type document struct {
	arena fastjson.Arena
}

func array(a *fastjson.Arena, n int, item func(i int) *fastjson.Value) *fastjson.Value {
	arr := a.NewArray()
	for i := 0; i < n; i++ {
		arr.SetArrayItem(i, item(i))
	}
	return arr
}

func (d *document) str(s string) *fastjson.Value {
	return d.arena.NewString(s)
}

func (d *document) optionalStr(s *string) *fastjson.Value {
	if s == nil {
		return d.arena.NewNull()
	}
	return d.arena.NewString(*s)
}

func (d *document) boolean(b bool) *fastjson.Value {
	if b {
		return d.arena.NewTrue()
	}
	return d.arena.NewFalse()
}

func (d *document) timestamp(t time.Time) *fastjson.Value {
	return d.arena.NewString(formatTime(t))
}

func (d *document) optionalTime(t *time.Time) *fastjson.Value {
	if t == nil {
		return d.arena.NewNull()
	}
	return d.timestamp(*t)
}

func (d *document) stringList(items []string) *fastjson.Value {
	return array(&d.arena, len(items), func(i int) *fastjson.Value { return d.str(items[i]) })
}

func (d *document) user(u seed.User) *fastjson.Value {
	o := d.arena.NewObject()
	o.Set("id", d.str(u.ID))
	o.Set("display_name", d.str(u.DisplayName))
	o.Set("email", d.str(u.Email))
	o.Set("avatar_url", d.str(u.AvatarURL))
	o.Set("phone_number", d.str(u.PhoneNumber))
	o.Set("status_message", d.str(u.StatusMessage))
	o.Set("is_online", d.boolean(u.IsOnline))
	o.Set("last_seen", d.timestamp(u.LastSeen))
	o.Set("created_at", d.timestamp(u.CreatedAt))
	return o
}

func (d *document) room(r seed.Room) *fastjson.Value {
	o := d.arena.NewObject()
	o.Set("id", d.str(r.ID))
	o.Set("name", d.optionalStr(r.Name))
	o.Set("description", d.optionalStr(r.Description))
	o.Set("type", d.str(string(r.Type)))
	o.Set("created_by", d.str(r.CreatedBy))
	o.Set("participants", d.stringList(r.Participants))
	o.Set("avatar_url", d.optionalStr(r.AvatarURL))
	o.Set("last_message_at", d.timestamp(r.LastMessageAt))
	o.Set("created_at", d.timestamp(r.CreatedAt))
	return o
}

func (d *document) message(m seed.Message) *fastjson.Value {
	o := d.arena.NewObject()
	o.Set("id", d.str(m.ID))
	o.Set("room_id", d.str(m.RoomID))
	o.Set("user_id", d.str(m.UserID))
	o.Set("content", d.str(m.Content))
	o.Set("type", d.str(string(m.Type)))
	o.Set("reply_to", d.optionalStr(m.ReplyTo))
	o.Set("created_at", d.timestamp(m.CreatedAt))
	o.Set("reactions", array(&d.arena, len(m.Reactions), func(i int) *fastjson.Value {
		r := d.arena.NewObject()
		r.Set("user_id", d.str(m.Reactions[i].UserID))
		r.Set("emoji", d.str(m.Reactions[i].Emoji))
		return r
	}))
	o.Set("edited_at", d.optionalTime(m.EditedAt))
	o.Set("deleted_at", d.optionalTime(m.DeletedAt))
	return o
}

func (d *document) meeting(m seed.Meeting) *fastjson.Value {
	o := d.arena.NewObject()
	o.Set("id", d.str(m.ID))
	o.Set("room_id", d.str(m.RoomID))
	o.Set("livekit_room_name", d.str(m.LiveKitRoomName))
	o.Set("host_id", d.str(m.HostID))
	o.Set("title", d.str(m.Title))
	o.Set("description", d.str(m.Description))
	o.Set("state", d.str(string(m.State)))
	o.Set("scheduled_for", d.timestamp(m.ScheduledFor))
	o.Set("started_at", d.optionalTime(m.StartedAt))
	o.Set("ended_at", d.optionalTime(m.EndedAt))
	o.Set("max_participants", d.arena.NewNumberInt(m.MaxParticipants))
	o.Set("participants", array(&d.arena, len(m.Participants), func(i int) *fastjson.Value {
		return d.participant(m.Participants[i])
	}))
	o.Set("recording_url", d.optionalStr(m.RecordingURL))
	return o
}

func (d *document) participant(p seed.MeetingParticipant) *fastjson.Value {
	o := d.arena.NewObject()
	o.Set("user_id", d.str(p.UserID))
	o.Set("role", d.str(string(p.Role)))
	o.Set("joined_at", d.optionalTime(p.JoinedAt))
	o.Set("left_at", d.optionalTime(p.LeftAt))
	o.Set("is_audio_enabled", d.boolean(p.IsAudioEnabled))
	o.Set("is_video_enabled", d.boolean(p.IsVideoEnabled))
	o.Set("connection_quality", d.str(p.ConnectionQuality))
	return o
}
