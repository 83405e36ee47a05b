package testing

import (
	"chat-seeder/internal/seed"
	"time"
)

// Fixed ids used by Dataset.
const (
	UserAoife  = "0b6f5a52-6c2e-4d8a-9a31-1f6b2c1d0e01"
	UserBruno  = "0b6f5a52-6c2e-4d8a-9a31-1f6b2c1d0e02"
	UserChiara = "0b6f5a52-6c2e-4d8a-9a31-1f6b2c1d0e03"

	RoomDirect = "5d1c8e2a-3b4f-4a6e-8c7d-2e9f1a0b0c01"
	RoomGroup  = "5d1c8e2a-3b4f-4a6e-8c7d-2e9f1a0b0c02"

	MessageGreeting = "9a7b6c5d-4e3f-4a1b-9c8d-7e6f5a4b3c01"
	MessageReply    = "9a7b6c5d-4e3f-4a1b-9c8d-7e6f5a4b3c02"
	MessageDeleted  = "9a7b6c5d-4e3f-4a1b-9c8d-7e6f5a4b3c03"
	MessageDirect   = "9a7b6c5d-4e3f-4a1b-9c8d-7e6f5a4b3c04"

	MeetingUpcoming  = "c3d2e1f0-a9b8-4c7d-8e6f-5a4b3c2d1e01"
	MeetingActive    = "c3d2e1f0-a9b8-4c7d-8e6f-5a4b3c2d1e02"
	MeetingCompleted = "c3d2e1f0-a9b8-4c7d-8e6f-5a4b3c2d1e03"
)

// Dataset returns a small valid dataset relative to now. Its free text contains
// single quotes, a backslash and non-ASCII characters, and it has one meeting in
// every lifecycle state.
func Dataset(now time.Time) *seed.Dataset {
	now = now.UTC()
	at := func(d time.Duration) time.Time { return now.Add(d) }
	ptr := func(t time.Time) *time.Time { return &t }
	str := func(s string) *string { return &s }

	users := []seed.User{
		{
			ID:            UserAoife,
			DisplayName:   "Aoife O'Brien",
			Email:         "aoife.obrien@example.com",
			AvatarURL:     "https://i.pravatar.cc/150?u=aoife.obrien@example.com",
			PhoneNumber:   "+12025550101",
			StatusMessage: "Let's build something amazing! 🚀",
			IsOnline:      true,
			LastSeen:      at(-time.Hour),
			CreatedAt:     at(-30 * 24 * time.Hour),
		},
		{
			ID:            UserBruno,
			DisplayName:   "Bruno Müller",
			Email:         "bruno.muller@example.com",
			AvatarURL:     "https://i.pravatar.cc/150?u=bruno.muller@example.com",
			PhoneNumber:   "+12025550102",
			StatusMessage: "Available",
			LastSeen:      at(-3 * time.Hour),
			CreatedAt:     at(-60 * 24 * time.Hour),
		},
		{
			ID:            UserChiara,
			DisplayName:   "Chiara Rossi",
			Email:         "chiara.rossi@example.com",
			AvatarURL:     "https://i.pravatar.cc/150?u=chiara.rossi@example.com",
			PhoneNumber:   "+12025550103",
			StatusMessage: "In a meeting",
			LastSeen:      at(-5 * time.Minute),
			CreatedAt:     at(-90 * 24 * time.Hour),
		},
	}

	rooms := []seed.Room{
		{
			ID:            RoomDirect,
			Type:          seed.RoomDirect,
			CreatedBy:     UserAoife,
			Participants:  []string{UserAoife, UserBruno},
			LastMessageAt: at(-2 * time.Hour),
			CreatedAt:     at(-10 * 24 * time.Hour),
		},
		{
			ID:            RoomGroup,
			Name:          str("Devs' Corner"),
			Description:   str("Devs' Corner group chat"),
			Type:          seed.RoomGroup,
			CreatedBy:     UserBruno,
			Participants:  []string{UserAoife, UserBruno, UserChiara},
			AvatarURL:     str("https://i.pravatar.cc/150?u=devscorner"),
			LastMessageAt: at(-time.Hour),
			CreatedAt:     at(-20 * 24 * time.Hour),
		},
	}

	replyTo := MessageGreeting
	messages := []seed.Message{
		{
			ID:        MessageGreeting,
			RoomID:    RoomGroup,
			UserID:    UserAoife,
			Content:   "Let's meet at 10:00 to discuss the project",
			Type:      seed.MessageText,
			CreatedAt: at(-5 * time.Hour),
			Reactions: []seed.Reaction{
				{UserID: UserBruno, Emoji: "👍"},
				{UserID: UserChiara, Emoji: "❤️"},
			},
		},
		{
			ID:        MessageReply,
			RoomID:    RoomGroup,
			UserID:    UserChiara,
			Content:   "Sounds good, Aoife! I'll be there",
			Type:      seed.MessageText,
			ReplyTo:   &replyTo,
			CreatedAt: at(-4 * time.Hour),
			EditedAt:  ptr(at(-4*time.Hour + 10*time.Minute)),
		},
		{
			ID:        MessageDeleted,
			RoomID:    RoomGroup,
			UserID:    UserBruno,
			Content:   `Saved the notes to C:\temp\notes.txt`,
			Type:      seed.MessageFile,
			CreatedAt: at(-3 * time.Hour),
			DeletedAt: ptr(at(-3*time.Hour + 30*time.Minute)),
		},
		{
			ID:        MessageDirect,
			RoomID:    RoomDirect,
			UserID:    UserBruno,
			Content:   "Hey Aoife! How are you doing?",
			Type:      seed.MessageText,
			CreatedAt: at(-2 * time.Hour),
		},
	}

	completedStart := at(-26 * time.Hour)
	meetings := []seed.Meeting{
		{
			ID:              MeetingUpcoming,
			RoomID:          RoomGroup,
			LiveKitRoomName: "meeting_0f1e2d3c4b5a69788796a5b4c3d2e1f0",
			HostID:          UserAoife,
			Title:           "Sprint Planning",
			Description:     "Sprint Planning meeting for the team",
			State:           seed.MeetingUpcoming,
			ScheduledFor:    at(24 * time.Hour),
			MaxParticipants: 10,
			Participants: []seed.MeetingParticipant{
				{UserID: UserAoife, Role: seed.RoleHost, IsAudioEnabled: true, IsVideoEnabled: true, ConnectionQuality: "excellent"},
				{UserID: UserBruno, Role: seed.RoleParticipant, ConnectionQuality: "good"},
			},
		},
		{
			ID:              MeetingActive,
			RoomID:          RoomGroup,
			LiveKitRoomName: "meeting_1f1e2d3c4b5a69788796a5b4c3d2e1f0",
			HostID:          UserBruno,
			Title:           "Daily Standup",
			Description:     "Daily Standup meeting for the team",
			State:           seed.MeetingActive,
			ScheduledFor:    at(-20 * time.Minute),
			StartedAt:       ptr(at(-20 * time.Minute)),
			MaxParticipants: 5,
			Participants: []seed.MeetingParticipant{
				{UserID: UserBruno, Role: seed.RoleHost, JoinedAt: ptr(at(-18 * time.Minute)), IsAudioEnabled: true, IsVideoEnabled: true, ConnectionQuality: "excellent"},
				{UserID: UserChiara, Role: seed.RoleParticipant, JoinedAt: ptr(at(-15 * time.Minute)), IsAudioEnabled: true, ConnectionQuality: "poor"},
				{UserID: UserAoife, Role: seed.RoleParticipant, ConnectionQuality: "good"},
			},
		},
		{
			ID:              MeetingCompleted,
			RoomID:          RoomDirect,
			LiveKitRoomName: "meeting_2f1e2d3c4b5a69788796a5b4c3d2e1f0",
			HostID:          UserAoife,
			Title:           "Client's Review",
			Description:     "Client's Review meeting for the team",
			State:           seed.MeetingCompleted,
			ScheduledFor:    completedStart,
			StartedAt:       ptr(completedStart),
			EndedAt:         ptr(completedStart.Add(45 * time.Minute)),
			MaxParticipants: 20,
			Participants: []seed.MeetingParticipant{
				{UserID: UserAoife, Role: seed.RoleHost, JoinedAt: ptr(completedStart.Add(2 * time.Minute)), LeftAt: ptr(completedStart.Add(45 * time.Minute)), IsAudioEnabled: true, IsVideoEnabled: true, ConnectionQuality: "excellent"},
				{UserID: UserBruno, Role: seed.RoleParticipant, JoinedAt: ptr(completedStart.Add(5 * time.Minute)), LeftAt: ptr(completedStart.Add(30 * time.Minute)), IsVideoEnabled: true, ConnectionQuality: "good"},
			},
			RecordingURL: str("https://recordings.example.com/client's_review.mp4"),
		},
	}

	return &seed.Dataset{
		Users:       users,
		Rooms:       rooms,
		Messages:    messages,
		Meetings:    meetings,
		GeneratedAt: now,
	}
}
