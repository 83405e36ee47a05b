package seed

import "time"

type RoomType string

const (
	RoomDirect RoomType = "direct"
	RoomGroup  RoomType = "group"
)

type MessageType string

const (
	MessageText   MessageType = "text"
	MessageImage  MessageType = "image"
	MessageFile   MessageType = "file"
	MessageAudio  MessageType = "audio"
	MessageSystem MessageType = "system"
)

// MeetingState is the lifecycle state of a meeting. It decides which timestamps
// and participant fields are populated.
type MeetingState string

const (
	MeetingUpcoming  MeetingState = "upcoming"
	MeetingActive    MeetingState = "active"
	MeetingCompleted MeetingState = "completed"
)

type ParticipantRole string

const (
	RoleHost        ParticipantRole = "host"
	RoleParticipant ParticipantRole = "participant"
)

type User struct {
	ID            string `validate:"required,uuid4"`
	DisplayName   string `validate:"required"`
	Email         string `validate:"required,email"`
	AvatarURL     string `validate:"required,url"`
	PhoneNumber   string `validate:"required,e164"`
	StatusMessage string `validate:"required"`
	IsOnline      bool
	LastSeen      time.Time `validate:"required"`
	CreatedAt     time.Time `validate:"required"`
}

// Room is a direct (two participants, unnamed) or group (3-8 participants, named) conversation.
type Room struct {
	ID            string   `validate:"required,uuid4"`
	Name          *string  `validate:"omitempty,min=1"`
	Description   *string  `validate:"omitempty,min=1"`
	Type          RoomType `validate:"oneof=direct group"`
	CreatedBy     string   `validate:"required,uuid4"`
	Participants  []string `validate:"min=2,max=8,unique,dive,uuid4"`
	AvatarURL     *string  `validate:"omitempty,url"`
	LastMessageAt time.Time
	CreatedAt     time.Time `validate:"required"`
}

type Reaction struct {
	UserID string `validate:"required,uuid4"`
	Emoji  string `validate:"required"`
}

type Message struct {
	ID        string      `validate:"required,uuid4"`
	RoomID    string      `validate:"required,uuid4"`
	UserID    string      `validate:"required,uuid4"`
	Content   string      `validate:"required"`
	Type      MessageType `validate:"oneof=text image file audio system"`
	ReplyTo   *string     `validate:"omitempty,uuid4"`
	CreatedAt time.Time   `validate:"required"`
	EditedAt  *time.Time
	DeletedAt *time.Time
	Reactions []Reaction `validate:"max=3,dive"`
}

type MeetingParticipant struct {
	UserID            string          `validate:"required,uuid4"`
	Role              ParticipantRole `validate:"oneof=host participant"`
	JoinedAt          *time.Time
	LeftAt            *time.Time
	IsAudioEnabled    bool
	IsVideoEnabled    bool
	ConnectionQuality string `validate:"oneof=excellent good poor"`
}

type Meeting struct {
	ID              string       `validate:"required,uuid4"`
	RoomID          string       `validate:"required,uuid4"`
	LiveKitRoomName string       `validate:"required,startswith=meeting_"`
	HostID          string       `validate:"required,uuid4"`
	Title           string       `validate:"required"`
	Description     string       `validate:"required"`
	State           MeetingState `validate:"oneof=upcoming active completed"`
	ScheduledFor    time.Time    `validate:"required"`
	StartedAt       *time.Time
	EndedAt         *time.Time
	MaxParticipants int                  `validate:"min=5,max=20"`
	Participants    []MeetingParticipant `validate:"min=1,max=6,dive"`
	RecordingURL    *string              `validate:"omitempty,url"`
}

// Dataset holds the output of one generation run.
type Dataset struct {
	Users       []User
	Rooms       []Room
	Messages    []Message
	Meetings    []Meeting
	GeneratedAt time.Time
}
