package seed

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxMeetingGuests = 5
	joinChance       = 0.8
	recordingChance  = 0.7
	maxJoinDelay     = 10
)

// GenerateMeetings returns up to count meetings, one per leading entry of the
// meeting title catalog. Meetings are placed in group rooms when any exist and
// fall back to direct rooms otherwise; no rooms at all yields no meetings.
// rooms must be the output of GenerateRooms; a nil slice means rooms were never
// generated.
func GenerateMeetings(src *Source, rooms []Room, count int) ([]Meeting, error) {
	if rooms == nil {
		return nil, ErrRoomsNotGenerated
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: meeting count must not be negative, got %d", ErrInvalidCount, count)
	}

	meetings := make([]Meeting, 0, min(count, len(meetingTitles)))
	if len(rooms) == 0 {
		return meetings, nil
	}

	candidates := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Type == RoomGroup {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		candidates = rooms
	}

	for _, title := range meetingTitles[:min(count, len(meetingTitles))] {
		room := candidates[src.rnd.Intn(len(candidates))]
		host := src.pick(room.Participants)
		state := pickWeighted(src, meetingStates)

		m := Meeting{
			ID:              src.id(),
			RoomID:          room.ID,
			LiveKitRoomName: "meeting_" + strings.ReplaceAll(src.id(), "-", ""),
			HostID:          host,
			Title:           title,
			Description:     title + " meeting for the team",
			State:           state,
			MaxParticipants: src.between(5, 20),
		}

		switch state {
		case MeetingUpcoming:
			m.ScheduledFor = src.Now().Add(hours(src.between(1, 48)))
		case MeetingActive:
			m.ScheduledFor = src.Now().Add(-minutes(src.between(5, 60)))
			started := m.ScheduledFor
			m.StartedAt = &started
		case MeetingCompleted:
			duration := src.between(15, 120)
			// the whole meeting lies between 1 and 168 hours ago
			m.ScheduledFor = src.Now().Add(-minutes(src.between(max(60, duration), 168*60)))
			started := m.ScheduledFor
			ended := started.Add(minutes(duration))
			m.StartedAt = &started
			m.EndedAt = &ended
		}

		m.Participants = meetingParticipants(src, m, room.Participants)

		if state == MeetingCompleted && src.chance(recordingChance) {
			url := "https://recordings.example.com/" + strings.ToLower(strings.ReplaceAll(title, " ", "_")) + ".mp4"
			m.RecordingURL = &url
		}

		meetings = append(meetings, m)
	}

	return meetings, nil
}

// meetingParticipants returns the host followed by one to five other room
// participants. Nobody has joined an upcoming meeting; everybody present in a
// completed meeting has left by the time it ended.
func meetingParticipants(src *Source, m Meeting, roomParticipants []string) []MeetingParticipant {
	host := MeetingParticipant{
		UserID:            m.HostID,
		Role:              RoleHost,
		IsAudioEnabled:    true,
		IsVideoEnabled:    true,
		ConnectionQuality: "excellent",
	}
	if m.State != MeetingUpcoming {
		host.JoinedAt, host.LeftAt = attendance(src, m)
	}
	participants := []MeetingParticipant{host}

	others := make([]string, 0, len(roomParticipants))
	for _, id := range roomParticipants {
		if id != m.HostID {
			others = append(others, id)
		}
	}
	if len(others) == 0 {
		return participants
	}

	for _, id := range src.sample(others, src.between(1, min(maxMeetingGuests, len(others)))) {
		p := MeetingParticipant{
			UserID:            id,
			Role:              RoleParticipant,
			IsAudioEnabled:    src.rnd.Intn(2) == 0,
			IsVideoEnabled:    src.rnd.Intn(2) == 0,
			ConnectionQuality: src.pick(connectionQualities),
		}
		if m.State != MeetingUpcoming && src.chance(joinChance) {
			p.JoinedAt, p.LeftAt = attendance(src, m)
		}
		participants = append(participants, p)
	}

	return participants
}

// attendance returns join and leave times inside the meeting's running window.
// Active meetings have no leave time yet.
func attendance(src *Source, m Meeting) (*time.Time, *time.Time) {
	end := src.Now()
	if m.EndedAt != nil {
		end = *m.EndedAt
	}
	window := int(end.Sub(*m.StartedAt) / time.Minute)

	joined := src.after(*m.StartedAt, 0, min(maxJoinDelay, window-1))
	if m.State != MeetingCompleted {
		return &joined, nil
	}

	left := src.after(joined, 1, int(end.Sub(joined)/time.Minute))
	return &joined, &left
}
