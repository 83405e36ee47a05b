package seed

import (
	"strings"
	"unicode"
)

// GenerateRooms returns direct rooms followed by group rooms built from users.
//
// There are min(len(users)/2, 10) direct rooms with two distinct participants each,
// and one group room per leading entry of the group name catalog (at most 8) with
// 3 to 8 distinct participants. Group rooms are skipped entirely when fewer than
// MinGroupParticipants users exist. The returned slice is never nil, so an empty
// result still counts as generated for the downstream steps.
func GenerateRooms(src *Source, users []User) ([]Room, error) {
	if len(users) == 0 {
		return nil, ErrUsersNotGenerated
	}

	ids := userIDs(users)
	directCount := min(len(users)/2, maxDirectRooms)
	groupCount := min(len(groupNames), maxGroupRooms)
	if len(users) < MinGroupParticipants {
		groupCount = 0
	}

	rooms := make([]Room, 0, directCount+groupCount)
	for i := 0; i < directCount; i++ {
		pair := src.sample(ids, 2)
		rooms = append(rooms, Room{
			ID:            src.id(),
			Type:          RoomDirect,
			CreatedBy:     pair[0],
			Participants:  pair,
			LastMessageAt: src.pastWithin(hours(src.between(0, 48))),
			CreatedAt:     src.pastWithin(days(src.between(1, 30))),
		})
	}

	for _, name := range groupNames[:groupCount] {
		size := src.between(MinGroupParticipants, min(MaxGroupParticipants, len(ids)))
		participants := src.sample(ids, size)

		name := name
		description := name + " group chat"
		avatar := "https://i.pravatar.cc/150?u=" + slug(name)
		rooms = append(rooms, Room{
			ID:            src.id(),
			Name:          &name,
			Description:   &description,
			Type:          RoomGroup,
			CreatedBy:     src.pick(participants),
			Participants:  participants,
			AvatarURL:     &avatar,
			LastMessageAt: src.pastWithin(hours(src.between(0, 24))),
			CreatedAt:     src.pastWithin(days(src.between(1, 90))),
		})
	}

	return rooms, nil
}

// slug lower-cases s and keeps only ASCII letters and digits.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isParticipant(room Room, userID string) bool {
	for _, id := range room.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
