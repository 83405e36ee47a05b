package seed

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	replyChance    = 0.3
	editChance     = 0.1
	deleteChance   = 0.05
	reactionChance = 0.3
	maxReactions   = 3
)

// GenerateMessages builds a conversation for every room. users only supplies first
// names for message templates. rooms must be the output of GenerateRooms; a nil
// slice means rooms were never generated.
//
// Each room gets a uniform number of messages in [MinMessagesPerRoom, perRoom] with
// strictly increasing timestamps, and perRoom may not exceed MaxMessagesPerRoom.
// Replies only ever point at earlier messages of the same room.
func GenerateMessages(src *Source, users []User, rooms []Room, perRoom int) ([]Message, error) {
	if rooms == nil {
		return nil, ErrRoomsNotGenerated
	}
	if perRoom < MinMessagesPerRoom || perRoom > MaxMessagesPerRoom {
		return nil, fmt.Errorf("%w: messages per room must be in [%d, %d], got %d",
			ErrInvalidCount, MinMessagesPerRoom, MaxMessagesPerRoom, perRoom)
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		if fields := strings.Fields(u.DisplayName); len(fields) > 0 {
			names[u.ID] = fields[0]
		}
	}

	messages := make([]Message, 0, len(rooms)*perRoom)
	for _, room := range rooms {
		count := src.between(MinMessagesPerRoom, perRoom)
		clock := src.pastWithin(hours(src.between(1, 168)))
		earlier := make([]string, 0, count)

		for i := 0; i < count; i++ {
			sender := src.pick(room.Participants)
			msg := Message{
				ID:        src.id(),
				RoomID:    room.ID,
				UserID:    sender,
				Content:   messageContent(src, room, sender, names),
				Type:      pickWeighted(src, messageTypes),
				CreatedAt: clock,
			}

			if len(earlier) > 0 && src.chance(replyChance) {
				target := src.pick(earlier)
				msg.ReplyTo = &target
			}

			msg.Reactions = reactions(src, room.Participants)

			if src.chance(editChance) {
				edited := src.after(clock, 1, 30)
				msg.EditedAt = &edited
			}
			if src.chance(deleteChance) {
				deleted := src.after(clock, 1, 60)
				msg.DeletedAt = &deleted
			}

			earlier = append(earlier, msg.ID)
			messages = append(messages, msg)
			clock = src.after(clock, 1, 120)
		}
	}

	return messages, nil
}

func messageContent(src *Source, room Room, sender string, names map[string]string) string {
	template := src.pick(messageTemplates)

	mention := "everyone"
	others := make([]string, 0, len(room.Participants))
	for _, id := range room.Participants {
		if id != sender {
			others = append(others, id)
		}
	}
	if len(others) > 0 {
		mention = firstName(names, src.pick(others))
	}

	content := strings.ReplaceAll(template, "{name}", mention)
	return strings.ReplaceAll(content, "{time}", strconv.Itoa(src.between(9, 17))+":00")
}

func firstName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "User"
}

// reactions returns nothing most of the time, otherwise one to three reactions
// from distinct participants.
func reactions(src *Source, participants []string) []Reaction {
	if !src.chance(reactionChance) {
		return nil
	}

	reactors := src.sample(participants, src.between(1, min(maxReactions, len(participants))))
	out := make([]Reaction, len(reactors))
	for i, id := range reactors {
		out[i] = Reaction{UserID: id, Emoji: src.pick(emojis)}
	}
	return out
}
