package seed

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateUsers returns count users with random names and contact details.
// Roughly one user in three is online. count must be at least 1.
func GenerateUsers(src *Source, count int) ([]User, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: user count must be at least 1, got %d", ErrInvalidCount, count)
	}

	users := make([]User, 0, count)
	seen := make(map[string]int, count)
	for i := 0; i < count; i++ {
		first := src.pick(firstNames)
		last := src.pick(lastNames)

		local := strings.ToLower(first) + "." + strings.ToLower(last)
		seen[local]++
		if n := seen[local]; n > 1 {
			local += strconv.Itoa(n)
		}
		email := local + "@example.com"

		users = append(users, User{
			ID:            src.id(),
			DisplayName:   first + " " + last,
			Email:         email,
			AvatarURL:     "https://i.pravatar.cc/150?u=" + email,
			PhoneNumber:   "+1" + strconv.FormatInt(2000000000+src.rnd.Int63n(8000000000), 10),
			StatusMessage: src.pick(statusMessages),
			IsOnline:      src.rnd.Intn(3) == 0,
			LastSeen:      src.pastWithin(hours(src.between(0, 72))),
			CreatedAt:     src.pastWithin(days(src.between(1, 365))),
		})
	}

	return users, nil
}

func userIDs(users []User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}
