package seed

import (
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestGenerateUsers(t *testing.T) {
	t.Parallel()

	users, err := GenerateUsers(newTestSource(1), 50)
	require.NoError(t, err)
	require.Len(t, users, 50)

	ids := map[string]bool{}
	emails := map[string]bool{}
	for _, u := range users {
		require.NoError(t, validate.Struct(u))
		require.False(t, ids[u.ID], "duplicate id %s", u.ID)
		require.False(t, emails[u.Email], "duplicate email %s", u.Email)
		ids[u.ID] = true
		emails[u.Email] = true

		require.Len(t, strings.Fields(u.DisplayName), 2)
		require.True(t, strings.HasSuffix(u.Email, "@example.com"))
		require.True(t, strings.HasPrefix(u.PhoneNumber, "+1"))
		require.Len(t, u.PhoneNumber, 12)
		require.False(t, u.LastSeen.After(testNow))
		require.True(t, u.CreatedAt.After(testNow.AddDate(-1, 0, -1)))
	}
}

func TestGenerateUsersOnlineRatio(t *testing.T) {
	t.Parallel()

	users, err := GenerateUsers(newTestSource(7), 3000)
	require.NoError(t, err)

	online := 0
	for _, u := range users {
		if u.IsOnline {
			online++
		}
	}
	require.InDelta(t, 1.0/3, float64(online)/float64(len(users)), 0.05)
}

func TestGenerateUsersInvalidCount(t *testing.T) {
	t.Parallel()

	for _, count := range []int{0, -1} {
		users, err := GenerateUsers(newTestSource(1), count)
		require.ErrorIs(t, err, ErrInvalidCount)
		require.Nil(t, users)
	}
}
