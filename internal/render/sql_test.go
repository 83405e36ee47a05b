package render

import (
	"chat-seeder/internal/schema"
	"chat-seeder/internal/seed"
	mytesting "chat-seeder/internal/testing"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2024, time.May, 17, 12, 0, 0, 0, time.UTC)

func TestLiteral(t *testing.T) {
	t.Parallel()

	name := "Devs' Corner"
	id := schema.ID("5d1c8e2a-3b4f-4a6e-8c7d-2e9f1a0b0c01")
	ts := time.Date(2024, time.March, 1, 9, 30, 0, 123456000, time.FixedZone("CET", 3600))

	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "plain text", value: "hello", want: "'hello'"},
		{name: "single quote", value: "Let's go", want: "'Let''s go'"},
		{name: "only quotes", value: "''", want: "''''''"},
		{name: "backslash", value: `C:\temp`, want: `'C:\temp'`},
		{name: "nul byte", value: "a\x00b", want: "'ab'"},
		{name: "emoji", value: "👍", want: "'👍'"},
		{name: "text pointer", value: &name, want: "'Devs'' Corner'"},
		{name: "nil text", value: (*string)(nil), want: "NULL"},
		{name: "id", value: id, want: "'5d1c8e2a-3b4f-4a6e-8c7d-2e9f1a0b0c01'"},
		{name: "nil id", value: (*schema.ID)(nil), want: "NULL"},
		{name: "true", value: true, want: "true"},
		{name: "false", value: false, want: "false"},
		{name: "int", value: 12, want: "12"},
		{name: "time in utc", value: ts, want: "'2024-03-01T08:30:00.123456Z'"},
		{name: "nil time", value: (*time.Time)(nil), want: "NULL"},
		{name: "untyped nil", value: nil, want: "NULL"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, literal(tt.value))
		})
	}
}

func TestLiteralUnsupportedType(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { literal(3.14) })
}

func TestSQLLayout(t *testing.T) {
	t.Parallel()

	script := SQL(mytesting.Dataset(testNow))
	lines := strings.Split(strings.TrimSuffix(script, "\n"), "\n")

	require.Equal(t, "-- Clear existing test data", lines[0])
	for i, table := range schema.Cleared {
		require.Equal(t, "DELETE FROM "+table+";", lines[i+1])
	}
	require.Equal(t, statusQuery, lines[len(lines)-1])
	require.Equal(t, "-- Test data generation completed", lines[len(lines)-2])

	var order []string
	for _, line := range lines {
		if strings.HasPrefix(line, "-- Insert ") {
			order = append(order, strings.TrimPrefix(line, "-- Insert "))
		}
	}
	require.Equal(t, schema.Sections, order)

	require.Equal(t, 3, strings.Count(script, "INSERT INTO user_profiles "))
	require.Equal(t, 2, strings.Count(script, "INSERT INTO rooms "))
	require.Equal(t, 5, strings.Count(script, "INSERT INTO room_participants "))
	require.Equal(t, 4, strings.Count(script, "INSERT INTO messages "))
	require.Equal(t, 2, strings.Count(script, "INSERT INTO message_reactions "))
	require.Equal(t, 3, strings.Count(script, "INSERT INTO meetings "))
	require.Equal(t, 7, strings.Count(script, "INSERT INTO meeting_participants "))
}

func TestSQLStatements(t *testing.T) {
	t.Parallel()

	script := SQL(mytesting.Dataset(testNow))

	require.Contains(t, script, "INSERT INTO user_profiles (id, display_name, avatar_url, phone_number, status_message, is_online, last_seen) "+
		"VALUES ('0b6f5a52-6c2e-4d8a-9a31-1f6b2c1d0e01', 'Aoife O''Brien', 'https://i.pravatar.cc/150?u=aoife.obrien@example.com', "+
		"'+12025550101', 'Let''s build something amazing! 🚀', true, '2024-05-17T11:00:00.000000Z');\n")

	require.Contains(t, script, "INSERT INTO rooms (id, name, description, type, created_by, avatar_url, last_message_at, created_at) "+
		"VALUES ('5d1c8e2a-3b4f-4a6e-8c7d-2e9f1a0b0c01', NULL, NULL, 'direct', '0b6f5a52-6c2e-4d8a-9a31-1f6b2c1d0e01', NULL, "+
		"'2024-05-17T10:00:00.000000Z', '2024-05-07T12:00:00.000000Z');\n")

	require.Contains(t, script, "INSERT INTO room_participants (room_id, user_id, role, joined_at, is_active) "+
		"VALUES ('5d1c8e2a-3b4f-4a6e-8c7d-2e9f1a0b0c02', '0b6f5a52-6c2e-4d8a-9a31-1f6b2c1d0e02', 'admin', '2024-04-27T12:00:00.000000Z', true);\n")

	require.Contains(t, script, "'Sounds good, Aoife! I''ll be there', 'text', '9a7b6c5d-4e3f-4a1b-9c8d-7e6f5a4b3c01', "+
		"'2024-05-17T08:00:00.000000Z', '2024-05-17T08:10:00.000000Z', NULL);\n")

	require.Contains(t, script, "'Client''s Review', 'Client''s Review meeting for the team'")
	require.Contains(t, script, "20, 'https://recordings.example.com/client''s_review.mp4');\n")
	require.NotContains(t, script, "O'Brien")
}

func TestSQLEmptyCollections(t *testing.T) {
	t.Parallel()

	script := SQL(&seed.Dataset{})
	require.NotContains(t, script, "INSERT INTO")
	for _, section := range schema.Sections {
		require.Contains(t, script, "-- Insert "+section+"\n")
	}
	require.True(t, strings.HasSuffix(script, statusQuery+"\n"))
}

func TestSQLIsDeterministic(t *testing.T) {
	t.Parallel()

	render := func() string {
		ds, err := seed.Generate(seed.NewSource(7, testNow), seed.Params{Users: 20, MessagesPerRoom: 15, Meetings: 8})
		require.NoError(t, err)
		return SQL(ds)
	}
	require.Equal(t, render(), render())
}
