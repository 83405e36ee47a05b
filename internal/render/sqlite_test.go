package render

import (
	"chat-seeder/internal/schema"
	"chat-seeder/internal/seed"
	mytesting "chat-seeder/internal/testing"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"os"
	"testing"
)

// openSchema returns an in-memory SQLite database holding the tables the seed script targets.
func openSchema(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection would get its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	ddl, err := os.ReadFile("testdata/schema.sql")
	require.NoError(t, err)
	_, err = sqlDB.Exec(string(ddl))
	require.NoError(t, err)

	return db
}

func execScript(t *testing.T, db *gorm.DB, script string) {
	t.Helper()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	_, err = sqlDB.Exec(script)
	require.NoError(t, err)
}

func count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestSQLExecutesAgainstSchema(t *testing.T) {
	db := openSchema(t)
	ds := mytesting.Dataset(testNow)
	script := SQL(ds)

	// the second run exercises the delete order against populated tables
	execScript(t, db, script)
	execScript(t, db, script)

	require.EqualValues(t, 3, count(t, db, schema.UserProfiles.Name))
	require.EqualValues(t, 2, count(t, db, schema.Rooms.Name))
	require.EqualValues(t, 5, count(t, db, schema.RoomParticipants.Name))
	require.EqualValues(t, 4, count(t, db, schema.Messages.Name))
	require.EqualValues(t, 2, count(t, db, schema.MessageReactions.Name))
	require.EqualValues(t, 3, count(t, db, schema.Meetings.Name))
	require.EqualValues(t, 7, count(t, db, schema.MeetingParticipants.Name))

	var name string
	require.NoError(t, db.Raw("SELECT display_name FROM user_profiles WHERE id = ?", mytesting.UserAoife).Scan(&name).Error)
	require.Equal(t, "Aoife O'Brien", name)

	var content string
	require.NoError(t, db.Raw("SELECT content FROM messages WHERE id = ?", mytesting.MessageDeleted).Scan(&content).Error)
	require.Equal(t, `Saved the notes to C:\temp\notes.txt`, content)

	var nullNames int64
	require.NoError(t, db.Table("rooms").Where("name IS NULL").Count(&nullNames).Error)
	require.EqualValues(t, 1, nullNames)

	var admins int64
	require.NoError(t, db.Table("room_participants").Where("role = ?", schema.RoleAdmin).Count(&admins).Error)
	require.EqualValues(t, 2, admins)
}

func TestGeneratedSQLExecutesAgainstSchema(t *testing.T) {
	for _, users := range []int{1, 2, 20} {
		ds, err := seed.Generate(seed.NewSource(int64(users), testNow), seed.Params{Users: users, MessagesPerRoom: 15, Meetings: 8})
		require.NoError(t, err)

		db := openSchema(t)
		execScript(t, db, SQL(ds))
		execScript(t, db, SQL(ds))

		require.EqualValues(t, len(ds.Users), count(t, db, schema.UserProfiles.Name))
		require.EqualValues(t, len(ds.Rooms), count(t, db, schema.Rooms.Name))
		require.EqualValues(t, len(ds.Messages), count(t, db, schema.Messages.Name))
		require.EqualValues(t, len(ds.Meetings), count(t, db, schema.Meetings.Name))
	}
}
