package render

import (
	"chat-seeder/internal/schema"
	"chat-seeder/internal/seed"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is used for every timestamp in both SQL and JSON output.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

const statusQuery = "SELECT 'Advanced test data generated successfully!' as status;"

// SQL renders ds as a seed script: one DELETE per seeded table, then INSERT statements
// in dependency order, then a status query.
func SQL(ds *seed.Dataset) string {
	var s statements

	s.comment("Clear existing test data")
	for _, table := range schema.Cleared {
		s.line("DELETE FROM " + table + ";")
	}

	rows := schema.Rows(ds)
	i := 0
	for _, section := range schema.Sections {
		s.blank()
		s.comment("Insert " + section)
		for ; i < len(rows) && rows[i].Table.Section == section; i++ {
			s.insert(rows[i])
		}
	}

	s.blank()
	s.comment("Test data generation completed")
	s.line(statusQuery)

	return s.String()
}

// statements accumulates the script. Every value in it goes through literal.
type statements struct {
	strings.Builder
}

func (s *statements) line(text string) {
	s.WriteString(text)
	s.WriteByte('\n')
}

func (s *statements) blank() {
	s.WriteByte('\n')
}

func (s *statements) comment(text string) {
	s.line("-- " + text)
}

func (s *statements) insert(r schema.Row) {
	s.WriteString("INSERT INTO ")
	s.WriteString(r.Table.Name)
	s.WriteString(" (")
	s.WriteString(strings.Join(r.Table.Columns, ", "))
	s.WriteString(") VALUES (")
	for i, v := range r.Values {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(literal(v))
	}
	s.WriteString(");\n")
}

// literal renders a row value as a SQL literal.
func literal(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return quote(v)
	case *string:
		if v == nil {
			return "NULL"
		}
		return quote(*v)
	case schema.ID:
		return quote(string(v))
	case *schema.ID:
		if v == nil {
			return "NULL"
		}
		return quote(string(*v))
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case time.Time:
		return quote(formatTime(v))
	case *time.Time:
		if v == nil {
			return "NULL"
		}
		return quote(formatTime(*v))
	default:
		panic(fmt.Sprintf("render: unsupported value type %T", v))
	}
}

// quote returns s as a single-quoted string literal. Embedded quotes are doubled and
// NUL bytes, which no text column accepts, are dropped.
func quote(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
