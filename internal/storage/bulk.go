package storage

import (
	"chat-seeder/internal/schema"
	"fmt"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"time"
)

// rowsBulk feeds schema rows to CopyFrom. COPY uses the binary format, so uuid and
// nullable values are converted to pgtype values first.
type rowsBulk struct {
	rows [][]interface{}
	idx  int
}

func copyFromRows(rows [][]interface{}) pgx.CopyFromSource {
	return &rowsBulk{
		rows: rows,
		idx:  -1,
	}
}

func (b *rowsBulk) Next() bool {
	b.idx++
	return b.idx < len(b.rows)
}

func (b *rowsBulk) Values() ([]interface{}, error) {
	row := b.rows[b.idx]
	values := make([]interface{}, len(row))
	for i, v := range row {
		pv, err := pgValue(v)
		if err != nil {
			return nil, err
		}
		values[i] = pv
	}
	return values, nil
}

func (b *rowsBulk) Err() error {
	return nil
}

func pgValue(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case schema.ID:
		return uuidValue(string(v))
	case *schema.ID:
		if v == nil {
			return &pgtype.UUID{Status: pgtype.Null}, nil
		}
		return uuidValue(string(*v))
	case *string:
		if v == nil {
			return &pgtype.Text{Status: pgtype.Null}, nil
		}
		return &pgtype.Text{String: *v, Status: pgtype.Present}, nil
	case time.Time:
		return &pgtype.Timestamptz{Time: v, Status: pgtype.Present}, nil
	case *time.Time:
		if v == nil {
			return &pgtype.Timestamptz{Status: pgtype.Null}, nil
		}
		return &pgtype.Timestamptz{Time: *v, Status: pgtype.Present}, nil
	case int:
		return &pgtype.Int4{Int: int32(v), Status: pgtype.Present}, nil
	case string, bool:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

func uuidValue(s string) (*pgtype.UUID, error) {
	u := &pgtype.UUID{}
	if err := u.Set(s); err != nil {
		return nil, fmt.Errorf("invalid uuid %q: %w", s, err)
	}
	return u, nil
}
