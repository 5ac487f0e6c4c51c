package sqlite

import (
	"context"
	"database/sql"
	"time"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

type Shift struct {
	ID         int64
	CreatedAt  time.Time
	Input      string
	Output     string
	FromLayout string
	ToLayout   string
}

const insertShift = `
insert into shifts (created_at, input, output, from_layout, to_layout)
values (?, ?, ?, ?, ?)
`

type InsertShiftParams struct {
	CreatedAt  time.Time
	Input      string
	Output     string
	FromLayout string
	ToLayout   string
}

func (q *Queries) InsertShift(ctx context.Context, arg InsertShiftParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, insertShift,
		arg.CreatedAt,
		arg.Input,
		arg.Output,
		arg.FromLayout,
		arg.ToLayout,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const recentShifts = `
select id, created_at, input, output, from_layout, to_layout
from shifts
order by id desc
limit ?
`

func (q *Queries) RecentShifts(ctx context.Context, limit int64) ([]Shift, error) {
	rows, err := q.db.QueryContext(ctx, recentShifts, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Shift
	for rows.Next() {
		var i Shift
		if err := rows.Scan(
			&i.ID,
			&i.CreatedAt,
			&i.Input,
			&i.Output,
			&i.FromLayout,
			&i.ToLayout,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
