package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vchernov/minesweeper-classic/internal/game"
)

// Record is a finished winning session ranked by clock time.
type Record struct {
	GameSessionId  int64   `json:"game_session_id"`
	Username       *string `json:"username"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	MineCount      int     `json:"mine_count"`
	Difficulty     int     `json:"difficulty"`
	ElapsedSeconds int     `json:"elapsed_seconds"`
}

type RecordsFilter struct {
	Username   *string
	Difficulty *game.Difficulty
	GameParams *game.GameParams
}

func (f RecordsFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Difficulty != nil {
		clauses = append(clauses, "difficulty = @difficulty")
		args["difficulty"] = int(*f.Difficulty)
	}
	if f.GameParams != nil {
		clauses = append(
			clauses,
			"width = @width",
			"height = @height",
			"mine_count = @mineCount",
		)
		args["width"] = f.GameParams.Width
		args["height"] = f.GameParams.Height
		args["mineCount"] = f.GameParams.MineCount
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) GetRecords(
	ctx context.Context, filter RecordsFilter,
) ([]Record, error) {
	query := `
	SELECT
		game_session_id,
		username,
		width,
		height,
		mine_count,
		difficulty,
		elapsed_seconds
	FROM game_session
		LEFT OUTER JOIN player USING (player_id)
	WHERE
		status = @won_status
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	args["won_status"] = int(game.Won)
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY elapsed_seconds, ended_at;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Record])
}
