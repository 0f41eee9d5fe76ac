package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type GameSession struct {
	GameSessionID  int64
	PlayerID       *int64
	Width          int
	Height         int
	MineCount      int
	Difficulty     int
	Status         int
	ElapsedSeconds int
	State          []byte
	StartedAt      pgtype.Timestamptz
	EndedAt        *time.Time
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type CreateGameSessionParams struct {
	PlayerID   *int64
	Width      int
	Height     int
	MineCount  int
	Difficulty int
	Status     int
	State      []byte
}

func (q *Queries) CreateGameSession(
	ctx context.Context, params CreateGameSessionParams,
) (*GameSession, error) {
	args := pgx.NamedArgs{
		"width":      params.Width,
		"height":     params.Height,
		"mine_count": params.MineCount,
		"difficulty": params.Difficulty,
		"status":     params.Status,
		"state":      params.State,
	}
	if params.PlayerID != nil {
		args["player_id"] = *params.PlayerID
	} else {
		args["player_id"] = nil
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, width, height, mine_count, difficulty, status, state
		)
		VALUES (
			@player_id, @width, @height, @mine_count, @difficulty, @status, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameSession],
	)
}

func (q *Queries) GetGameSession(
	ctx context.Context, gameSessionId int64,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	Status         *int
	ElapsedSeconds *int
	EndedAt        *time.Time
	State          []byte
}

func (p UpdateGameSessionParams) SetClause() (string, pgx.NamedArgs) {
	parts := make([]string, 0)
	args := pgx.NamedArgs{}

	if p.Status != nil {
		parts = append(parts, "status = @status")
		args["status"] = *p.Status
	}
	if p.ElapsedSeconds != nil {
		parts = append(parts, "elapsed_seconds = @elapsed_seconds")
		args["elapsed_seconds"] = *p.ElapsedSeconds
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = p.State
	}

	return strings.Join(parts, ", "), args
}

func (q *Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64, params UpdateGameSessionParams,
) (*GameSession, error) {
	setClause, args := params.SetClause()
	args["game_session_id"] = gameSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE game_session SET "+setClause+
			" WHERE game_session_id = @game_session_id RETURNING *",
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
