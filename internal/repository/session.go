package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ddrozdov/nparcade/internal/game"
)

type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	Kind          string
	Solved        int
	Score         int
	Over          bool
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	State         []byte
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type CreateGameSessionParams struct {
	PlayerId *int64
}

func (p CreateGameSessionParams) UpdateArgs(args *pgx.NamedArgs) *pgx.NamedArgs {
	if p.PlayerId != nil {
		(*args)["player_id"] = *p.PlayerId
	}
	return args
}

func (q Queries) CreateGameSession(
	ctx context.Context, round *game.Round, params CreateGameSessionParams,
) (*GameSession, error) {
	state, err := round.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"kind":   round.Kind.String(),
		"solved": round.Solved,
		"score":  round.Score,
		"over":   round.Over,
		"state":  state,
	}
	params.UpdateArgs(&args)

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, kind, solved, score, "over", state
		)
		VALUES (
			@player_id, @kind, @solved, @score, @over, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameSession],
	)
}

func (q Queries) FetchGameSession(ctx context.Context, gameSessionId int64) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	Solved  *int
	Score   *int
	Over    *bool
	EndedAt *time.Time
	State   *[]byte
}

// RoundUpdate snapshots a round into update params. Rounds that just
// ended should pass a non-nil endedAt.
func RoundUpdate(round *game.Round, endedAt *time.Time) (UpdateGameSessionParams, error) {
	state, err := round.Bytes()
	if err != nil {
		return UpdateGameSessionParams{}, err
	}
	return UpdateGameSessionParams{
		Solved:  &round.Solved,
		Score:   &round.Score,
		Over:    &round.Over,
		EndedAt: endedAt,
		State:   &state,
	}, nil
}

func (p UpdateGameSessionParams) SetClause() (string, map[string]any) {
	parts := make([]string, 0)
	args := make(map[string]any)

	if p.Solved != nil {
		parts = append(parts, "solved = @solved")
		args["solved"] = *p.Solved
	}
	if p.Score != nil {
		parts = append(parts, "score = @score")
		args["score"] = *p.Score
	}
	if p.Over != nil {
		parts = append(parts, `"over" = @over`)
		args["over"] = *p.Over
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}

	return strings.Join(parts, ", "), args
}

func (q Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64, params UpdateGameSessionParams,
) (*GameSession, error) {
	setClause, args := params.SetClause()
	args["game_session_id"] = gameSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE game_session SET "+setClause+", updated_at = now() WHERE game_session_id = @game_session_id RETURNING *",
		pgx.NamedArgs(args),
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
