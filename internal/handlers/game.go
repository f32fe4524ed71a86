package handlers

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ddrozdov/nparcade/internal/config"
	"github.com/ddrozdov/nparcade/internal/game"
	"github.com/ddrozdov/nparcade/internal/middleware"
	"github.com/ddrozdov/nparcade/internal/puzzle"
	"github.com/ddrozdov/nparcade/internal/repository"
)

type GameHandler struct {
	logger   *slog.Logger
	repo     *repository.Queries
	families map[puzzle.Kind]puzzle.Config
	ws       *config.WebSocket
	rnd      *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	families map[puzzle.Kind]puzzle.Config,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger:   logger,
		repo:     repository.New(db),
		families: families,
		ws:       ws,
		rnd:      rnd,
	}
}

func (g GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	cfg := config.FamilyConfig(g.families, dto.Kind)
	rd := game.NewRound(dto.Kind, cfg, g.rnd)

	var params repository.CreateGameSessionParams
	if claims, loggedIn := middleware.PlayerClaims(r.Context()); loggedIn {
		g.logger.Debug("creating player session", "player_id", claims.PlayerId)
		params.PlayerId = &claims.PlayerId
	} else {
		g.logger.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), rd, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewRoundDTO(session, rd))
}

func (g GameHandler) sessionId(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// fetchRound loads a session row and decodes its round, writing the
// error status itself. The bool reports whether both came through.
func (g GameHandler) fetchRound(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *game.Round, bool) {
	sessionId, err := g.sessionId(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	rd, err := game.DecodeRound(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}
	return session, rd, true
}

// persistRound writes the round back and stamps ended_at the first time
// the round comes in finished.
func (g GameHandler) persistRound(
	r *http.Request, session *repository.GameSession, rd *game.Round,
) (*repository.GameSession, error) {
	var endedAt *time.Time
	if rd.Over && !session.EndedAt.Valid {
		now := time.Now().UTC()
		endedAt = &now
	}
	params, err := repository.RoundUpdate(rd, endedAt)
	if err != nil {
		return nil, err
	}
	return g.repo.UpdateGameSession(r.Context(), session.GameSessionId, params)
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, rd, ok := g.fetchRound(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewRoundDTO(session, rd))
}

// applyAndReply runs already-parsed command text against the session's
// round, persists on success and replies with the fresh player view.
func (g GameHandler) applyAndReply(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, rd *game.Round,
	apply func(rd *game.Round) error,
) {
	if err := apply(rd); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, game.ErrRoundOver) {
			status = http.StatusConflict
		}
		w.WriteHeader(status)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, err := g.persistRound(r, session, rd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewRoundDTO(session, rd))
}

func (g GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	session, rd, ok := g.fetchRound(w, r)
	if !ok {
		return
	}
	cmd := r.URL.Query().Get("cmd")
	g.applyAndReply(w, r, session, rd, func(rd *game.Round) error {
		return rd.Apply(cmd, g.rnd)
	})
}

func (g GameHandler) Batch(w http.ResponseWriter, r *http.Request) {
	session, rd, ok := g.fetchRound(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, g.ws.ReadLimit))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	g.applyAndReply(w, r, session, rd, func(rd *game.Round) error {
		return rd.ApplyBatch(string(body), g.rnd)
	})
}

func (g GameHandler) Timeout(w http.ResponseWriter, r *http.Request) {
	session, rd, ok := g.fetchRound(w, r)
	if !ok {
		return
	}
	g.applyAndReply(w, r, session, rd, func(rd *game.Round) error {
		return rd.Apply("z", g.rnd)
	})
}

func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, rd, ok := g.fetchRound(w, r)
	if !ok {
		return
	}
	g.applyAndReply(w, r, session, rd, func(rd *game.Round) error {
		return rd.Apply("r", g.rnd)
	})
}

func (g GameHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseHighscoreQueryDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	filter, err := dto.Filter()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	highscores, err := g.repo.GetHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch highscores from db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, highscores)
}
