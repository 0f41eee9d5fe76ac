package handlers

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/vchernov/minesweeper-classic/internal/config"
	"github.com/vchernov/minesweeper-classic/internal/game"
	"github.com/vchernov/minesweeper-classic/internal/middleware"
	"github.com/vchernov/minesweeper-classic/internal/repository"
)

type GameHandler struct {
	log  *logrus.Logger
	repo *repository.Queries
	ws   *config.WebSocket
	rnd  *rand.Rand
}

func NewGameHandler(
	log *logrus.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:  log,
		repo: repository.New(db),
		ws:   ws,
		rnd:  rnd,
	}
}

func (h *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dto, err := ParseNewGameDTO(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	params, err := dto.GameParams()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	g, err := game.NewGame(params, game.NopFrontend{}, h.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to create a new game")
		return
	}

	// an optional first click opens the board atomically with creation
	if query.Has("x") || query.Has("y") {
		pos, err := ParsePosition(query)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.log, wrapError(err))
			return
		}
		g.HandleCellClick(pos.X, pos.Y)
	}

	state, err := g.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to encode game state")
		return
	}

	createParams := repository.CreateGameSessionParams{
		Width:      params.Width,
		Height:     params.Height,
		MineCount:  params.MineCount,
		Difficulty: int(params.Difficulty),
		Status:     int(g.Status()),
		State:      state,
	}
	claims, loggedIn := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if loggedIn {
		createParams.PlayerID = &claims.PlayerId
	}

	session, err := h.repo.CreateGameSession(r.Context(), createParams)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to create game session")
		return
	}

	sendJSONOrLog(w, h.log, NewGameStateDTO(session, g))
}

func (h *GameHandler) loadSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *game.Game, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := h.repo.GetGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to fetch session from db")
		return nil, nil, false
	}

	g, err := game.DecodeGame(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("db returned invalid game_session.state")
		return nil, nil, false
	}

	return session, g, true
}

func (h *GameHandler) saveSession(
	ctx context.Context, session *repository.GameSession, g *game.Game,
) (*repository.GameSession, error) {
	state, err := g.Bytes()
	if err != nil {
		return nil, err
	}

	status := int(g.Status())
	elapsed := g.Elapsed()
	params := repository.UpdateGameSessionParams{
		Status:         &status,
		ElapsedSeconds: &elapsed,
		State:          state,
	}
	over := g.Status() == game.Won || g.Status() == game.Lost
	if over && session.EndedAt == nil {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
	}

	return h.repo.UpdateGameSession(ctx, session.GameSessionID, params)
}

func (h *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, g, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, h.log, NewGameStateDTO(session, g))
}

func (h *GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move := query.Get("move")
	switch move {
	case "open", "flag", "chord":
	default:
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(
			errors.New("move must be one of open, flag, chord"),
		))
		return
	}

	pos, err := ParsePosition(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	session, g, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	switch move {
	case "open":
		g.HandleCellClick(pos.X, pos.Y)
	case "flag":
		g.ToggleCellMarker(pos.X, pos.Y)
	case "chord":
		g.HandleChordReveal(pos.X, pos.Y)
	}

	session, err = h.saveSession(r.Context(), session, g)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to update session in db")
		return
	}

	sendJSONOrLog(w, h.log, NewGameStateDTO(session, g))
}

func (h *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, g, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	g.Forfeit()

	session, err := h.saveSession(r.Context(), session, g)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to update session in db")
		return
	}

	sendJSONOrLog(w, h.log, NewGameStateDTO(session, g))
}
