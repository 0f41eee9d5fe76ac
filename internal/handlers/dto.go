package handlers

import (
	"fmt"
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vchernov/minesweeper-classic/internal/game"
	"github.com/vchernov/minesweeper-classic/internal/repository"
)

type NewGameDTO struct {
	Difficulty string `schema:"difficulty"`
	Width      int    `schema:"width"`
	Height     int    `schema:"height"`
	MineCount  int    `schema:"mine_count"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// GameParams maps the request onto a game configuration. A preset
// difficulty wins over explicit dimensions; custom dimensions are
// clamped into the supported range rather than rejected.
func (dto NewGameDTO) GameParams() (game.GameParams, error) {
	switch dto.Difficulty {
	case "beginner":
		return game.PresetParams(game.Beginner), nil
	case "intermediate":
		return game.PresetParams(game.Intermediate), nil
	case "expert":
		return game.PresetParams(game.Expert), nil
	case "", "custom":
		params := game.GameParams{
			Width:      dto.Width,
			Height:     dto.Height,
			MineCount:  dto.MineCount,
			Difficulty: game.Custom,
		}.Clamp()
		return params, nil
	default:
		return game.GameParams{}, fmt.Errorf("unknown difficulty %q", dto.Difficulty)
	}
}

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (Position, error) {
	var pos Position
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&pos, src)
	return pos, err
}

type GameStateDTO struct {
	GameSessionId  string `json:"game_session_id"`
	Grid           []int  `json:"grid"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	MineCount      int    `json:"mine_count"`
	Difficulty     string `json:"difficulty"`
	Status         string `json:"status"`
	Elapsed        int    `json:"elapsed"`
	RemainingMines int    `json:"remaining_mines"`
	StartedAt      int64  `json:"started_at"`
	EndedAt        *int64 `json:"ended_at,omitempty"`
}

func NewGameStateDTO(session *repository.GameSession, g *game.Game) *GameStateDTO {
	var endedAt *int64
	if session.EndedAt != nil {
		e := session.EndedAt.UnixMilli()
		endedAt = &e
	}
	params := g.Params()
	return &GameStateDTO{
		GameSessionId:  strconv.FormatInt(session.GameSessionID, 10),
		Grid:           g.VisualGrid(),
		Width:          g.Width(),
		Height:         g.Height(),
		MineCount:      params.MineCount,
		Difficulty:     params.Difficulty.String(),
		Status:         g.Status().String(),
		Elapsed:        g.Elapsed(),
		RemainingMines: g.RemainingMines(),
		StartedAt:      session.StartedAt.Time.UnixMilli(),
		EndedAt:        endedAt,
	}
}
