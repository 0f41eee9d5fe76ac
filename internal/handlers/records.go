package handlers

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/vchernov/minesweeper-classic/internal/game"
	"github.com/vchernov/minesweeper-classic/internal/repository"
)

type Records struct {
	log  *logrus.Logger
	repo *repository.Queries
}

func NewRecords(log *logrus.Logger, db *pgxpool.Pool) *Records {
	return &Records{
		log:  log,
		repo: repository.New(db),
	}
}

// Get lists winning sessions ordered by clock time. Supports filtering
// by username, preset difficulty, or exact board dimensions.
func (h *Records) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter repository.RecordsFilter

	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}

	switch query.Get("difficulty") {
	case "":
	case "beginner":
		d := game.Beginner
		filter.Difficulty = &d
	case "intermediate":
		d := game.Intermediate
		filter.Difficulty = &d
	case "expert":
		d := game.Expert
		filter.Difficulty = &d
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if query.Has("width") || query.Has("height") || query.Has("mine_count") {
		dto, err := ParseNewGameDTO(query)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.log, wrapError(err))
			return
		}
		params := game.GameParams{
			Width:     dto.Width,
			Height:    dto.Height,
			MineCount: dto.MineCount,
		}
		filter.GameParams = &params
	}

	records, err := h.repo.GetRecords(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to fetch records")
		return
	}

	sendJSONOrLog(w, h.log, records)
}
