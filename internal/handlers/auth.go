package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vchernov/minesweeper-classic/internal/config"
	"github.com/vchernov/minesweeper-classic/internal/middleware"
	"github.com/vchernov/minesweeper-classic/internal/repository"
)

type Auth struct {
	log     *logrus.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	jwt     *config.JWT
}

func NewAuth(
	log *logrus.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	jwt *config.JWT,
) *Auth {
	return &Auth{
		log:     log,
		repo:    repository.New(db),
		cookies: cookies,
		jwt:     jwt,
	}
}

type PlayerInfo struct {
	PlayerId int64  `json:"player_id"`
	Username string `json:"username"`
}

type AuthStatus struct {
	LoggedIn bool        `json:"logged_in"`
	Player   *PlayerInfo `json:"player,omitempty"`
}

func (a *Auth) Status(w http.ResponseWriter, r *http.Request) {
	var status *AuthStatus
	claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if ok {
		status = &AuthStatus{
			LoggedIn: true,
			Player:   &PlayerInfo{claims.PlayerId, claims.Username},
		}
		token, err := a.jwt.Sign(claims)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			a.log.WithError(err).Error("unable to tokenize checked claims")
			return
		}
		a.cookies.Refresh(w, token)
	} else {
		status = &AuthStatus{LoggedIn: false, Player: nil}
		a.cookies.Clear(w)
	}

	sendJSONOrLog(w, a.log, status)
}

var (
	ErrBadAuthBody        = fmt.Errorf("request body must contain url-encoded username and password")
	ErrBadPasswordTooLong = fmt.Errorf("password too long")
	ErrUsernameTaken      = fmt.Errorf("username taken")
	ErrBadCredentials     = fmt.Errorf("invalid username or password")
)

func (a *Auth) parseCredentials(
	w http.ResponseWriter, r *http.Request,
) (username, password string, ok bool) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return "", "", false
	}

	username = r.FormValue("username")
	password = r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, a.log, wrapError(ErrBadAuthBody))
		return "", "", false
	}

	// bcrypt refuses anything longer
	if len([]byte(password)) > 72 {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, a.log, wrapError(ErrBadPasswordTooLong))
		return "", "", false
	}

	return username, password, true
}

func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	username, password, ok := a.parseCredentials(w, r)
	if !ok {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.log.WithError(err).Error("unable to hash password")
		return
	}

	player, err := a.repo.CreatePlayer(r.Context(), repository.CreatePlayerParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, a.log, wrapError(ErrUsernameTaken))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.log.WithError(err).Error("unable to insert player")
		return
	}

	a.sendToken(w, player)
}

func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	username, password, ok := a.parseCredentials(w, r)
	if !ok {
		return
	}

	player, err := a.repo.GetPlayer(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, a.log, wrapError(ErrBadCredentials))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.log.WithError(err).Error("unable to fetch player")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		player.PasswordHash, []byte(password),
	); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, a.log, wrapError(ErrBadCredentials))
		return
	}

	a.sendToken(w, player)
}

func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.cookies.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

func (a *Auth) sendToken(w http.ResponseWriter, player *repository.Player) {
	token, err := a.jwt.Sign(
		config.NewPlayerClaims(player.PlayerID, player.Username),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.log.WithError(err).Error("unable to create a jwt token")
		return
	}

	if err := a.cookies.Refresh(w, token); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.log.WithError(err).Error("unable to set auth cookies")
		return
	}

	sendJSONOrLog(w, a.log, &PlayerInfo{player.PlayerID, player.Username})
}
