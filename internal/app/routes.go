package app

import (
	"github.com/vchernov/minesweeper-classic/internal/game"
	"github.com/vchernov/minesweeper-classic/internal/handlers"
)

func (a *App) loadRoutes() {
	auth := handlers.NewAuth(a.log, a.db, a.cookies, a.jwt)
	records := handlers.NewRecords(a.log, a.db)
	gameHandler := handlers.NewGameHandler(a.log, a.db, a.ws, game.NewRand())

	a.router.HandleFunc("GET /status", auth.Status)
	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)

	a.router.HandleFunc("GET /records", records.Get)

	a.router.HandleFunc("POST /game", gameHandler.NewGame)
	a.router.HandleFunc("GET /game/{id}", gameHandler.Fetch)
	a.router.HandleFunc("POST /game/{id}/move", gameHandler.MakeAMove)
	a.router.HandleFunc("POST /game/{id}/forfeit", gameHandler.Forfeit)
	a.router.HandleFunc("/game/{id}/connect", gameHandler.ConnectWS)
}
