package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vchernov/minesweeper-classic/internal/game"
)

// ConnectWS runs an interactive session over a websocket. Commands and
// the one-second clock tick are serialized onto a single goroutine, so
// the game never sees concurrent mutation.
func (h *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, g, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer c.Close()

	done := make(chan struct{})
	defer close(done)

	messages := make(chan string)
	go func() {
		defer close(messages)
		for {
			mt, message, err := c.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					h.log.WithError(err).Warn("abnormal ws break")
				}
				return
			}
			if mt != websocket.TextMessage {
				return
			}
			select {
			case messages <- strings.TrimSpace(string(message)):
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case <-ticker.C:
			before := g.Elapsed()
			g.OnTimerTick()
			if g.Elapsed() == before {
				continue
			}
			if err := c.WriteJSON(NewGameStateDTO(session, g)); err != nil {
				h.log.WithError(err).Error("unable to write json")
				return
			}

		case text, open := <-messages:
			if !open {
				return
			}
			h.log.WithField("commands", text).Debug("ws message")
			for _, line := range strings.Split(text, "\n") {
				if err := executeCommand(g, line); err != nil {
					h.log.WithError(err).Error("unable to process command")
					return
				}
				if g.Status() == game.Won || g.Status() == game.Lost {
					break
				}
			}

			session, err = h.saveSession(r.Context(), session, g)
			if err != nil {
				h.log.WithError(err).Error("unable to update session in db")
				return
			}

			if err := c.WriteJSON(NewGameStateDTO(session, g)); err != nil {
				h.log.WithError(err).Error("unable to write json")
				return
			}
		}
	}
}
