package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ddrozdov/nparcade/internal/game"
)

// ConnectWS turns the session into a command channel: every text
// message is a batch of command lines, answered with the refreshed
// player view. A failed batch rolls the round back to its last
// persisted state, so each message lands whole or not at all.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, rd, ok := g.fetchRound(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer c.Close()

	c.SetReadLimit(g.ws.ReadLimit)

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		if err := rd.ApplyBatch(string(message), g.rnd); err != nil {
			restored, decodeErr := game.DecodeRound(session.State)
			if decodeErr != nil {
				g.logger.Error("unable to restore round state", slog.Any("error", decodeErr))
				return
			}
			rd = restored
			if err := c.WriteJSON(wrapError(err)); err != nil {
				g.logger.Error("unable to write json", slog.Any("error", err))
				break
			}
			continue
		}

		session, err = g.persistRound(r, session, rd)
		if err != nil {
			g.logger.Error("unable to update session in db", slog.Any("error", err))
			return
		}

		if err := c.WriteJSON(NewRoundDTO(session, rd)); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
	}
}
