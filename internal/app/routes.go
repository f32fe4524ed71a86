package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/ddrozdov/nparcade/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)
	game := handlers.NewGameHandler(
		a.logger, a.db, a.families, a.ws, createRand(),
	)

	v1 := a.router.PathPrefix("/v1").Subrouter()

	v1.Methods("POST").Path("/register").HandlerFunc(auth.Register)
	v1.Methods("POST").Path("/login").HandlerFunc(auth.Login)
	v1.Methods("POST").Path("/logout").HandlerFunc(auth.Logout)
	v1.Methods("GET").Path("/status").HandlerFunc(auth.Status)

	v1.Methods("GET").Path("/highscores").HandlerFunc(game.Highscores)

	v1.Methods("POST").Path("/game").HandlerFunc(game.Create)
	v1.Methods("GET").Path("/game/{id}").HandlerFunc(game.Fetch)
	v1.Methods("POST").Path("/game/{id}/move").HandlerFunc(game.Move)
	v1.Methods("POST").Path("/game/{id}/batch").HandlerFunc(game.Batch)
	v1.Methods("POST").Path("/game/{id}/timeout").HandlerFunc(game.Timeout)
	v1.Methods("POST").Path("/game/{id}/forfeit").HandlerFunc(game.Forfeit)
	v1.Methods("GET").Path("/game/{id}/connect").HandlerFunc(game.ConnectWS)
}
