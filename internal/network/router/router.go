package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ozretail/checkout-gateway/internal/config"
	"github.com/ozretail/checkout-gateway/internal/network/handlers"
	"github.com/ozretail/checkout-gateway/internal/network/middleware"
	"github.com/ozretail/checkout-gateway/internal/services"
)

const tokenSecretAlgo = "HS256"

type Router struct {
	Config    config.Config
	Checkout  services.CheckoutService
	TokenAuth *jwtauth.JWTAuth
}

func NewRouter(config config.Config, checkout services.CheckoutService) *Router {
	return &Router{
		Config:    config,
		Checkout:  checkout,
		TokenAuth: jwtauth.New(tokenSecretAlgo, []byte(config.Server.JWTSecret), nil),
	}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/v2/checkout", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(router.TokenAuth))
				r.Use(jwtauth.Authenticator(router.TokenAuth))
				r.Get("/order", handlers.GetCheckoutOrderHandler(router.Checkout))
			})
		})
	})
	return r
}
