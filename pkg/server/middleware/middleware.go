package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// Transport carries the middlewares a server installs, in order.
type Transport struct {
	Middlewares []Middleware
}

func NewTransport(middlewares ...Middleware) *Transport {
	return &Transport{
		Middlewares: middlewares,
	}
}

func (t *Transport) Handlers() []fiber.Handler {
	handlers := make([]fiber.Handler, 0, len(t.Middlewares))
	for _, m := range t.Middlewares {
		if m == nil {
			continue
		}
		handlers = append(handlers, m.Middleware())
	}
	return handlers
}
