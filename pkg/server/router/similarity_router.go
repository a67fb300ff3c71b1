package router

import (
	handlers "github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/handlers/http"
	"github.com/gofiber/fiber/v2"
)

const (
	SimilarityPath       = "/similarity"
	SimilarityObjectPath = "/similarity/object"
	VersionPath          = "/version"
)

type similarityRouter struct {
	handlerTransport handlers.HandlerTransport
}

func NewSimilarityRouter(handlerTransport handlers.HandlerTransport) ServerRouter {
	return &similarityRouter{
		handlerTransport: handlerTransport,
	}
}

func (r *similarityRouter) BuildRoutes(router *fiber.App) error {
	if r.handlerTransport.RankSimilarityHandler == nil ||
		r.handlerTransport.ScoreObjectHandler == nil ||
		r.handlerTransport.GetVersionHandler == nil {
		return ErrInvalidHandlerTransport
	}

	router.Get(VersionPath, r.handlerTransport.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		v1.Post(SimilarityPath, r.handlerTransport.RankSimilarityHandler.Handle)
		v1.Post(SimilarityObjectPath, r.handlerTransport.ScoreObjectHandler.Handle)
		v1.Get(VersionPath, r.handlerTransport.GetVersionHandler.Handle)
	}
	return nil
}
