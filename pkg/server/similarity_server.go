package server

import (
	"errors"
	"fmt"

	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/config"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/server/middleware"
	"github.com/chs1380/amazon-textract-grader-MarkingAccelerator2.0/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	SimilarityServerDI struct {
		Config              *config.Config
		Logger              *logrus.Logger
		MiddlewareTransport *middleware.Transport
		Routers             []router.ServerRouter
	}
	SimilarityServer struct {
		*BaseServer
	}
)

func NewSimilarityServer(di SimilarityServerDI) *SimilarityServer {
	base := NewBaseServer(di.Config, di.Logger)
	if di.MiddlewareTransport != nil {
		for _, h := range di.MiddlewareTransport.Handlers() {
			base.Router.Use(h)
		}
	}
	base.setupHealthCheck()
	base.WithRouters(di.Routers...)
	base.setupMetricsEndpoint()

	return &SimilarityServer{BaseServer: base}
}

func (s *SimilarityServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting similarity server")
	return s.Router.Listen(addr)
}

func (s *SimilarityServer) Shutdown() error {
	return errors.Join(s.Router.Shutdown(), s.shutdownMetrics())
}
