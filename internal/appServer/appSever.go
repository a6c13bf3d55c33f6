// launching the server, prefetch pool and kafka producer
package appServer

import (
	"context"
	"crypto/tls"
	"log"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grandmixture/profile-card/config"
	"github.com/grandmixture/profile-card/internal/pkg/fetcher"
	"github.com/grandmixture/profile-card/internal/pkg/kafka"
	"github.com/grandmixture/profile-card/internal/pkg/pool"
	"github.com/grandmixture/profile-card/internal/service"
	"github.com/grandmixture/profile-card/internal/transport"

	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))

	upstreamFetcher := fetcher.New(cfg.Upstream.FetchTimeout)
	prefetchPool := pool.New(cfg.App.PoolSize)
	prefetchPool.Start()

	var producer kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		producer = kafka.NewNopProducer()
	}

	profileService := service.NewProfileService(upstreamFetcher, prefetchPool, producer, cfg.Upstream, cfg.Kafka.Topic)
	profileHandler := transport.NewProfileHandler(profileService, cfg.App.APIKey, cfg.App.DefaultWeaponSize)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(profileHandler)); err != nil {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

	prefetchPool.Shutdown()

	if err := producer.Close(); err != nil {
		logrus.Errorf("error occured on closing kafka producer: %s", err.Error())
	}

}
