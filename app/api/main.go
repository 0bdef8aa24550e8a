package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketclient/app/setup"
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/goroutine"
	"github.com/x-xyz/marketclient/base/log"
	bValidator "github.com/x-xyz/marketclient/base/validator"
	mmiddleware "github.com/x-xyz/marketclient/middleware"
	catalog_delivery "github.com/x-xyz/marketclient/stores/catalog/delivery/http"
	catalog_usecase "github.com/x-xyz/marketclient/stores/catalog/usecase"
	ens_delivery "github.com/x-xyz/marketclient/stores/ens/delivery/http"
	notifications_delivery "github.com/x-xyz/marketclient/stores/events/delivery/http"
	events_delivery "github.com/x-xyz/marketclient/stores/events/delivery/ws"
	hc_delivery "github.com/x-xyz/marketclient/stores/healthcheck/delivery/http"
	mint_delivery "github.com/x-xyz/marketclient/stores/mint/delivery/http"
	txn_delivery "github.com/x-xyz/marketclient/stores/txn/delivery/http"
)

var configFile = pflag.String("config", setup.DefaultConfigFile, "path of the yaml config")

func init() {
	pflag.Parse()
	if err := setup.LoadConfig(*configFile); err != nil {
		panic(err)
	}
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Skipper: func(c echo.Context) bool {
			// websocket upgrades cannot be gzipped
			return c.Path() == "/events"
		},
	}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context, stop := ctx.WithCancel(ctx.Background())
	defer stop()

	hub := events_delivery.NewHub(viper.GetInt("events.buffer"))

	services, err := setup.New(context, hub)
	if err != nil {
		context.WithField("err", err).Error("setup.New failed")
		os.Exit(1)
	}

	mmiddleware.SetupCache(services.Cache)

	// one reconcile pass at a time, fed by the refresh bus
	goroutine.RecoverableGo(func() {
		catalog_usecase.RunRefresher(context, services.Catalog, services.Bus.Requests())
	}, goroutine.WithName("catalog refresher"))

	scheduler := cron.New()
	if spec := viper.GetString("catalog.refreshCron"); len(spec) > 0 {
		if _, err := scheduler.AddFunc(spec, func() {
			services.Bus.Request(context, "cron")
		}); err != nil {
			context.WithFields(log.Fields{
				"err":  err,
				"spec": spec,
			}).Error("scheduler.AddFunc failed")
		}
	}
	scheduler.Start()
	services.Bus.Request(context, "startup")

	hc_delivery.New(e, services.Health)
	catalog_delivery.New(e, services.Catalog, services.Bus, services.Ens)
	txn_delivery.New(e, services.Txn)
	mint_delivery.New(e, services.Mint)
	ens_delivery.New(e, services.Ens)
	events_delivery.New(e, hub, services.Catalog)
	notifications_delivery.New(e, services.Recorder)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")

	<-scheduler.Stop().Done()
	stop()
	hub.Close(context)

	shutdownCtx, cancel := ctx.WithTimeout(ctx.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
