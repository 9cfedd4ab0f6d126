package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"widgetbrain/config"
	"widgetbrain/controllers"
	"widgetbrain/db"
	"widgetbrain/logger"
	"widgetbrain/router"
	"widgetbrain/training"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// =====================
// ENV esperadas
// =====================
//
// - CONFIG_PATH                   (default: config.json; opcional)
// - WIDGETBRAIN_<CHAVE>           (sobrescreve qualquer chave do config, ex: WIDGETBRAIN_DB_HOST)
//
// =====================

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run devolve o erro em vez de sair, para que os defers (DB, log) rodem sempre.
func run() error {
	_ = godotenv.Load()

	conf, err := config.Load(getenv("CONFIG_PATH", "config.json"))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logger.New(conf.LogMode, conf.LogPath)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	database, err := db.Connect(conf, log)
	if err != nil {
		log.Error("Database unavailable", "error", err)
		return fmt.Errorf("database: %w", err)
	}
	defer database.Close()

	appender := training.NewAppender(db.NewContextStore(database, conf.ContextTable), log)

	if strings.EqualFold(conf.LogMode, "prod") || strings.EqualFold(conf.LogMode, "production") {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	router.Initialize(r, conf, controllers.NewContextController(appender, log), log)

	srv := &http.Server{
		Addr:              ":" + conf.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Listening", "addr", srv.Addr, "table", conf.ContextTable)
	if err := serve(srv, stop, log); err != nil {
		log.Error("Server stopped", "error", err)
		return err
	}
	return nil
}

// serve roda o servidor até um sinal chegar ou o listener falhar.
func serve(srv *http.Server, stop <-chan os.Signal, log *logger.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case sig := <-stop:
		log.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
