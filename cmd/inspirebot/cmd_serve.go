package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/server"
)

var (
	serveFlags   engineFlags
	serveAddr    string
	serveOrigins []string
	serveLogMode string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the block editor as a JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd.Flags(), serveLogMode)
		if err != nil {
			return err
		}
		defer log.Sync()

		eng, err := loadEngine(serveFlags)
		if err != nil {
			return err
		}

		if serveLogMode != "dev" {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(eng, newAssistant(ctx, log), log)
		httpSrv := &http.Server{
			Addr:              serveAddr,
			Handler:           srv.Router(serveOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("listening", "addr", serveAddr)
			errCh <- httpSrv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	},
}

func init() {
	addEngineFlags(serveCmd.Flags(), &serveFlags)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringArrayVar(&serveOrigins, "origin", nil,
		"browser origin allowed by CORS (repeatable)")
	addLogFlag(serveCmd.Flags(), &serveLogMode, "dev")
}
