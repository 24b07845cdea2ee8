package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cts/core/loader"
	"cts/core/logger"
	"cts/core/middleware/auth"
	"cts/core/middleware/rayid"
	"cts/feature/jobs"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the read-only HTTP API",
	Long: `Serves companies, postings and the CSV export of the configured store.
Every request must carry SERVER_API_KEY in the X-API-Key header when it is set.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap("", true)
	if err != nil {
		return err
	}
	defer rt.close()
	zap.ReplaceGlobals(rt.logger)

	if err := rt.verifySchema(); err != nil {
		return err
	}

	svc, err := rt.service(false)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager()
	mgr.Register(jobs.NewFeature(svc))

	// RayID first so every log line below can be traced
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(rt.logger, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	if rt.cfg.Server.IsProtected() {
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))
	} else {
		rt.logger.Warn("SERVER_API_KEY is empty, the API is not protected")
	}

	if err := mgr.LoadAll(app); err != nil {
		return fmt.Errorf("failed to load features: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		rt.logger.Info("Starting server", zap.String("address", rt.cfg.Server.Address()))
		errCh <- app.Listen(rt.cfg.Server.Address())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	rt.logger.Info("Shutting down server...")
	return app.Shutdown()
}
