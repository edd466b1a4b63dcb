package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dega-network/nft-engine/internal/config"
	"github.com/dega-network/nft-engine/internal/postgres"
	"github.com/dega-network/nft-engine/modules/collection"
	collectionhttphandler "github.com/dega-network/nft-engine/modules/collection/api/httphandler"
	collectiondatagateway "github.com/dega-network/nft-engine/modules/collection/datagateway"
	collectionpostgres "github.com/dega-network/nft-engine/modules/collection/repository/postgres"
	"github.com/dega-network/nft-engine/modules/minter"
	minterhttphandler "github.com/dega-network/nft-engine/modules/minter/api/httphandler"
	minterdatagateway "github.com/dega-network/nft-engine/modules/minter/datagateway"
	minterpostgres "github.com/dega-network/nft-engine/modules/minter/repository/postgres"
	"github.com/dega-network/nft-engine/pkg/automaxprocs"
	"github.com/dega-network/nft-engine/pkg/errorhandler"
	"github.com/dega-network/nft-engine/pkg/logger"
	"github.com/dega-network/nft-engine/pkg/logger/slogx"
	"github.com/dega-network/nft-engine/pkg/middleware/requestcontext"
	"github.com/dega-network/nft-engine/pkg/middleware/requestlogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Register Modules. The cross-contract capabilities are bound here: the
// collection's admin oracle and pause flag resolve against the minter's
// storage, and the minter's collection gateway resolves against the live
// collection processor.
var Modules = do.Package(
	do.Lazy(func(i do.Injector) (collectiondatagateway.AdminOracle, error) {
		return minter.NewAdminOracle(do.MustInvoke[*minterpostgres.Repository](i)), nil
	}),
	do.Lazy(func(i do.Injector) (collectiondatagateway.MinterGateway, error) {
		return minter.NewAdminOracle(do.MustInvoke[*minterpostgres.Repository](i)), nil
	}),
	do.Lazy(func(i do.Injector) (minterdatagateway.CollectionGateway, error) {
		return collection.NewGateway(do.MustInvoke[*collection.Processor](i)), nil
	}),
	do.Lazy(collection.New),
	do.Lazy(minter.New),
)

func NewRunCommand() *cobra.Command {
	// Create command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start nft-engine service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			return runHandler(cmd, args)
		},
	}

	// Add local flags
	flags := runCmd.Flags()
	flags.Bool("api-only", false, "Run only API server, skip bootstrap instantiation")

	// Bind flags to configuration
	config.BindPFlag("api_only", flags.Lookup("api-only"))

	return runCmd
}

const (
	shutdownTimeout = 60 * time.Second
)

func runHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	// Initialize storage. Pools are owned here so the shared minter
	// repository outlives both processors.
	minterPg, err := postgres.NewPool(ctx, conf.Modules.Minter.Postgres)
	if err != nil {
		return errors.Wrap(err, "can't create Postgres connection pool for minter")
	}
	defer minterPg.Close()
	collectionPg, err := postgres.NewPool(ctx, conf.Modules.Collection.Postgres)
	if err != nil {
		return errors.Wrap(err, "can't create Postgres connection pool for collection")
	}
	defer collectionPg.Close()
	do.ProvideValue(injector, minterpostgres.NewRepository(minterPg))
	do.ProvideValue(injector, collectionpostgres.NewRepository(collectionPg))

	// Initialize HTTP server
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		app := fiber.New(fiber.Config{
			AppName:      "DEGA NFT Engine",
			ErrorHandler: errorhandler.NewHTTPErrorHandler(),
		})
		app.
			Use(favicon.New()).
			Use(cors.New()).
			Use(requestid.New()).
			Use(requestcontext.New(
				requestcontext.WithRequestId(),
				requestcontext.WithClientIP(conf.HTTPServer.RequestIP),
			)).
			Use(requestlogger.New(conf.HTTPServer.Logger)).
			Use(fiberrecover.New(fiberrecover.Config{
				EnableStackTrace: true,
				StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
					buf := make([]byte, 1024) // bufLen = 1024
					buf = buf[:runtime.Stack(buf, false)]
					logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", slogx.Any("panic", e), slog.String("stacktrace", string(buf)))
				},
			})).
			Use(compress.New(compress.Config{
				Level: compress.LevelDefault,
			}))

		// Health check
		app.Get("/", func(c *fiber.Ctx) error {
			return errors.WithStack(c.SendStatus(http.StatusOK))
		})

		return app, nil
	})

	// Initialize contract processors
	minterProcessor, err := do.Invoke[*minter.Processor](injector)
	if err != nil {
		return errors.Wrap(err, "can't init minter module")
	}
	collectionProcessor, err := do.Invoke[*collection.Processor](injector)
	if err != nil {
		return errors.Wrap(err, "can't init collection module")
	}

	// Mount APIs
	httpServer := do.MustInvoke[*fiber.App](injector)
	if err := minterhttphandler.New(minterProcessor).Mount(httpServer); err != nil {
		return errors.Wrap(err, "can't mount minter API")
	}
	if err := collectionhttphandler.New(collectionProcessor).Mount(httpServer); err != nil {
		return errors.Wrap(err, "can't mount collection API")
	}

	// First-run bootstrap: instantiate the minter and its collection when no
	// settings exist yet.
	if !conf.APIOnly {
		if err := minterProcessor.Bootstrap(ctx, conf.Minter); err != nil {
			return errors.WithStack(err)
		}
	}

	// Run API server
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.PanicContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	logger.InfoContext(ctx, "DEGA NFT Engine started")

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	if err := injector.Shutdown(); err != nil {
		logger.PanicContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}

	return nil
}
