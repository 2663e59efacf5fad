package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/fadilmartias/recruit-admin/internal/config"
	"github.com/fadilmartias/recruit-admin/internal/domain/fiber/handler"
	"github.com/fadilmartias/recruit-admin/internal/middleware"
	"github.com/fadilmartias/recruit-admin/internal/repository"
	"github.com/fadilmartias/recruit-admin/internal/usecase"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := ConnectDB()
		if err != nil {
			return err
		}
		return serve(db)
	},
}

func newApp() *fiber.App {
	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:     appConfig.Name,
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return util.ErrorResponse(ctx, util.ErrorResponseFormat{Code: code, Message: message}, err)
		},
	})
	app.Use(requestid.New())
	app.Use(middleware.AccessLog(log.Named("http")))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.HeaderUserID,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(0, 0))
	app.Use(middleware.RequestContext(appConfig.RequestTimeout))
	return app
}

func registerRoutes(app *fiber.App, db *gorm.DB) {
	applicants := repository.NewApplicantRepository(db)
	applicantFields := repository.NewApplicantFieldRepository(db)
	statuses := repository.NewStatusSettingRepository(db)
	evaluationFields := repository.NewEvaluationFieldRepository(db)
	evaluations := repository.NewEvaluationRepository(db)
	roles := repository.NewRoleRepository(db)
	users := repository.NewUserRepository(db)
	displays := repository.NewDisplaySettingRepository(db)
	cards := repository.NewDashboardCardRepository(db)

	api := app.Group("/api", middleware.Actor(users, log.Named("actor")))

	handler.NewApplicantHandler(
		usecase.NewApplicantUsecase(applicants, applicantFields, statuses, log.Named("applicants")),
	).RegisterRoutes(api)
	handler.NewEvaluationHandler(
		usecase.NewEvaluationUsecase(evaluationFields, evaluations, applicants, log.Named("evaluations")),
	).RegisterRoutes(api)
	handler.NewSettingsHandler(
		usecase.NewEvaluationFieldUsecase(evaluationFields),
		usecase.NewStatusUsecase(statuses),
		usecase.NewRoleUsecase(roles, users),
		usecase.NewDisplaySettingUsecase(displays),
		usecase.NewDashboardCardUsecase(cards),
		usecase.NewApplicantFieldUsecase(applicantFields),
	).RegisterRoutes(api)
	handler.NewUserHandler(
		usecase.NewUserUsecase(users, roles, log.Named("users")),
	).RegisterRoutes(api)
	handler.NewReportHandler(
		usecase.NewReportUsecase(applicants, cards),
	).RegisterRoutes(api)
}

func serve(db *gorm.DB) error {
	appConfig := config.LoadAppConfig()
	app := newApp()
	registerRoutes(app, db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.Debug("runtime", zap.Int("goroutines", runtime.NumGoroutine()))
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("port", appConfig.Port))
		errCh <- app.Listen(appConfig.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
