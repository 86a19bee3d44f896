package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/casetrack/casetrack-backend/api"
	"github.com/casetrack/casetrack-backend/infra"
	"github.com/casetrack/casetrack-backend/repositories"
	"github.com/casetrack/casetrack-backend/usecases"
	"github.com/casetrack/casetrack-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
)

const apiVersion = "v1"

func RunServer() error {
	// This is where we read the environment variables and set up the configuration for the application.
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             "casetrack-backend",
		Port:                utils.GetRequiredEnv[string]("PORT"),
		AllowedOrigins:      splitOrigins(utils.GetEnv("ALLOWED_ORIGINS", "")),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
	}
	pgConfig := utils.PGConfig{
		ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:         utils.GetEnv("PG_DATABASE", "casetrack"),
		Hostname:         utils.GetEnv("PG_HOSTNAME", ""),
		Password:         utils.GetEnv("PG_PASSWORD", ""),
		Port:             utils.GetEnv("PG_PORT", "5432"),
		User:             utils.GetEnv("PG_USER", ""),
	}
	serverConfig := struct {
		caseStorageBucketUrl string
		loggingFormat        string
		sentryDsn            string
	}{
		caseStorageBucketUrl: utils.GetRequiredEnv[string]("CASE_STORAGE_BUCKET_URL"),
		loggingFormat:        utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:            utils.GetEnv("SENTRY_DSN", ""),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env, apiVersion)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(pgConfig.GetConnectionString())
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	repos := repositories.NewRepositories(pool)

	uc := usecases.NewUsecases(repos,
		usecases.WithCaseStorageBucketUrl(serverConfig.caseStorageBucketUrl),
	)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while shutting down the server"))
		return err
	}

	return nil
}

func splitOrigins(origins string) []string {
	if origins == "" {
		return nil
	}
	out := strings.Split(origins, ",")
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out
}
