package zerolog

import (
	"context"

	"github.com/agoda-com/opentelemetry-go/otelzerolog"
	"github.com/agoda-com/opentelemetry-logs-go/exporters/otlp/otlplogs"
	"github.com/agoda-com/opentelemetry-logs-go/exporters/otlp/otlplogs/otlplogshttp"
	sdklogs "github.com/agoda-com/opentelemetry-logs-go/sdk/logs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// InitLogger configures the global zerolog logger for the finalizer
// process. Debug mode lowers the level; everything else is fixed at init.
func InitLogger(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	initDefaultLogger()
}

func initDefaultLogger() {
	ctx := context.Background()
	exporter, _ := otlplogs.NewExporter(ctx, otlplogs.WithClient(otlplogshttp.NewClient()))
	loggerProvider := sdklogs.NewLoggerProvider(
		sdklogs.WithBatcher(
			exporter,
			sdklogs.WithMaxExportBatchSize(512),
		),
	)
	hook := otelzerolog.NewHook(loggerProvider)
	logger := log.With().Caller().Logger().Hook(hook)
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}
