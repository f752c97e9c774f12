package metric

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finalizer_commands_total",
			Help: "Total number of operator commands dispatched",
		},
		[]string{"command"},
	)

	commandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "finalizer_command_duration_seconds",
			Help:    "Command duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)

	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finalizer_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

type Server struct {
	conf *Config
}

type Config struct {
	Port int `default:"4014"`
}

func New(conf *Config) *Server {
	if conf == nil {
		conf = &Config{}
		envconfig.MustProcess("metric", conf)
	}
	return &Server{conf: conf}
}

func (s *Server) Start() error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", s.conf.Port), nil)
}

// RecordCommand records a dispatched command.
func RecordCommand(command string) {
	commandsTotal.WithLabelValues(command).Inc()
}

// RecordCommandDuration records how long a command took.
func RecordCommandDuration(command string, duration time.Duration) {
	commandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordError records an error metric.
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}
