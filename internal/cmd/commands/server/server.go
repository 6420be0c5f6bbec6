package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/hashicorp-forge/teamwork-proxy/internal/api"
	"github.com/hashicorp-forge/teamwork-proxy/internal/cmd/base"
	"github.com/hashicorp-forge/teamwork-proxy/internal/config"
	"github.com/hashicorp-forge/teamwork-proxy/internal/server"
	"github.com/hashicorp-forge/teamwork-proxy/pkg/teamwork"
)

const shutdownTimeout = 10 * time.Second

type Command struct {
	*base.Command

	flagConfig string
}

func (c *Command) Synopsis() string {
	return "Run the server"
}

func (c *Command) Help() string {
	return `Usage: teamwork-proxy server [options]

  Runs the proxy in front of the Teamwork API. Settings come from the
  optional config file (HCL, or YAML with a .yaml/.yml extension) and are
  overridden by the HOST, PORT, TEAMWORK_URL, API_KEY, PUBLIC_URL,
  REQUEST_TIMEOUT, LOG_LEVEL and LOG_JSON environment variables.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("server", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to an HCL or YAML config file",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := config.Load(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.run(ctx, cfg); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}

// run serves until ctx is done, then drains in-flight requests.
func (c *Command) run(ctx context.Context, cfg *config.Config) error {
	log := c.Log.Named("server")
	log.SetLevel(cfg.HCLogLevel())
	if cfg.LogJSON {
		log = hclog.New(&hclog.LoggerOptions{
			Name:       "teamwork-proxy",
			Level:      cfg.HCLogLevel(),
			JSONFormat: true,
		}).Named("server")
	}

	httpClient := teamwork.NewHTTPClient(cfg.Timeout())
	if cfg.TracingEnabled() {
		tracer.Start(
			tracer.WithService(cfg.Datadog.Service),
			tracer.WithLogger(ddLogger{log.Named("tracer")}),
		)
		defer tracer.Stop()
		httpClient = httptrace.WrapClient(httpClient)
	}

	tw, err := teamwork.NewClient(cfg.TeamworkURL, httpClient)
	if err != nil {
		return fmt.Errorf("error creating Teamwork client: %w", err)
	}

	srv := server.Server{
		Config:   cfg,
		Logger:   log,
		Teamwork: tw,
	}

	var handler http.Handler = api.Routes(srv)
	if cfg.TracingEnabled() {
		handler = httptrace.WrapHandler(handler, cfg.Datadog.Service, "teamwork-proxy.request")
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			"addr", cfg.Addr(),
			"teamwork_url", cfg.TeamworkURL,
			"static_api_key", cfg.HasAPIKey(),
		)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error running server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error running server: %w", err)
	}
	return nil
}

// ddLogger routes tracer output through hclog.
type ddLogger struct {
	log hclog.Logger
}

func (l ddLogger) Log(msg string) {
	l.log.Debug(msg)
}
