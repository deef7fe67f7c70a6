package commands

import (
	"context"
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/server/httpserver"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/watch"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr   string `short:"a" help:"Listen address (overrides server.addr)"`
	Watch  bool   `short:"w" help:"Reload the site when the configuration file changes"`
	Pretty bool   `help:"Indent JSON responses"`
}

func (c *ServeCmd) Run(ctx context.Context, _ *Global, root *CLI) error {
	s, cfg, err := root.loadSite()
	if err != nil {
		return err
	}

	reg := prom.NewRegistry()
	reg.MustRegister(promcollect.NewGoCollector(), promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}))
	recorder := metrics.NewPrometheusRecorder(reg)
	current := site.NewCurrent(s)

	if c.Watch {
		w, err := watch.New(root.Config, current, watch.Options{Recorder: recorder, Snapshot: cfg.Snapshot()})
		if err != nil {
			return derrors.WrapError(err, derrors.CategoryRuntime, "config watcher failed").Build()
		}
		if err := w.Start(ctx); err != nil {
			return derrors.WrapError(err, derrors.CategoryRuntime, "config watcher failed").Build()
		}
		defer func() {
			if err := w.Stop(); err != nil {
				slog.Warn("Failed to stop config watcher", "error", err)
			}
		}()
	}

	addr := cfg.Server.Addr
	if c.Addr != "" {
		addr = c.Addr
	}
	srv := httpserver.New(current, httpserver.Options{
		Addr:        addr,
		MetricsPath: cfg.Server.MetricsPath,
		Pretty:      cfg.Server.Pretty || c.Pretty,
		Recorder:    recorder,
		Gatherer:    reg,
		Logger:      slog.Default(),
	})
	return srv.Start(ctx)
}
