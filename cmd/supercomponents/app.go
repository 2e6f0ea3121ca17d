package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/jonathan/supercomponents/internal/analyzer"
	"github.com/jonathan/supercomponents/internal/cache"
	"github.com/jonathan/supercomponents/internal/config"
	"github.com/jonathan/supercomponents/internal/llm"
	"github.com/jonathan/supercomponents/internal/metrics"
	"github.com/jonathan/supercomponents/internal/output"
	"github.com/jonathan/supercomponents/internal/ratelimit"
	"github.com/jonathan/supercomponents/internal/workflow"
)

// app holds the collaborators shared by the commands.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	collector *metrics.Collector
	out       io.Writer
	writer    output.Writer
}

// newAdapter returns the canned adapter in mock mode, otherwise the provider
// selected from the credentials in the environment.
func (a *app) newAdapter() (llm.Adapter, error) {
	if a.cfg.MockAI {
		return llm.NewMockAdapter(), nil
	}
	return llm.NewAdapterFromSettings(llm.SettingsFromEnv())
}

// buildWorkflow wires adapter, guard, limiter, cache and analyzer into a
// workflow reporting to the app's collector.
func (a *app) buildWorkflow() (*workflow.Workflow, error) {
	adapter, err := a.newAdapter()
	if err != nil {
		return nil, err
	}

	guarded := llm.NewGuard(adapter, llm.GuardConfig{
		Timeout:       time.Duration(a.cfg.RequestTimeoutMS) * time.Millisecond,
		MaxConcurrent: int64(a.cfg.MaxConcurrentRequests),
		Observer:      a.collector,
	})

	limiter := ratelimit.NewLimiter(ratelimit.LoadConfig())
	limiter.SetObserver(a.collector)

	responses := cache.New(a.cfg.CacheMaxEntries)
	responses.SetObserver(a.collector)

	an := analyzer.New(guarded, limiter, responses, analyzer.Options{Logger: a.logger})
	a.logger.Debug("analyzer ready", "provider", an.Provider(), "environment", a.cfg.Environment)

	writer := a.writer
	if writer == nil {
		writer = output.NewFSWriter()
	}
	return workflow.New(workflow.Config{
		Analyzer: an,
		Writer:   writer,
		Logger:   a.logger,
		Out:      a.out,
		Observer: a.collector,
	}), nil
}

// flushMetrics writes the metrics textfile when one is configured.
func (a *app) flushMetrics() {
	if a.cfg.MetricsFile == "" {
		return
	}
	if err := a.collector.WriteTextfile(a.cfg.MetricsFile); err != nil {
		a.logger.Warn("could not write metrics", "error", err)
	}
}
