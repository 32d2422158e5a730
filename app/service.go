package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	apitt "github.com/rozvrh-svg/rozvrh/api/timetable"
	"github.com/rozvrh-svg/rozvrh/config"
	coremetrics "github.com/rozvrh-svg/rozvrh/core/metrics"
	coremon "github.com/rozvrh-svg/rozvrh/core/monitoring"
	"github.com/rozvrh-svg/rozvrh/core/source"
	"github.com/rozvrh-svg/rozvrh/infra/logger"
	"github.com/rozvrh-svg/rozvrh/infra/metrics"
	"github.com/rozvrh-svg/rozvrh/infra/monitoring"
	_ "github.com/rozvrh-svg/rozvrh/infra/store"
	"github.com/rozvrh-svg/rozvrh/internal/eventbus"
)

// Service wires the event source, renderer, metrics and HTTP server.
type Service struct {
	Renderer *Renderer
	Source   source.Source

	cfg     *config.Config
	sink    coremetrics.Sink
	bus     *eventbus.TypedBus[coremetrics.RenderEvent]
	monitor coremon.Monitor
	log     logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	src, err := source.New(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("event source: %w", err)
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	mon, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		logg.Warnf("sentry disabled: %v", err)
		mon = coremon.NopMonitor{}
	}
	bus := eventbus.NewTyped[coremetrics.RenderEvent]()
	svc := &Service{
		Source:   src,
		Renderer: NewRenderer(src, cfg.Layout, WithBus(bus), WithMonitor(mon)),
		cfg:      cfg,
		sink:     sink,
		bus:      bus,
		monitor:  mon,
		log:      logg,
	}
	return svc, nil
}

// Handler returns the HTTP routes of the service.
func (s *Service) Handler() (http.Handler, error) {
	start, end, err := s.cfg.Semester.Range()
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/svg/", apitt.NewWeeklyHandler(s.Renderer, nil))
	mux.Handle("/svgs/", apitt.NewSemesterHandler(s.Renderer, apitt.SemesterDefaults{
		Start: start,
		End:   end,
		Group: s.cfg.Semester.Group,
	}))
	mux.Handle("/health", apitt.NewHealthHandler())
	return mux, nil
}

// Run serves HTTP and records metrics until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	defer s.monitor.Recover()
	handler, err := s.Handler()
	if err != nil {
		return err
	}
	collected := metrics.StartEventCollector(ctx, s.bus, s.sink)

	if addr := s.cfg.Metrics.PrometheusAddress; addr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, addr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              s.cfg.Server.Address,
		Handler:           handler,
		ReadHeaderTimeout: time.Duration(s.cfg.Server.ReadTimeoutSeconds) * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case <-ctx.Done():
	case err = <-errc:
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		s.log.Errorf("http shutdown: %v", serr)
	}
	s.bus.Close()
	<-collected
	return err
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	s.monitor.Flush(2 * time.Second)
	return s.Source.Close()
}
