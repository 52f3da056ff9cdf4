package poller

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/deuexpo/keepa/internal/api"
	"github.com/deuexpo/keepa/internal/metrics"
)

// ProductHandler receives fetched product records.
type ProductHandler interface {
	HandleProduct(p api.Product) error
}

// ProductHandlerFunc is a function adapter for ProductHandler.
type ProductHandlerFunc func(api.Product) error

func (f ProductHandlerFunc) HandleProduct(p api.Product) error {
	return f(p)
}

// Config holds poller configuration.
type Config struct {
	Interval time.Duration // Poll interval (default: 1h)
	ASINs    []string      // Products fetched each cycle, max 100
	Rating   bool          // Also request rating and review-count histories
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval: time.Hour,
	}
}

// Poller periodically fetches product histories. Each cycle issues one
// batched request for all configured ASINs; the rate pacing lives in the
// API client, so cycles stretch rather than overlap when tokens run dry.
type Poller struct {
	cfg     Config
	client  *api.Client
	handler ProductHandler
	logger  *logrus.Logger
	metrics *metrics.Set

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Poller. The metrics set may be nil.
func New(cfg Config, client *api.Client, handler ProductHandler, logger *logrus.Logger, set *metrics.Set) *Poller {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Poller{
		cfg:     cfg,
		client:  client,
		handler: handler,
		logger:  logger,
		metrics: set,
	}
}

// Start begins the polling loop.
func (p *Poller) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run()

	p.logger.WithFields(logrus.Fields{
		"interval": p.cfg.Interval,
		"asins":    len(p.cfg.ASINs),
	}).Info("product poller started")

	return nil
}

// Stop gracefully shuts down the poller. Cancelling the poll context also
// aborts any in-flight retry or token-refill wait.
func (p *Poller) Stop(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("product poller stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main polling loop.
func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	// Poll immediately on start.
	p.poll()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.poll()
		}
	}
}

// poll fetches all configured products in one call and hands each record
// to the handler.
func (p *Poller) poll() {
	start := time.Now()

	products, err := p.client.GetProducts(p.ctx, p.cfg.ASINs, api.ProductsOptions{
		History: true,
		Rating:  p.cfg.Rating,
	})
	if err != nil {
		if p.ctx.Err() == nil {
			p.logger.WithError(err).Warn("poll cycle failed")
		}
		if p.metrics != nil {
			p.metrics.PollErrors.Inc()
		}
		return
	}

	handled, failed := 0, 0
	for _, product := range products {
		if p.handler == nil {
			continue
		}
		if err := p.handler.HandleProduct(product); err != nil {
			p.logger.WithField("asin", product.ASIN).WithError(err).Warn("product handler failed")
			failed++
			continue
		}
		handled++
	}

	if p.metrics != nil {
		p.metrics.Polls.Inc()
		p.metrics.ProductsFetched.Add(float64(len(products)))
		if last := p.client.LastResponse(); last != nil {
			p.metrics.TokensLeft.Set(float64(last.TokensLeft))
		}
	}

	p.logger.WithFields(logrus.Fields{
		"products": len(products),
		"handled":  handled,
		"failed":   failed,
		"duration": time.Since(start),
	}).Info("poll cycle complete")
}
