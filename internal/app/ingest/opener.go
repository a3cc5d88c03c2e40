package ingest

import (
	"context"
	"fmt"

	"evtxview/internal/app/errors"
	"evtxview/internal/app/worker"
	"evtxview/internal/config"
	"evtxview/internal/config/logger"
)

//go:generate mockgen -source=opener.go -destination=opener_mock.go -package=ingest

// Opener turns the input arguments into started sources
type Opener interface {
	Open(ctx context.Context, args []string) ([]Source, error)
}

type opener struct {
	cfg     *config.Config
	pool    worker.Pool
	decoder *Decoder
	log     logger.Logger
}

// NewOpener creates an Opener that decodes files on pool
func NewOpener(cfg *config.Config, pool worker.Pool, log logger.Logger) Opener {
	return &opener{
		cfg:     cfg,
		pool:    pool,
		decoder: NewDecoder(),
		log:     log.WithComponent("INGEST"),
	}
}

// Open resolves args to files and starts one source per file
func (o *opener) Open(ctx context.Context, args []string) ([]Source, error) {
	if len(args) == 0 {
		return nil, errors.ErrNoInputFiles
	}

	m, err := NewMatcher(o.cfg.Ingest.Include)
	if err != nil {
		return nil, err
	}

	files, err := Discover(args, m)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: nothing matched %v", errors.ErrNoInputFiles, o.cfg.Ingest.Include)
	}

	opts := Options{Buffer: o.cfg.Ingest.Buffer, Follow: o.cfg.Ingest.Follow}
	sources := make([]Source, 0, len(files))

	for _, path := range files {
		s := NewFileSource(path, opts, o.decoder, o.log)
		s.Start(ctx, o.pool)
		sources = append(sources, s)
	}

	o.log.Info().Msgf("Opened %d source(s) with %d worker(s)", len(sources), o.pool.Size())

	return sources, nil
}
