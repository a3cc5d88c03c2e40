package ingest

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"evtxview/internal/app/errors"
	"evtxview/internal/app/record"
	"evtxview/internal/app/worker"
	"evtxview/internal/config/logger"
)

//go:generate mockgen -source=source.go -destination=source_mock.go -package=ingest

// Source is a non-blocking supply of parsed records from one input
type Source interface {
	Origin() string
	Poll(limit int) []record.Record
	Done() bool
	Err() error
}

// Options configures a FileSource
type Options struct {
	Buffer int
	Follow bool
}

// FileSource decodes a JSON Lines file on a worker goroutine and hands records over
// through a bounded channel. A malformed line ends the source; records decoded before
// it remain available.
type FileSource struct {
	path    string
	opts    Options
	decoder *Decoder
	records chan record.Record
	log     logger.Logger

	// set by the consumer once the channel is drained and closed
	finished bool

	mu  sync.Mutex
	err error
}

// NewFileSource creates a source for path. Nothing is read until Start.
func NewFileSource(path string, opts Options, decoder *Decoder, log logger.Logger) *FileSource {
	return &FileSource{
		path:    path,
		opts:    opts,
		decoder: decoder,
		records: make(chan record.Record, max(1, opts.Buffer)),
		log:     log,
	}
}

// Start schedules decoding on pool
func (s *FileSource) Start(ctx context.Context, pool worker.Pool) {
	if err := pool.Go(ctx, func() { s.run(ctx) }); err != nil {
		s.fail(err)
		close(s.records)
	}
}

// Origin returns the source path
func (s *FileSource) Origin() string {
	return s.path
}

// Poll returns up to limit records that are ready, without blocking
func (s *FileSource) Poll(limit int) []record.Record {
	if s.finished || limit <= 0 {
		return nil
	}

	var out []record.Record

	for len(out) < limit {
		select {
		case r, ok := <-s.records:
			if !ok {
				s.finished = true
				return out
			}

			out = append(out, r)
		default:
			return out
		}
	}

	return out
}

// Done reports whether every record has been handed over and no more will arrive
func (s *FileSource) Done() bool {
	return s.finished
}

// Err returns the error that stopped the source, if any
func (s *FileSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *FileSource) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err == nil {
		s.err = err
	}
}

func (s *FileSource) run(ctx context.Context) {
	defer close(s.records)

	rc, compression, err := Open(s.path)
	if err != nil {
		s.fail(err)
		return
	}
	defer rc.Close()

	var f *follower

	if s.opts.Follow && compression == CompressionNone {
		f, err = newFollower(s.path)
		if err != nil {
			s.log.Warn().Err(err).Msgf("Cannot follow '%s', reading to end only", s.path)
		} else {
			defer f.Close()
		}
	}

	s.log.Debug().Msgf("Reading '%s' (%s)", s.path, compression)

	reader := bufio.NewReaderSize(rc, 64*1024)
	line := 0

	var pending []byte

	for {
		chunk, err := reader.ReadBytes('\n')
		pending = append(pending, chunk...)

		if err == nil {
			line++
			if !s.emit(ctx, pending, line) {
				return
			}

			pending = pending[:0]

			continue
		}

		if !errors.Is(err, io.EOF) {
			s.fail(fmt.Errorf("%w: %s: %w", errors.ErrFailedToOpenSource, s.path, err))
			return
		}

		if f == nil {
			if len(pending) > 0 {
				s.emit(ctx, pending, line+1)
			}

			return
		}

		if err := f.Wait(ctx); err != nil {
			if !errors.Is(err, context.Canceled) {
				s.fail(err)
			}

			return
		}
	}
}

// emit decodes one line and delivers it. Returns false when the source must stop.
func (s *FileSource) emit(ctx context.Context, raw []byte, line int) bool {
	doc := bytes.TrimSpace(raw)
	if len(doc) == 0 {
		return true
	}

	r, err := s.decoder.Decode(doc, s.path)
	if err != nil {
		s.fail(fmt.Errorf("%s:%d: %w", s.path, line, err))
		return false
	}

	select {
	case s.records <- r:
		return true
	case <-ctx.Done():
		return false
	}
}
