package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/Ning0612/lstree/internal/adapter"
	"github.com/Ning0612/lstree/internal/adapter/local"
	"github.com/Ning0612/lstree/internal/config"
	"github.com/Ning0612/lstree/internal/domain"
	"github.com/Ning0612/lstree/internal/logger"
	"github.com/Ning0612/lstree/internal/node"
	"github.com/Ning0612/lstree/internal/progress"
	"github.com/Ning0612/lstree/internal/tree"
)

// ListService orchestrates a listing: walk, build nodes, assemble, render
type ListService struct {
	config   *config.Context
	reporter progress.Reporter
}

// NewListService creates a new list service. cfg must already be resolved.
func NewListService(cfg *config.Context) (*ListService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &ListService{config: cfg}, nil
}

// SetProgressReporter sets the progress reporter for node construction
func (s *ListService) SetProgressReporter(reporter progress.Reporter) {
	s.reporter = reporter
}

// getReporter returns the current progress reporter or a null reporter
func (s *ListService) getReporter() progress.Reporter {
	if s.reporter != nil {
		return s.reporter
	}
	return progress.NullReporter{}
}

// Build walks the configured directory and assembles the tree
func (s *ListService) Build(ctx context.Context) (*tree.Tree, error) {
	log := logger.With("component", "service")

	a, err := local.New(s.config.Dir, local.Options{
		Hidden:   s.config.Hidden,
		NoIgnore: s.config.NoIgnore,
		MaxDepth: s.config.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.config.Dir, err)
	}

	entries, err := a.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", a.Root(), err)
	}
	log.Debug("walk complete", "root", a.Root(), "entries", len(entries))

	nodes, err := s.buildNodes(ctx, entries)
	if err != nil {
		return nil, err
	}

	t, err := tree.New(nodes, s.config)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble tree for %s: %w", a.Root(), err)
	}
	return t, nil
}

// buildNodes constructs nodes in parallel, bounded by the configured thread
// count. Entries whose metadata cannot be read are logged and skipped; the
// result keeps walk order.
func (s *ListService) buildNodes(ctx context.Context, entries []adapter.Entry) ([]*node.Node, error) {
	log := logger.With("component", "service")
	reporter := s.getReporter()
	reporter.SetTotal(len(entries))
	defer reporter.Done()

	built := make([]*node.Node, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	if s.config.Threads > 0 {
		g.SetLimit(s.config.Threads)
	}

	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			n, err := node.New(e, s.config)
			if err != nil {
				var me *domain.MetadataError
				if errors.As(err, &me) {
					log.Warn("skipping entry", "path", me.Path, "error", me.Err)
					reporter.Skipped(e.Path(), err)
					return nil
				}
				return err
			}

			built[i] = n
			reporter.Built(e.Path())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	nodes := built[:0]
	for _, n := range built {
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// Run builds the tree and writes the listing, followed by the summary
// footer, to w
func (s *ListService) Run(ctx context.Context, w io.Writer) (tree.Stats, error) {
	t, err := s.Build(ctx)
	if err != nil {
		return tree.Stats{}, err
	}

	if err := t.Render(w); err != nil {
		return tree.Stats{}, fmt.Errorf("failed to render: %w", err)
	}
	if err := t.WriteSummary(w); err != nil {
		return tree.Stats{}, fmt.Errorf("failed to render: %w", err)
	}
	return t.Stats(), nil
}
