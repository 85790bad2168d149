package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/carbonfocus/internal/input"
	"github.com/rshade/carbonfocus/internal/inventory"
	"github.com/rshade/carbonfocus/internal/logging"
	"github.com/rshade/carbonfocus/internal/session"
)

// FileResult is the snapshot of a single activity document.
type FileResult struct {
	Source       string             `json:"source"`
	Organization input.Profile      `json:"organization"`
	Snapshot     inventory.Snapshot `json:"snapshot"`
}

// Result is a consolidated calculation.
type Result struct {
	// Organization is the first document's normalized profile.
	Organization input.Profile      `json:"organization"`
	Snapshot     inventory.Snapshot `json:"snapshot"`
	Files        []FileResult       `json:"files"`
	SessionID    string             `json:"session_id,omitempty"`
}

// CalculateFiles loads, validates and aggregates every path, then merges
// the snapshots in argument order. The first failing file cancels the rest.
func (e *Engine) CalculateFiles(ctx context.Context, paths []string) (Result, error) {
	if len(paths) == 0 {
		return Result{}, ErrNoInputs
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "calculate_files").
		Int("files", len(paths)).
		Int("concurrency", e.concurrency).
		Msg("calculating inventory")

	files := make([]FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, in, err := input.Load(gctx, path)
			if err != nil {
				return err
			}
			files[i] = FileResult{
				Source:       path,
				Organization: f.Profile(),
				Snapshot:     inventory.Aggregate(in),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return e.finish(ctx, files), nil
}

// CalculateDocument decodes, validates and aggregates one in-memory
// activity document. source names it in the session and in logs.
func (e *Engine) CalculateDocument(ctx context.Context, data []byte, source string) (Result, error) {
	f, err := input.Parse(data)
	if err != nil {
		return Result{}, err
	}
	f.Path = source

	in, err := f.ToInput(ctx)
	if err != nil {
		return Result{}, err
	}

	return e.finish(ctx, []FileResult{{
		Source:       source,
		Organization: f.Profile(),
		Snapshot:     inventory.Aggregate(in),
	}}), nil
}

func (e *Engine) finish(ctx context.Context, files []FileResult) Result {
	snap := files[0].Snapshot
	sources := make([]string, len(files))
	for i, f := range files {
		if i > 0 {
			snap = snap.Merge(f.Snapshot)
		}
		sources[i] = f.Source
	}

	res := Result{
		Organization: files[0].Organization,
		Snapshot:     snap,
		Files:        files,
	}

	sess := session.New(res.Organization, snap, sources...)
	if e.store != nil && e.store.IsEnabled() {
		e.save(ctx, sess)
		res.SessionID = sess.ID
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "finish").
		Float64("total", snap.Total).
		Strs("sources", sources).
		Msg("inventory calculated")

	return res
}
