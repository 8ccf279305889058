// Package batch recovers secrets from many share documents concurrently.
// A failure in one document never affects the others.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/izouxv/goShamir/config"
	"github.com/izouxv/goShamir/document"
	"github.com/izouxv/goShamir/shamir"
	"github.com/izouxv/goShamir/utils"
	"github.com/izouxv/goShamir/vault"
)

// ErrPasswordRequired is returned for a sealed document when no password is configured.
var ErrPasswordRequired = errors.New("sealed document requires a password")

// Loader fetches the raw bytes of a share document by identifier.
type Loader interface {
	Load(ctx context.Context, id string) ([]byte, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, id string) ([]byte, error)

func (f LoaderFunc) Load(ctx context.Context, id string) ([]byte, error) { return f(ctx, id) }

// FileLoader treats identifiers as file paths.
type FileLoader struct{}

func (FileLoader) Load(_ context.Context, id string) ([]byte, error) {
	return os.ReadFile(id)
}

// Result is the outcome for one identifier.
type Result struct {
	ID       string
	Recovery *shamir.Recovery
	Err      error
}

// Runner recovers secrets for a list of identifiers.
type Runner struct {
	Loader Loader

	opts     shamir.Options
	password string
	workers  int
	logger   *zap.Logger
}

// New builds a Runner from cfg. A nil logger disables logging.
func New(cfg *config.Config, logger *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		Loader:   FileLoader{},
		opts:     opts,
		password: cfg.Password,
		workers:  cfg.Workers,
		logger:   logger,
	}, nil
}

// Solve loads, decodes and recovers a single document.
func (r *Runner) Solve(ctx context.Context, id string) (*shamir.Recovery, error) {
	data, err := r.Loader.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if vault.IsSealed(data) {
		if r.password == "" {
			return nil, ErrPasswordRequired
		}
		if data, err = vault.Open(data, r.password); err != nil {
			return nil, err
		}
		r.logger.Debug("opened sealed document", zap.String("id", id))
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, err
	}
	if doc.N != 0 && doc.N != len(doc.Shares) {
		r.logger.Warn("advertised share count differs from shares present",
			zap.String("id", id), zap.Int("n", doc.N), zap.Int("shares", len(doc.Shares)))
	}

	start := time.Now()
	rec, err := shamir.Recover(doc.Shares, doc.K, r.opts)
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.String("id", id),
		zap.Stringer("strategy", r.opts.Strategy),
		zap.Int("k", doc.K),
		zap.Int("shares", len(doc.Shares)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if rec.Modulus != nil {
		fields = append(fields, zap.Int("modulus_bits", rec.Modulus.BitLen()))
	}
	r.logger.Debug("recovered secret", fields...)
	return rec, nil
}

// Run processes ids concurrently and returns one result per id, in input
// order. Identifiers not started before ctx is done fail with ctx.Err().
func (r *Runner) Run(ctx context.Context, ids []string) []Result {
	results := make([]Result, len(ids))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			results[i].ID = id
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			rec, err := r.solveIsolated(ctx, id)
			if err != nil {
				r.logger.Warn("recovery failed", zap.String("id", id), zap.Error(err))
				results[i].Err = err
				return nil
			}
			results[i].Recovery = rec
			return nil
		})
	}
	// Workers never return an error; failures live in results.
	_ = g.Wait()
	return results
}

// solveIsolated runs Solve and turns a panic into an error for this id only.
func (r *Runner) solveIsolated(ctx context.Context, id string) (rec *shamir.Recovery, err error) {
	defer func() {
		if p := recover(); p != nil {
			rec, err = nil, fmt.Errorf("%s: panic: %v", id, p)
		}
	}()
	return r.Solve(ctx, id)
}

// Line renders a result as "<id>: <secret>" or "<id>: error: <msg>".
func (res Result) Line(format string, digest bool) string {
	if res.Err != nil {
		return fmt.Sprintf("%s: error: %v", res.ID, res.Err)
	}
	secret := res.Recovery.Secret
	var s string
	if format == config.FormatHex {
		s = hexutil.EncodeBig(secret)
	} else {
		s = secret.String()
	}
	if digest {
		s += " sha3:" + utils.Fingerprint(secret)
	}
	return fmt.Sprintf("%s: %s", res.ID, s)
}

// Report writes successes to out and failures to errOut, one line each, and
// returns the number of failures.
func Report(out, errOut io.Writer, results []Result, format string, digest bool) (failed int) {
	for _, res := range results {
		w := out
		if res.Err != nil {
			w = errOut
			failed++
		}
		fmt.Fprintln(w, res.Line(format, digest))
	}
	return failed
}
