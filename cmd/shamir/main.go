// Command shamir recovers Shamir secrets from share documents.
//
// For each file it prints "<file>: <secret>" on stdout, or an error line on
// stderr, and moves on to the next file. It exits non-zero only when no file
// is given or the flags are invalid.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/izouxv/goShamir/batch"
	"github.com/izouxv/goShamir/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.Default()
	if err := cfg.FromEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fs := flag.NewFlagSet("shamir", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: shamir [flags] <file1.json> [file2.json ...]")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "arithmetic: rational, fixed or dynamic")
	fs.StringVar(&cfg.Modulus, "modulus", cfg.Modulus, "prime for the fixed strategy: p128, m521, secp256k1, P-256, P-384, P-521 or a decimal prime")
	fs.Int64Var(&cfg.Margin, "margin", cfg.Margin, "dynamic strategy: distance above the largest share value to start the prime search")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "dynamic strategy: Miller-Rabin rounds per candidate")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "documents processed concurrently")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: dec or hex")
	fs.BoolVar(&cfg.Digest, "digest", cfg.Digest, "append the SHA3-256 fingerprint of each secret")
	fs.StringVar(&cfg.Password, "password", cfg.Password, "password for sealed documents (default $"+config.EnvPassword+")")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		return 1
	}

	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()

	runner, err := batch.New(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := runner.Run(ctx, files)
	batch.Report(os.Stdout, os.Stderr, results, cfg.Format, cfg.Digest)
	return 0
}
