package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"calclang/pkg/config"
	"calclang/pkg/session"
)

// stringList collects repeated -e flags in order.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, "; ") }
func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// logLevelVar adapts a slog.LevelVar to flag.Value.
type logLevelVar struct {
	levelVar *slog.LevelVar
	set      bool
}

func (v *logLevelVar) String() string {
	if v.levelVar == nil {
		return ""
	}
	return v.levelVar.Level().String()
}

func (v *logLevelVar) Set(s string) error {
	level, err := config.ParseLevel(s)
	if err != nil {
		return err
	}
	v.levelVar.Set(level)
	v.set = true
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be tested. It returns the
// exit status: 0 on success, 1 when any program reported diagnostics, 2 on
// usage or configuration errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("calclang", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		programs   stringList
		configPath = fs.String("config", "", "YAML session file (log_level, variables)")
		isolate    = fs.Bool("isolate", false, "run each -e program in its own environment, concurrently")
		jobs       = fs.Int("j", 4, "maximum concurrent programs with -isolate")
		logLevel   = new(slog.LevelVar)
		levelFlag  = &logLevelVar{levelVar: logLevel}
	)
	fs.Var(&programs, "e", "program text to run (repeatable; default: read stdin)")
	fs.Var(levelFlag, "log-level", "set log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: calclang [-config file.yaml] [-log-level lvl] [-isolate] [-e program]...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		cfg = loaded
	}
	if !levelFlag.set {
		logLevel.Set(cfg.Level())
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))
	ctx := context.Background()

	if len(programs) == 0 {
		src, err := io.ReadAll(stdin)
		if err != nil {
			logger.ErrorContext(ctx, "read stdin", slog.Any("error", err))
			return 2
		}
		programs = append(programs, string(src))
	}
	logger.DebugContext(ctx, "starting", "programs", len(programs), "isolate", *isolate, "variables", len(cfg.Variables))

	var results []session.Result
	if *isolate {
		var err error
		results, err = session.RunBatch(ctx, cfg.Environment(), programs, *jobs, session.WithLogger(logger))
		if err != nil {
			logger.ErrorContext(ctx, "batch failed", slog.Any("error", err))
			return 2
		}
	} else {
		s := session.New(session.WithEnvironment(cfg.Environment()), session.WithLogger(logger))
		for _, src := range programs {
			results = append(results, s.Run(src))
		}
	}

	status := 0
	for _, res := range results {
		if !res.OK() {
			status = 1
			for _, d := range res.Diagnostics {
				fmt.Fprintln(stderr, d)
			}
			continue
		}
		fmt.Fprintln(stdout, res.Value)
	}
	return status
}
