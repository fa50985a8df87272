// Package session hosts the parse → bind → evaluate pipeline over one
// long-lived variable environment.
package session

import (
	"context"
	"io"
	"log/slog"

	"calclang/pkg/binding"
	"calclang/pkg/diagnostics"
	"calclang/pkg/evaluator"
	"calclang/pkg/syntax"
	"calclang/pkg/value"
)

// Stage identifies the pipeline stage that first reported a diagnostic.
type Stage int

const (
	StageNone Stage = iota
	StageParse
	StageBind
	StageEvaluate
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageBind:
		return "bind"
	case StageEvaluate:
		return "evaluate"
	}
	return "none"
}

// Result is the outcome of running one program.
type Result struct {
	// Value is nil when parsing failed and binding was skipped.
	Value       value.Value
	Diagnostics []string
	Stage       Stage
}

// OK reports whether the program ran without diagnostics, i.e. whether Value
// should be shown to the user.
func (r Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// Session runs programs one after another against a shared environment.
// It is not safe for concurrent use.
type Session struct {
	env    *value.Environment
	logger *slog.Logger
}

type Option func(*Session)

// WithLogger sets the logger used for stage tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithEnvironment makes the session use env instead of an empty one.
func WithEnvironment(env *value.Environment) Option {
	return func(s *Session) {
		s.env = env
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		env:    value.NewEnvironment(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Environment returns the session's variables.
func (s *Session) Environment() *value.Environment {
	return s.env
}

// Run parses, binds and evaluates src. When parsing reports anything, binding
// is skipped and only the parse diagnostics are returned. Otherwise the
// program is bound and evaluated best-effort: assignments that execute are
// kept in the environment even if diagnostics were reported.
func (s *Session) Run(src string) Result {
	tokens := syntax.Lex(src)
	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		invalid := 0
		for _, tok := range tokens {
			if tok.Type == syntax.INVALID {
				invalid++
			}
		}
		s.logger.Debug("lexed", "tokens", len(tokens), "invalid", invalid)
	}

	tree := syntax.NewParser(tokens).Parse()
	if len(tree.Diagnostics) > 0 {
		s.logger.Debug("parse failed", "diagnostics", len(tree.Diagnostics))
		return Result{Diagnostics: tree.Diagnostics, Stage: StageParse}
	}

	diags := diagnostics.New()
	bound := binding.Bind(diags, s.env, tree.Root)
	bindCount := diags.Len()
	s.logger.Debug("bound", "root", bound.String(), "diagnostics", bindCount)

	v := evaluator.Evaluate(bound, diags, s.env)
	s.logger.Debug("evaluated", "type", v.Type().String(), "diagnostics", diags.Len()-bindCount, "variables", s.env.Len())

	res := Result{Value: v, Diagnostics: diags.Messages()}
	switch {
	case bindCount > 0:
		res.Stage = StageBind
	case diags.Len() > 0:
		res.Stage = StageEvaluate
	}
	return res
}
