package pgxseq

import "seqkit/closer"

type Option func(*config)

type config struct {
	connHooks  []closer.Hook
	rowsHooks  []closer.Hook
	closeHooks []closer.Hook
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithConnHooks runs hooks when the connection goes back to the pool. Release has no
// error result, so hook failures are only logged.
func WithConnHooks(hooks ...closer.Hook) Option {
	return func(cfg *config) {
		cfg.connHooks = append(cfg.connHooks, hooks...)
	}
}

// WithRowsHooks runs hooks when the rows are closed. Hook failures are only logged.
func WithRowsHooks(hooks ...closer.Hook) Option {
	return func(cfg *config) {
		cfg.rowsHooks = append(cfg.rowsHooks, hooks...)
	}
}

// WithCloseHooks runs hooks when the sequence is closed, before the rows are closed and
// the connection released. Hook failures are returned by Close.
func WithCloseHooks(hooks ...closer.Hook) Option {
	return func(cfg *config) {
		cfg.closeHooks = append(cfg.closeHooks, hooks...)
	}
}
