package sqlseq

import "seqkit/closer"

type Option func(*config)

type config struct {
	connHooks   []closer.Hook
	cursorHooks []closer.Hook
	closeHooks  []closer.Hook
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithConnHooks runs hooks when the connection is released, whether by closing the
// sequence or by unwinding a failed query. The release is quiet, so hook failures are
// only logged.
func WithConnHooks(hooks ...closer.Hook) Option {
	return func(cfg *config) {
		cfg.connHooks = append(cfg.connHooks, hooks...)
	}
}

// WithCursorHooks runs hooks when the cursor is closed. The close is quiet, so hook
// failures are only logged.
func WithCursorHooks(hooks ...closer.Hook) Option {
	return func(cfg *config) {
		cfg.cursorHooks = append(cfg.cursorHooks, hooks...)
	}
}

// WithCloseHooks runs hooks when the sequence is closed, before the cursor and the
// connection are released. Hook failures are returned by Close.
func WithCloseHooks(hooks ...closer.Hook) Option {
	return func(cfg *config) {
		cfg.closeHooks = append(cfg.closeHooks, hooks...)
	}
}
