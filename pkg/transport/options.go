package transport

import "time"

type Options struct {
	ReadTimeout     time.Duration
	DialTimeout     time.Duration
	KeepAlive       bool
	KeepAlivePeriod time.Duration
	NoDelay         bool
}

func DefaultOptions() *Options {
	return &Options{
		ReadTimeout: 5 * time.Second,
		DialTimeout: 5 * time.Second,

		KeepAlive:       true,
		KeepAlivePeriod: 30 * time.Second,

		NoDelay: true,
	}
}

type Option func(*Options)

func WithReadTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.ReadTimeout = timeout
	}
}

func WithDialTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.DialTimeout = timeout
	}
}

func WithKeepAlive(keepAlive bool, period time.Duration) Option {
	return func(opts *Options) {
		opts.KeepAlive = keepAlive
		opts.KeepAlivePeriod = period
	}
}

func WithNoDelay(noDelay bool) Option {
	return func(opts *Options) {
		opts.NoDelay = noDelay
	}
}
