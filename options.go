package numbuf

import (
	"github.com/hupe1980/numbuf/fs"
)

type options struct {
	logger *Logger
	fsys   fs.FileSystem
}

// Option configures New, Dump, DumpAll and Load behavior.
//
// Options exist primarily to keep the entry points uniform instead of
// exploding the API surface with variant constructors.
type Option func(*options)

// WithLogger configures the logger used for dump/load operations.
//
// If nil is passed, logging is disabled (the default).
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithFileSystem configures the filesystem used for local dumps and loads.
//
// The default is the local OS filesystem. Tests inject fault-injecting
// implementations here.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fsys = fsys
	}
}

func applyOptions(optFns []Option) *options {
	o := &options{
		logger: NoopLogger(),
		fsys:   fs.Default,
	}
	for _, fn := range optFns {
		fn(o)
	}
	return o
}
