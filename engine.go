package fpmatch

import (
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/npillmayer/fpmatch/cache"
	"github.com/npillmayer/fpmatch/config"
	"github.com/npillmayer/fpmatch/extractor"
	"github.com/npillmayer/fpmatch/matcher"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// Engine compiles patterns, caching compiled trees by pattern text, and
// evaluates extractor calls of its patterns against its registry.
// An Engine is safe for concurrent use.
type Engine struct {
	registry *extractor.Registry
	cache    *cache.Cache[*matcher.Compiled]
}

type options struct {
	capacity int
	registry *extractor.Registry
}

// Option configures an Engine.
type Option func(*options)

// WithCapacity sets the capacity of the compiled-pattern cache. Values < 1
// select cache.DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithRegistry makes the engine resolve extractor calls with reg instead of
// a fresh default registry.
func WithRegistry(reg *extractor.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithConfig applies the engine settings of cfg, i.e. the cache capacity.
// Tracers are process-wide; their level is set by Default only.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.capacity = cfg.CacheCapacity
	}
}

// NewEngine creates an engine. Without options it uses a cache of
// cache.DefaultCapacity entries and a registry holding the default
// extractors.
func NewEngine(opts ...Option) (*Engine, error) {
	o := options{capacity: cache.DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = extractor.NewDefaultRegistry()
	}
	c, err := cache.New(o.capacity, matcher.Compile)
	if err != nil {
		return nil, errors.Wrap(err, "fpmatch: cannot create engine")
	}
	tracer().Debugf("new engine with cache capacity %d", o.capacity)
	return &Engine{registry: o.registry, cache: c}, nil
}

// Compile returns the pattern for text, compiling it on a cache miss.
// Syntax errors are of type *PatternSyntaxError.
func (e *Engine) Compile(text string) (*Pattern, error) {
	c, err := e.cache.GetOrCompile(text)
	if err != nil {
		return nil, err
	}
	return &Pattern{compiled: c, registry: e.registry}, nil
}

// MustCompile is like Compile but panics on syntax errors.
func (e *Engine) MustCompile(text string) *Pattern {
	p, err := e.Compile(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Precompile compiles all texts into the cache and reports every pattern
// which fails to compile.
func (e *Engine) Precompile(texts ...string) error {
	var result *multierror.Error
	for _, text := range texts {
		if _, err := e.cache.GetOrCompile(text); err != nil {
			result = multierror.Append(result, errors.WithMessagef(err, "pattern %q", text))
		}
	}
	return result.ErrorOrNil()
}

// Register registers fn under names with the engine's registry.
// Patterns compiled earlier pick up the registration, as extractor calls
// are resolved at match time.
func (e *Engine) Register(fn extractor.Func, names ...string) {
	e.registry.Register(fn, names...)
}

// Registry returns the extractor registry of the engine.
func (e *Engine) Registry() *extractor.Registry {
	return e.registry
}

// IsCached reports whether the compiled tree for text is in the cache.
func (e *Engine) IsCached(text string) bool {
	return e.cache.Contains(text)
}

// CacheSize returns the number of cached patterns.
func (e *Engine) CacheSize() int {
	return e.cache.Len()
}

// --- Default engine --------------------------------------------------------

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine used by the package-level
// functions. It is created on first use, with settings from config.Load,
// and applies the configured trace level to the tracers of all packages of
// this module.
func Default() *Engine {
	defaultOnce.Do(func() {
		var opts []Option
		cfg, err := config.Load()
		if err != nil {
			tracer().Errorf("fpmatch: ignoring configuration: %v", err)
		} else {
			setTraceLevel(cfg.Level())
			opts = append(opts, WithConfig(cfg))
		}
		if defaultEngine, err = NewEngine(opts...); err != nil {
			panic(err)
		}
	})
	return defaultEngine
}

// Compile compiles text with the default engine.
func Compile(text string) (*Pattern, error) {
	return Default().Compile(text)
}

// MustCompile compiles text with the default engine and panics on syntax
// errors.
func MustCompile(text string) *Pattern {
	return Default().MustCompile(text)
}

// RegisterExtractor registers fn under names with the default engine.
func RegisterExtractor(fn extractor.Func, names ...string) {
	Default().Register(fn, names...)
}

var traceKeys = []string{"fp.match", "fp.syntax", "fp.matcher", "fp.extractor", "fp.cache"}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
