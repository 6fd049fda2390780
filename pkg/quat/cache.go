package quat

import (
	"sync"

	"go.uber.org/zap"
)

// Factory returns one shared instance per distinct Args. Entries are never
// evicted; call Reset to drop them. Args of different forms never share an
// entry, so Array and Components calls with equal numbers return distinct
// instances. Failed constructions are not cached.
type Factory[T any] struct {
	mu      sync.Mutex
	build   func(Args) (T, error)
	entries map[cacheKey]T
	log     *zap.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*factoryOptions)

type factoryOptions struct {
	log *zap.Logger
}

// WithLogger makes the factory log cache misses and resets at debug level.
func WithLogger(l *zap.Logger) FactoryOption {
	return func(o *factoryOptions) {
		o.log = l
	}
}

// NewFactory wraps build, typically NewQuaternion or NewIQuaternion.
func NewFactory[T any](build func(Args) (T, error), opts ...FactoryOption) *Factory[T] {
	o := factoryOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return &Factory[T]{
		build:   build,
		entries: make(map[cacheKey]T),
		log:     o.log,
	}
}

// Get returns the cached instance for args, building it on first use.
func (f *Factory[T]) Get(args Args) (T, error) {
	key := args.key()

	f.mu.Lock()
	defer f.mu.Unlock()

	if v, ok := f.entries[key]; ok {
		return v, nil
	}

	v, err := f.build(args)
	if err != nil {
		return v, err
	}
	f.entries[key] = v
	f.log.Debug("cached quaternion",
		zap.Stringer("form", args.Form()),
		zap.Int("entries", len(f.entries)))
	return v, nil
}

// Len returns the number of cached instances.
func (f *Factory[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// Reset drops every cached instance.
func (f *Factory[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.log.Debug("quaternion cache reset", zap.Int("dropped", len(f.entries)))
	f.entries = make(map[cacheKey]T)
}

// SetLogger replaces the factory logger. A nil logger disables logging.
func (f *Factory[T]) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	f.mu.Lock()
	f.log = l
	f.mu.Unlock()
}

var (
	quaternions  = NewFactory(NewQuaternion)
	iquaternions = NewFactory(NewIQuaternion)
)

// Cached returns the process-wide shared Quaternion for args. The instance is
// shared with every other caller passing equal args, so mutating it is
// visible to all of them.
func Cached(args Args) (*Quaternion, error) {
	return quaternions.Get(args)
}

// ICached returns the process-wide shared IQuaternion for args.
func ICached(args Args) (*IQuaternion, error) {
	return iquaternions.Get(args)
}

// ResetCaches clears the process-wide factories used by Cached and ICached.
// Identity keeps its value but is no longer the instance ICached returns.
func ResetCaches() {
	quaternions.Reset()
	iquaternions.Reset()
}

// SetCacheLogger sets the logger of the process-wide factories.
func SetCacheLogger(l *zap.Logger) {
	quaternions.SetLogger(l)
	iquaternions.SetLogger(l)
}

// CacheSize returns the number of entries in the process-wide mutable and
// immutable factories.
func CacheSize() (mutable, immutable int) {
	return quaternions.Len(), iquaternions.Len()
}
