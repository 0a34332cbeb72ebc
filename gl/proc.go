package gl

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ProcError reports an entry point the driver does not provide.
type ProcError struct {
	Name string
	Err  error
}

func (e *ProcError) Error() string {
	return "unable to load " + e.Name + ": " + e.Err.Error()
}

// Cause returns the lookup failure.
func (e *ProcError) Cause() error { return e.Err }

func (e *ProcError) Unwrap() error { return e.Err }

// ProcInfo describes one generated wrapper.
type ProcInfo struct {
	Name     string
	Feature  string
	Resolved bool
}

type entryPoint interface {
	info() ProcInfo
	load() error
	reset()
}

// proc is the lazily resolved function pointer behind one wrapper. F is the
// native signature in FFI terms.
type proc[F any] struct {
	name     string
	feature  string
	once     sync.Once
	fn       F
	err      error
	resolved atomic.Bool
}

var entryPoints = struct {
	sync.Mutex
	byName    map[string]entryPoint
	byFeature map[string][]entryPoint
}{
	byName:    make(map[string]entryPoint),
	byFeature: make(map[string][]entryPoint),
}

func newProc[F any](name, feature string) *proc[F] {
	p := &proc[F]{name: name, feature: feature}
	entryPoints.Lock()
	entryPoints.byName[name] = p
	entryPoints.byFeature[feature] = append(entryPoints.byFeature[feature], p)
	entryPoints.Unlock()
	return p
}

func (p *proc[F]) info() ProcInfo {
	return ProcInfo{Name: p.name, Feature: p.feature, Resolved: p.resolved.Load()}
}

func (p *proc[F]) load() error {
	p.once.Do(func() {
		addr, err := lookup(p.name)
		if err != nil {
			p.err = &ProcError{Name: p.name, Err: err}
			Logger().Debug("entry point unavailable", zap.String("name", p.name), zap.Error(err))
			return
		}
		bind(&p.fn, addr)
		p.resolved.Store(true)
		Logger().Debug("entry point resolved", zap.String("name", p.name), zap.Uintptr("addr", addr))
	})
	return p.err
}

// get returns the native function, panicking when it cannot be resolved.
func (p *proc[F]) get() F {
	if err := p.load(); err != nil {
		panic(err)
	}
	return p.fn
}

// reset forgets the resolved pointer. Not safe while the wrapper is in use.
func (p *proc[F]) reset() {
	var zero F
	p.once = sync.Once{}
	p.fn = zero
	p.err = nil
	p.resolved.Store(false)
}

func resetEntryPoints() {
	entryPoints.Lock()
	defer entryPoints.Unlock()
	for _, p := range entryPoints.byName {
		p.reset()
	}
}

// Supported resolves the named entry point (glActiveTextureARB, ...) and
// reports whether a symbol was found for it. Unknown names are unsupported.
// A true result only proves the symbol resolved: glvnd and Mesa return
// dispatch stubs for entry points the driver does not implement, so
// extension support has to be read from GetString(EXTENSIONS).
func Supported(name string) bool {
	entryPoints.Lock()
	p, ok := entryPoints.byName[name]
	entryPoints.Unlock()
	return ok && p.load() == nil
}

// LoadFeature resolves every entry point of a feature such as
// GL_VERSION_2_0 or GL_ARB_vertex_buffer_object, returning the first
// failure instead of deferring it to a panic at call time. Like Supported it
// proves resolution, not support. Extensions that only define enumerants
// have to be checked against the EXTENSIONS string.
func LoadFeature(feature string) error {
	entryPoints.Lock()
	procs, ok := entryPoints.byFeature[feature]
	entryPoints.Unlock()
	if !ok {
		return errors.Errorf("feature %s declares no entry points", feature)
	}
	for _, p := range procs {
		if err := p.load(); err != nil {
			return errors.Wrapf(err, "feature %s", feature)
		}
	}
	return nil
}

// Procs lists every wrapper of the package, sorted by name.
func Procs() []ProcInfo {
	entryPoints.Lock()
	infos := make([]ProcInfo, 0, len(entryPoints.byName))
	for _, p := range entryPoints.byName {
		infos = append(infos, p.info())
	}
	entryPoints.Unlock()
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Features lists the features that declare at least one entry point.
func Features() []string {
	entryPoints.Lock()
	names := make([]string, 0, len(entryPoints.byFeature))
	for name := range entryPoints.byFeature {
		names = append(names, name)
	}
	entryPoints.Unlock()
	sort.Strings(names)
	return names
}
