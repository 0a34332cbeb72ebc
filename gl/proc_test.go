package gl

import (
	"reflect"
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeDriver stands in for libGL: symbols map to Go funcs of the native
// signature, and binding installs them through reflection. A symbol
// installed with a nil func binds to a stub returning zero values.
type fakeDriver struct {
	mu      sync.Mutex
	addrs   map[string]uintptr
	funcs   map[uintptr]interface{}
	lookups map[string]int
}

func useFakeDriver(t *testing.T) *fakeDriver {
	d := &fakeDriver{
		addrs:   make(map[string]uintptr),
		funcs:   make(map[uintptr]interface{}),
		lookups: make(map[string]int),
	}
	origBind := bind
	bind = d.bind
	SetLogger(zaptest.NewLogger(t))
	InitWithLoader(d)
	t.Cleanup(func() {
		bind = origBind
		InitWithLoader(nil)
		SetLogger(nil)
	})
	return d
}

func (d *fakeDriver) install(name string, fn interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	addr := uintptr(0x1000 + len(d.addrs))
	d.addrs[name] = addr
	d.funcs[addr] = fn
}

func (d *fakeDriver) Lookup(name string) (uintptr, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lookups[name]++
	addr, ok := d.addrs[name]
	if !ok {
		return 0, errors.Wrap(ErrProcNotFound, name)
	}
	return addr, nil
}

func (d *fakeDriver) count(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lookups[name]
}

func (d *fakeDriver) bind(fptr interface{}, addr uintptr) {
	d.mu.Lock()
	fn := d.funcs[addr]
	d.mu.Unlock()
	dst := reflect.ValueOf(fptr).Elem()
	if fn == nil {
		typ := dst.Type()
		dst.Set(reflect.MakeFunc(typ, func([]reflect.Value) []reflect.Value {
			out := make([]reflect.Value, typ.NumOut())
			for i := range out {
				out[i] = reflect.Zero(typ.Out(i))
			}
			return out
		}))
		return
	}
	dst.Set(reflect.ValueOf(fn))
}

func TestWrapperResolvesOnce(t *testing.T) {
	d := useFakeDriver(t)
	var masks []uint32
	d.install("glClear", func(mask uint32) { masks = append(masks, mask) })

	Clear(COLOR_BUFFER_BIT | DEPTH_BUFFER_BIT)
	Clear(COLOR_BUFFER_BIT)

	assert.Equal(t, []uint32{0x4100, 0x4000}, masks)
	assert.Equal(t, 1, d.count("glClear"))
}

func TestConcurrentFirstUseResolvesOnce(t *testing.T) {
	d := useFakeDriver(t)
	var mu sync.Mutex
	calls := 0
	d.install("glFlush", func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Flush()
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, calls)
	assert.Equal(t, 1, d.count("glFlush"))
}

func TestScalarMarshaling(t *testing.T) {
	d := useFakeDriver(t)

	var color [4]float32
	d.install("glClearColor", func(r, g, b, a float32) { color = [4]float32{r, g, b, a} })
	ClearColor(0.25, 0.5, 0.75, 1)
	assert.Equal(t, [4]float32{0.25, 0.5, 0.75, 1}, color)

	var angle, x float64
	d.install("glRotated", func(a, rx, ry, rz float64) { angle, x = a, rx })
	Rotated(90, 1, 0, 0)
	assert.Equal(t, 90.0, angle)
	assert.Equal(t, 1.0, x)

	var mask [4]uint8
	d.install("glColorMask", func(r, g, b, a uint8) { mask = [4]uint8{r, g, b, a} })
	ColorMask(true, false, true, false)
	assert.Equal(t, [4]uint8{1, 0, 1, 0}, mask)
}

func TestResultMarshaling(t *testing.T) {
	d := useFakeDriver(t)

	d.install("glIsEnabled", func(cap uint32) uint8 {
		if cap == DEPTH_TEST {
			return 1
		}
		return 0
	})
	assert.True(t, IsEnabled(DEPTH_TEST))
	assert.False(t, IsEnabled(BLEND))

	d.install("glGetError", func() uint32 { return INVALID_ENUM })
	assert.Equal(t, Enum(INVALID_ENUM), GetError())

	vendor := []byte("Mesa\x00")
	d.install("glGetString", func(name uint32) unsafe.Pointer {
		require.Equal(t, uint32(VENDOR), name)
		return unsafe.Pointer(&vendor[0])
	})
	assert.Equal(t, "Mesa", GoStr(GetString(VENDOR)))
}

func TestPointerMarshaling(t *testing.T) {
	d := useFakeDriver(t)
	d.install("glGenTextures", func(n int32, textures unsafe.Pointer) {
		out := unsafe.Slice((*uint32)(textures), n)
		for i := range out {
			out[i] = uint32(10 + i)
		}
	})

	ids := make([]Uint, 3)
	GenTextures(Sizei(len(ids)), &ids[0])
	assert.Equal(t, []Uint{10, 11, 12}, ids)

	var got string
	d.install("glGetAttribLocation", func(program uint32, name unsafe.Pointer) int32 {
		got = GoStr((*Ubyte)(name))
		return 4
	})
	assert.Equal(t, Int(4), GetAttribLocation(7, Str("position")))
	assert.Equal(t, "position", got)

	var sources []string
	d.install("glShaderSource", func(shader uint32, count int32, strs unsafe.Pointer, length unsafe.Pointer) {
		for _, s := range unsafe.Slice((**Ubyte)(strs), count) {
			sources = append(sources, GoStr(s))
		}
		assert.Nil(t, length)
	})
	src, free := Strs("void main() {", "}")
	ShaderSource(1, 2, src, nil)
	free()
	assert.Equal(t, []string{"void main() {", "}"}, sources)
}

func TestMissingEntryPointPanics(t *testing.T) {
	d := useFakeDriver(t)

	call := func() (err error) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err = r.(error)
		}()
		BlendEquationSeparateATI(FUNC_ADD, FUNC_ADD)
		return nil
	}

	err := call()
	var pe *ProcError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "glBlendEquationSeparateATI", pe.Name)
	assert.Equal(t, ErrProcNotFound, errors.Cause(err))
	assert.True(t, strings.HasPrefix(err.Error(), "unable to load glBlendEquationSeparateATI"))

	// the failure is cached along with the lookup
	assert.Error(t, call())
	assert.Equal(t, 1, d.count("glBlendEquationSeparateATI"))
}

func TestSupported(t *testing.T) {
	d := useFakeDriver(t)
	d.install("glActiveTextureARB", func(uint32) {})

	assert.True(t, Supported("glActiveTextureARB"))
	assert.False(t, Supported("glClientActiveTextureARB"))
	assert.False(t, Supported("glNotAnEntryPoint"))
	assert.Zero(t, d.count("glNotAnEntryPoint"))
}

// glvnd and Mesa export a dispatch stub for every entry point they know,
// whether or not the context's driver implements it.
func TestSupportedReportsResolutionOnly(t *testing.T) {
	d := useFakeDriver(t)
	d.install("glBlendEquationSeparateATI", nil)

	assert.True(t, Supported("glBlendEquationSeparateATI"))
	assert.NoError(t, LoadFeature("GL_ATI_blend_equation_separate"))
	// the stub is callable and does nothing
	BlendEquationSeparateATI(FUNC_ADD, FUNC_ADD)
}

func TestLoadFeature(t *testing.T) {
	d := useFakeDriver(t)
	d.install("glBlendEquationSeparateATI", func(uint32, uint32) {})

	assert.NoError(t, LoadFeature("GL_ATI_blend_equation_separate"))

	err := LoadFeature("GL_ARB_multitexture")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feature GL_ARB_multitexture")
	assert.Equal(t, ErrProcNotFound, errors.Cause(err))

	assert.Error(t, LoadFeature("GL_NOT_A_feature"))
}

func TestLoadPromotedFeature(t *testing.T) {
	d := useFakeDriver(t)
	const feature = "GL_ARB_framebuffer_object"
	var names []string
	for _, p := range Procs() {
		if p.Feature == feature {
			names = append(names, p.Name)
			d.install(p.Name, nil)
		}
	}
	assert.Contains(t, names, "glBindFramebuffer")
	assert.Contains(t, names, "glRenderbufferStorageMultisample")
	assert.Len(t, names, 20)

	d.install("glGenFramebuffers", func(n int32, ids unsafe.Pointer) {
		*(*uint32)(ids) = 7
	})
	d.install("glCheckFramebufferStatus", func(target uint32) uint32 {
		require.Equal(t, uint32(FRAMEBUFFER), target)
		return FRAMEBUFFER_COMPLETE
	})
	require.NoError(t, LoadFeature(feature))

	var fbo Uint
	GenFramebuffers(1, &fbo)
	assert.Equal(t, Uint(7), fbo)
	assert.Equal(t, Enum(FRAMEBUFFER_COMPLETE), CheckFramebufferStatus(FRAMEBUFFER))

	for _, p := range Procs() {
		if p.Feature == feature {
			assert.True(t, p.Resolved, p.Name)
		}
	}

	err := LoadFeature("GL_ARB_vertex_array_object")
	require.Error(t, err)
	assert.Equal(t, ErrProcNotFound, errors.Cause(err))
}

func TestInitWithLoaderForgetsResolvedPointers(t *testing.T) {
	d := useFakeDriver(t)
	d.install("glFinish", func() {})
	Finish()
	require.True(t, Supported("glFinish"))

	other := useFakeDriver(t)
	assert.False(t, Supported("glFinish"))
	assert.Equal(t, 1, other.count("glFinish"))
	assert.Equal(t, 1, d.count("glFinish"))
}

func TestProcsEnumeration(t *testing.T) {
	useFakeDriver(t)
	procs := Procs()
	require.Greater(t, len(procs), 2000)

	seen := make(map[string]bool, len(procs))
	for _, p := range procs {
		assert.True(t, strings.HasPrefix(p.Name, "gl"), p.Name)
		assert.True(t, strings.HasPrefix(p.Feature, "GL_"), p.Feature)
		assert.False(t, seen[p.Name], "duplicate %s", p.Name)
		assert.False(t, p.Resolved)
		seen[p.Name] = true
	}
	assert.True(t, seen["glClear"])
	assert.True(t, seen["glUseProgram"])
	// core entry points after 2.1 remain reachable through the extension
	// that introduced them
	assert.True(t, seen["glGenVertexArrays"])
	assert.True(t, seen["glFenceSync"])
	for _, p := range procs {
		if p.Name == "glGenVertexArrays" {
			assert.Equal(t, "GL_ARB_vertex_array_object", p.Feature)
		}
	}

	features := Features()
	assert.Contains(t, features, "GL_VERSION_1_1")
	assert.Contains(t, features, "GL_VERSION_2_1")
	assert.Contains(t, features, "GL_ARB_vertex_buffer_object")
	assert.Contains(t, features, "GL_ARB_framebuffer_object")
	assert.Contains(t, features, "GL_ARB_sync")
	assert.NotContains(t, features, "GL_VERSION_3_0")
}
