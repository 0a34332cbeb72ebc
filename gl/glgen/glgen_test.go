package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func parseFixture(t *testing.T, name, def string) *Header {
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()
	h, err := parseHeader(f, def)
	require.NoError(t, err)
	return h
}

func fixtureRegistry(t *testing.T) *Registry {
	ext := parseFixture(t, "glext.h", "")
	core := parseFixture(t, "gl.h", "GL_VERSION_1_1")
	return buildRegistry(Version{2, 1}, ext, core)
}

func TestParseHeader(t *testing.T) {
	h := parseFixture(t, "gl.h", "GL_VERSION_1_1")

	names := make([]string, 0, len(h.Enums))
	for _, e := range h.Enums {
		names = append(names, e.Feature+" "+e.Name+"="+e.Value)
	}
	assert.Equal(t, []string{
		"GL_VERSION_1_1 GL_FALSE=0",
		"GL_VERSION_1_1 GL_TRUE=1",
		"GL_VERSION_1_1 GL_DEPTH_BUFFER_BIT=0x00000100",
		"GL_VERSION_1_1 GL_COLOR_BUFFER_BIT=0x00004000",
		"GL_VERSION_1_1 GL_2D=0x0600",
		"GL_VERSION_1_1 GL_VENDOR=0x1F00",
		"GL_VERSION_1_2 GL_TEXTURE_3D=0x806F",
	}, names)

	require.Len(t, h.Protos, 7)
	mask := h.Protos[3]
	assert.Equal(t, "glColorMask", mask.Name)
	assert.Equal(t, "GLboolean red, GLboolean green, GLboolean blue, GLboolean alpha", strings.TrimSpace(mask.Params))
	assert.Equal(t, "const GLubyte *", h.Protos[4].Return)
	assert.Equal(t, "GL_VERSION_1_2", h.Protos[6].Feature)
	assert.Equal(t, []string{"GL_VERSION_1_2"}, h.Features)
}

func TestParseHeaderDropsUnguardedDeclarations(t *testing.T) {
	h := parseFixture(t, "glext.h", "")
	for _, e := range h.Enums {
		assert.NotEqual(t, "GL_GLEXT_VERSION", e.Name)
		assert.NotEmpty(t, e.Feature)
	}
}

func TestParseHeaderUnterminatedPrototype(t *testing.T) {
	_, err := parseHeader(strings.NewReader("GLAPI void APIENTRY glFoo (GLint x\n"), "GL_VERSION_1_1")
	assert.Error(t, err)
}

func TestBuildRegistry(t *testing.T) {
	reg := fixtureRegistry(t)

	var features []string
	for _, f := range reg.Features {
		features = append(features, f.Name)
	}
	assert.Equal(t, []string{
		"GL_VERSION_1_1",
		"GL_VERSION_1_2",
		"GL_VERSION_2_0",
		"GL_ARB_multitexture",
		"GL_ARB_sync",
		"GL_ARB_vertex_array_object",
		"GL_ARB_cl_event",
		"GL_ATI_blend_equation_separate",
	}, features)

	assert.Equal(t, 17, reg.Commands())
	assert.Equal(t, 16, reg.Consts())
	require.Len(t, reg.Skipped, 1)
	assert.Equal(t, "glMulticastCopyImageSubDataNV", reg.Skipped[0].Name)
	assert.Contains(t, reg.Skipped[0].Reason, "17 parameters")

	v12 := reg.Features[1]
	require.Len(t, v12.Commands, 1)
	assert.Equal(t, "glTexImage3D", v12.Commands[0].Name)
	// glext.h is read first, so its parameter names win
	assert.Equal(t, "internalformat", v12.Commands[0].Params[2].Name)
	assert.Equal(t, "xtype", v12.Commands[0].Params[8].Name)
	require.Len(t, v12.Consts, 2)
	assert.Equal(t, "UNSIGNED_BYTE_3_3_2", v12.Consts[0].Name)

	v11 := reg.Features[0]
	assert.Equal(t, "GL_2D", v11.Consts[4].Name)
	assert.Equal(t, "VENDOR", v11.Consts[5].Name)

	core, ext := reg.Split()
	assert.Len(t, core, 3)
	assert.Len(t, ext, 5)
}

func TestBuildRegistryPromotedExtensions(t *testing.T) {
	reg := fixtureRegistry(t)
	byName := make(map[string]*Feature)
	for _, f := range reg.Features {
		byName[f.Name] = f
	}

	sync := byName["GL_ARB_sync"]
	require.NotNil(t, sync)
	var consts []string
	for _, c := range sync.Consts {
		consts = append(consts, c.Name)
	}
	assert.Equal(t, []string{"MAX_SERVER_WAIT_TIMEOUT", "TIMEOUT_IGNORED", "SYNC_FLUSH_COMMANDS_BIT"}, consts)
	require.Len(t, sync.Commands, 2)
	assert.Equal(t, "glFenceSync", sync.Commands[0].Name)
	assert.Equal(t, "GL_ARB_sync", sync.Commands[0].Feature)

	// the span runs to the end of the block when its last name is absent
	vao := byName["GL_ARB_vertex_array_object"]
	require.NotNil(t, vao)
	require.Len(t, vao.Commands, 2)
	assert.Equal(t, "glBindVertexArray", vao.Commands[0].Name)
	assert.Equal(t, "glGenVertexArrays", vao.Commands[1].Name)
	require.Len(t, vao.Consts, 1)
	assert.Equal(t, "VERTEX_ARRAY_BINDING", vao.Consts[0].Name)

	for _, f := range reg.Features {
		for _, c := range f.Consts {
			assert.NotEqual(t, "MAJOR_VERSION", c.Name, "unpromoted 3.0 enum kept in %s", f.Name)
		}
	}
}

func TestBuildRegistryMaxVersion(t *testing.T) {
	ext := parseFixture(t, "glext.h", "")
	core := parseFixture(t, "gl.h", "GL_VERSION_1_1")
	reg := buildRegistry(Version{3, 2}, ext, core)

	var names []string
	for _, f := range reg.Features {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "GL_VERSION_3_0")
	assert.Contains(t, names, "GL_VERSION_3_2")
	// kept core versions own their entries, the empty extension blocks stay empty
	assert.NotContains(t, names, "GL_ARB_sync")
	assert.NotContains(t, names, "GL_ARB_vertex_array_object")
	assert.Equal(t, 17, reg.Commands())
	assert.Equal(t, 17, reg.Consts())
}

func TestPromotedNames(t *testing.T) {
	h := &Header{
		Enums: []*EnumDef{
			{Feature: "GL_VERSION_3_0", Name: "GL_A"},
			{Feature: "GL_VERSION_3_0", Name: "GL_B"},
			{Feature: "GL_VERSION_3_0", Name: "GL_C"},
			{Feature: "GL_VERSION_3_1", Name: "GL_D"},
			{Feature: "GL_EXT_x", Name: "GL_E"},
		},
		Protos: []*ProtoDef{
			{Feature: "GL_VERSION_3_0", Name: "glOne"},
			{Feature: "GL_VERSION_3_0", Name: "glTwo"},
			{Feature: "GL_VERSION_3_1", Name: "glThree"},
		},
	}
	table := []promotion{
		{"GL_ARB_first", []string{"A..B"}, []string{"One"}},
		{"GL_ARB_second", []string{"B..D", "E"}, []string{"Two..Missing"}},
	}
	assert.Equal(t, map[string]string{
		"GL_A":  "GL_ARB_first",
		"GL_B":  "GL_ARB_first",
		"GL_C":  "GL_ARB_second",
		"GL_E":  "GL_ARB_second",
		"glOne": "GL_ARB_first",
		"glTwo": "GL_ARB_second",
	}, promotedNames(table, h))
}

func TestPromotionsResolveInSystemHeader(t *testing.T) {
	const glext = "/usr/include/GL/glext.h"
	f, err := os.Open(glext)
	if err != nil {
		t.Skipf("%s not installed", glext)
	}
	defer f.Close()
	h, err := parseHeader(f, "")
	require.NoError(t, err)

	owner := promotedNames(promotions, h)
	for _, p := range promotions {
		for _, set := range []struct {
			prefix string
			items  []string
		}{{"GL_", p.Enums}, {"gl", p.Commands}} {
			for _, item := range set.items {
				first, last, span := strings.Cut(item, "..")
				assert.Equal(t, p.Extension, owner[set.prefix+first], item)
				if span {
					assert.Equal(t, p.Extension, owner[set.prefix+last], item)
				}
			}
		}
	}
	assert.Equal(t, "GL_ARB_framebuffer_object", owner["glGenFramebuffers"])
	assert.Equal(t, "GL_ARB_uniform_buffer_object", owner["glBindBufferBase"])
}

func TestGoType(t *testing.T) {
	cases := []struct {
		c      string
		goType string
		native string
	}{
		{"void", "", ""},
		{"GLenum", "Enum", "uint32"},
		{"GLboolean", "bool", "uint8"},
		{"GLboolean *", "*Boolean", "unsafe.Pointer"},
		{"const GLchar *const*", "**Char", "unsafe.Pointer"},
		{"const void *", "unsafe.Pointer", "unsafe.Pointer"},
		{"void **", "*unsafe.Pointer", "unsafe.Pointer"},
		{"GLsync", "Sync", "unsafe.Pointer"},
		{"GLintptrARB", "Intptr", "int"},
		{"GLDEBUGPROC", "DebugProc", "uintptr"},
		{"struct _cl_event *", "CLEvent", "unsafe.Pointer"},
		{"GLhandleARB", "HandleARB", "uint32"},
	}
	for _, tc := range cases {
		t.Run(tc.c, func(t *testing.T) {
			m, ok := goType(tc.c)
			require.True(t, ok)
			assert.Equal(t, tc.goType, m.Go)
			assert.Equal(t, tc.native, m.Native)
		})
	}

	_, ok := goType("GLunknownNV")
	assert.False(t, ok)
	_, ok = goType("struct _cl_event")
	assert.False(t, ok)
}

func TestParamName(t *testing.T) {
	assert.Equal(t, "internalformat", paramName("internalformat"))
	assert.Equal(t, "modeRGB", paramName("modeRGB"))
	assert.Equal(t, "xtype", paramName("type"))
	assert.Equal(t, "xfunc", paramName("func"))
	assert.Equal(t, "xrange", paramName("range"))
	assert.Equal(t, "string", paramName("string"))
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("2.1")
	require.NoError(t, err)
	assert.Equal(t, Version{2, 1}, v)

	for _, bad := range []string{"2", "x.1", "2.y"} {
		_, err := ParseVersion(bad)
		assert.Error(t, err, bad)
	}
}

func TestBody(t *testing.T) {
	reg := fixtureRegistry(t)
	cmds := make(map[string]*Command)
	for _, f := range reg.Features {
		for _, c := range f.Commands {
			cmds[c.GoName] = c
		}
	}

	assert.Equal(t, "procClear.get()(uint32(mask))", Body(cmds["Clear"]))
	assert.Equal(t, "return procIsEnabled.get()(uint32(cap)) != 0", Body(cmds["IsEnabled"]))
	assert.Equal(t, "procColorMask.get()(boolByte(red), boolByte(green), boolByte(blue), boolByte(alpha))", Body(cmds["ColorMask"]))
	assert.Equal(t, "return (*Ubyte)(procGetString.get()(uint32(name)))", Body(cmds["GetString"]))
	assert.Equal(t, "return Sync(procFenceSync.get()(uint32(condition), uint32(flags)))", Body(cmds["FenceSync"]))
	assert.Equal(t, "func(uint32) uint8", NativeSignature(cmds["IsEnabled"]))
	assert.Equal(t, "func(int32, unsafe.Pointer)", NativeSignature(cmds["GenTextures"]))
	assert.Equal(t, "shader Uint, count Sizei, string **Char, length *Int", ParamList(cmds["ShaderSource"]))
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generate(fixtureRegistry(t), "gl", dir))

	enums, err := os.ReadFile(filepath.Join(dir, "enums.go"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(enums), "// Code generated by glgen from gl.h and glext.h; DO NOT EDIT.\n\npackage gl\n"))
	assert.Contains(t, string(enums), "// GL_VERSION_1_1\nconst (\n")
	assert.Contains(t, string(enums), "\tCOLOR_BUFFER_BIT = 0x00004000\n")
	assert.Contains(t, string(enums), "// GL_ARB_sync\nconst (\n")
	assert.Contains(t, string(enums), "\tTIMEOUT_IGNORED         = 0xFFFFFFFFFFFFFFFF\n")
	assert.NotContains(t, string(enums), "MAJOR_VERSION")

	core, err := os.ReadFile(filepath.Join(dir, "commands_core.go"))
	require.NoError(t, err)
	assert.Contains(t, string(core), `var procClear = newProc[func(uint32)]("glClear", "GL_VERSION_1_1")`)
	assert.Contains(t, string(core), "// IsEnabled wraps glIsEnabled.\nfunc IsEnabled(cap Enum) bool {\n")
	assert.NotContains(t, string(core), "ActiveTextureARB")
	assert.NotContains(t, string(core), "GenVertexArrays")

	ext, err := os.ReadFile(filepath.Join(dir, "commands_ext.go"))
	require.NoError(t, err)
	assert.Contains(t, string(ext), `var procGenVertexArrays = newProc[func(int32, unsafe.Pointer)]("glGenVertexArrays", "GL_ARB_vertex_array_object")`)
	assert.Contains(t, string(ext), "import \"unsafe\"\n")
	assert.Contains(t, string(ext), "func CreateSyncFromCLeventARB(context CLContext, event CLEvent, flags Bitfield) Sync {")
	assert.NotContains(t, string(ext), "MulticastCopyImageSubDataNV")
}

func TestRunSystemHeaders(t *testing.T) {
	const gl, glext = "/usr/include/GL/gl.h", "/usr/include/GL/glext.h"
	for _, p := range []string{gl, glext} {
		if _, err := os.Stat(p); err != nil {
			t.Skipf("%s not installed", p)
		}
	}
	opts := &options{gl: gl, glext: glext, out: t.TempDir(), pkg: "gl", maxVersion: "2.1"}
	require.NoError(t, run(opts, zaptest.NewLogger(t)))

	core, err := os.ReadFile(filepath.Join(opts.out, "commands_core.go"))
	require.NoError(t, err)
	assert.Contains(t, string(core), `("glUseProgram", "GL_VERSION_2_0")`)
	assert.NotContains(t, string(core), "GL_VERSION_3_0")

	ext, err := os.ReadFile(filepath.Join(opts.out, "commands_ext.go"))
	require.NoError(t, err)
	assert.Contains(t, string(ext), `("glBindFramebuffer", "GL_ARB_framebuffer_object")`)
	assert.Contains(t, string(ext), `("glFenceSync", "GL_ARB_sync")`)
	assert.Contains(t, string(ext), `("glSamplerParameteri", "GL_ARB_sampler_objects")`)
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"--out", "/tmp/gl", "--max-version", "1.5", "--verbose"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/gl", opts.out)
	assert.Equal(t, "1.5", opts.maxVersion)
	assert.Equal(t, "/usr/include/GL/gl.h", opts.gl)
	assert.True(t, opts.verbose)

	_, err = parseFlags([]string{"extra"})
	assert.Error(t, err)
}
