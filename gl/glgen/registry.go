package main

import (
	"go/token"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/serenize/snaker"
)

// maxParams is the widest signature the FFI layer can call.
const maxParams = 15

type typeMapping struct {
	Go     string
	Native string
}

var scalarTypes = map[string]typeMapping{
	"GLenum":               {"Enum", "uint32"},
	"GLbitfield":           {"Bitfield", "uint32"},
	"GLboolean":            {"Boolean", "uint8"},
	"GLbyte":               {"Byte", "int8"},
	"GLshort":              {"Short", "int16"},
	"GLint":                {"Int", "int32"},
	"GLsizei":              {"Sizei", "int32"},
	"GLubyte":              {"Ubyte", "uint8"},
	"GLushort":             {"Ushort", "uint16"},
	"GLuint":               {"Uint", "uint32"},
	"GLfloat":              {"Float", "float32"},
	"GLclampf":             {"Clampf", "float32"},
	"GLdouble":             {"Double", "float64"},
	"GLclampd":             {"Clampd", "float64"},
	"GLchar":               {"Char", "int8"},
	"GLcharARB":            {"Char", "int8"},
	"GLhalfNV":             {"Half", "uint16"},
	"GLfixed":              {"Fixed", "int32"},
	"GLintptr":             {"Intptr", "int"},
	"GLintptrARB":          {"Intptr", "int"},
	"GLsizeiptr":           {"Sizeiptr", "int"},
	"GLsizeiptrARB":        {"Sizeiptr", "int"},
	"GLint64":              {"Int64", "int64"},
	"GLint64EXT":           {"Int64", "int64"},
	"GLuint64":             {"Uint64", "uint64"},
	"GLuint64EXT":          {"Uint64", "uint64"},
	"GLhandleARB":          {"HandleARB", "uint32"},
	"GLvdpauSurfaceNV":     {"VdpauSurfaceNV", "int"},
	"GLsync":               {"Sync", "unsafe.Pointer"},
	"GLeglImageOES":        {"EGLImageOES", "unsafe.Pointer"},
	"GLeglClientBufferEXT": {"EGLClientBufferEXT", "unsafe.Pointer"},
	"GLDEBUGPROC":          {"DebugProc", "uintptr"},
	"GLDEBUGPROCARB":       {"DebugProc", "uintptr"},
	"GLDEBUGPROCAMD":       {"DebugProc", "uintptr"},
	"GLVULKANPROCNV":       {"VulkanProcNV", "uintptr"},
}

var structTypes = map[string]string{
	"struct _cl_context": "CLContext",
	"struct _cl_event":   "CLEvent",
}

var (
	versionRe = regexp.MustCompile(`^GL_VERSION_(\d+)_(\d+)$`)
	paramRe   = regexp.MustCompile(`^(.*?[\s*])(\w+)$`)
)

// Version is a GL core version such as 2.1.
type Version struct {
	Major, Minor int
}

// ParseVersion reads "major.minor".
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return Version{}, errors.Errorf("invalid version %q", s)
	}
	v := Version{}
	var err error
	if v.Major, err = strconv.Atoi(major); err != nil {
		return Version{}, errors.Wrapf(err, "invalid version %q", s)
	}
	if v.Minor, err = strconv.Atoi(minor); err != nil {
		return Version{}, errors.Wrapf(err, "invalid version %q", s)
	}
	return v, nil
}

func (v Version) less(o Version) bool {
	return v.Major < o.Major || v.Major == o.Major && v.Minor < o.Minor
}

// Param is one Go parameter of a wrapper.
type Param struct {
	Name   string
	Type   string
	Native string
}

// Command is one wrapper to generate.
type Command struct {
	Name      string // glClear
	GoName    string // Clear
	Feature   string
	Params    []*Param
	Return    string
	NativeRet string
}

// Const is one enumerant.
type Const struct {
	Name  string
	Value string
}

// Feature groups the enumerants and commands of one #ifndef block.
type Feature struct {
	Name     string
	Consts   []*Const
	Commands []*Command
}

// Core reports whether f is a GL_VERSION_x_y feature.
func (f *Feature) Core() bool {
	return strings.HasPrefix(f.Name, "GL_VERSION_")
}

// Skipped records a prototype the generator could not express.
type Skipped struct {
	Name   string
	Reason string
}

// Registry is the API surface selected from the headers.
type Registry struct {
	Features []*Feature
	Skipped  []Skipped
}

// Commands counts the generated wrappers.
func (r *Registry) Commands() int {
	n := 0
	for _, f := range r.Features {
		n += len(f.Commands)
	}
	return n
}

// Consts counts the generated enumerants.
func (r *Registry) Consts() int {
	n := 0
	for _, f := range r.Features {
		n += len(f.Consts)
	}
	return n
}

// Split returns the core features and the extensions.
func (r *Registry) Split() (core, ext []*Feature) {
	for _, f := range r.Features {
		if f.Core() {
			core = append(core, f)
		} else {
			ext = append(ext, f)
		}
	}
	return core, ext
}

// buildRegistry merges the headers in order. The first declaration of a
// name wins. Core versions above maxVersion are dropped, except for the
// entries of promoted extensions, which move to the extension. Core features
// are sorted by name, extensions follow the order of their guards.
func buildRegistry(maxVersion Version, headers ...*Header) *Registry {
	keep := func(feature string) bool {
		m := versionRe.FindStringSubmatch(feature)
		if m == nil {
			return true
		}
		major, _ := strconv.Atoi(m[1])
		minor, _ := strconv.Atoi(m[2])
		return !maxVersion.less(Version{major, minor})
	}
	promoted := promotedNames(promotions, headers...)
	home := func(feature, name string) (string, bool) {
		if keep(feature) {
			return feature, true
		}
		ext, ok := promoted[name]
		return ext, ok
	}

	byName := make(map[string]*Feature)
	var order []*Feature
	feature := func(name string) *Feature {
		f, ok := byName[name]
		if !ok {
			f = &Feature{Name: name}
			byName[name] = f
			order = append(order, f)
		}
		return f
	}

	reg := &Registry{}
	seenConst := make(map[string]bool)
	seenCmd := make(map[string]bool)
	for _, h := range headers {
		for _, e := range h.Enums {
			name, ok := home(e.Feature, e.Name)
			if !ok || seenConst[e.Name] {
				continue
			}
			seenConst[e.Name] = true
			f := feature(name)
			f.Consts = append(f.Consts, &Const{Name: constName(e.Name), Value: e.Value})
		}
	}
	for _, h := range headers {
		for _, p := range h.Protos {
			name, ok := home(p.Feature, p.Name)
			if !ok || seenCmd[p.Name] {
				continue
			}
			seenCmd[p.Name] = true
			cmd, err := newCommand(p, name)
			if err != nil {
				reg.Skipped = append(reg.Skipped, Skipped{Name: p.Name, Reason: err.Error()})
				continue
			}
			f := feature(name)
			f.Commands = append(f.Commands, cmd)
		}
	}

	guard := make(map[string]int)
	for _, h := range headers {
		for _, name := range h.Features {
			if _, ok := guard[name]; !ok {
				guard[name] = len(guard)
			}
		}
	}
	position := func(f *Feature) int {
		if i, ok := guard[f.Name]; ok {
			return i
		}
		return len(guard)
	}

	reg.Features = order
	core, ext := reg.Split()
	sort.Slice(core, func(i, j int) bool { return core[i].Name < core[j].Name })
	sort.SliceStable(ext, func(i, j int) bool { return position(ext[i]) < position(ext[j]) })
	reg.Features = append(core, ext...)
	return reg
}

func newCommand(p *ProtoDef, feature string) (*Command, error) {
	cmd := &Command{Name: p.Name, GoName: strings.TrimPrefix(p.Name, "gl"), Feature: feature}
	ret, ok := goType(p.Return)
	if !ok {
		return nil, errors.Errorf("unsupported return type %s", p.Return)
	}
	cmd.Return, cmd.NativeRet = ret.Go, ret.Native

	params := strings.TrimSpace(p.Params)
	if params == "" || params == "void" {
		return cmd, nil
	}
	for _, raw := range strings.Split(params, ",") {
		m := paramRe.FindStringSubmatch(strings.TrimSpace(raw))
		if m == nil {
			return nil, errors.Errorf("unable to parse parameter %q", raw)
		}
		t, ok := goType(strings.TrimSpace(m[1]))
		if !ok {
			return nil, errors.Errorf("unsupported parameter type %s", strings.TrimSpace(m[1]))
		}
		cmd.Params = append(cmd.Params, &Param{Name: paramName(m[2]), Type: t.Go, Native: t.Native})
	}
	if len(cmd.Params) > maxParams {
		return nil, errors.Errorf("%d parameters exceed the limit of %d", len(cmd.Params), maxParams)
	}
	return cmd, nil
}

// goType maps a C type to its Go wrapper and native FFI types. void maps
// to empty strings.
func goType(c string) (typeMapping, bool) {
	var toks []string
	depth := 0
	for _, tok := range strings.Fields(strings.ReplaceAll(c, "*", " * ")) {
		switch tok {
		case "const":
		case "*":
			depth++
		default:
			toks = append(toks, tok)
		}
	}
	base := strings.Join(toks, " ")

	switch {
	case base == "void" || base == "GLvoid":
		switch depth {
		case 0:
			return typeMapping{}, true
		case 1:
			return typeMapping{"unsafe.Pointer", "unsafe.Pointer"}, true
		}
		return typeMapping{strings.Repeat("*", depth-1) + "unsafe.Pointer", "unsafe.Pointer"}, true
	case structTypes[base] != "":
		if depth != 1 {
			return typeMapping{}, false
		}
		return typeMapping{structTypes[base], "unsafe.Pointer"}, true
	}

	t, ok := scalarTypes[base]
	if !ok {
		return typeMapping{}, false
	}
	if depth == 0 {
		if base == "GLboolean" {
			return typeMapping{"bool", "uint8"}, true
		}
		return t, true
	}
	return typeMapping{strings.Repeat("*", depth) + t.Go, "unsafe.Pointer"}, true
}

func paramName(c string) string {
	name := snaker.SnakeToCamelLower(c)
	if token.IsKeyword(name) {
		name = "x" + name
	}
	return name
}

func constName(c string) string {
	name := strings.TrimPrefix(c, "GL_")
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		return c
	}
	return name
}
