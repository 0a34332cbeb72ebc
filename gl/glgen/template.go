package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

//go:embed gl.gotmpl
var templateText string

// T renders the generated files.
var T = template.Must(template.New("gl").Funcs(template.FuncMap{
	"native_sig": NativeSignature,
	"params":     ParamList,
	"body":       Body,
}).Parse(templateText))

// NativeSignature is the FFI function type of cmd.
func NativeSignature(cmd *Command) string {
	natives := make([]string, len(cmd.Params))
	for i, p := range cmd.Params {
		natives[i] = p.Native
	}
	sig := "func(" + strings.Join(natives, ", ") + ")"
	if cmd.NativeRet != "" {
		sig += " " + cmd.NativeRet
	}
	return sig
}

// ParamList is the Go parameter list of cmd.
func ParamList(cmd *Command) string {
	params := make([]string, len(cmd.Params))
	for i, p := range cmd.Params {
		params[i] = p.Name + " " + p.Type
	}
	return strings.Join(params, ", ")
}

// Body converts the arguments, calls the native function and converts the
// result back.
func Body(cmd *Command) string {
	args := make([]string, len(cmd.Params))
	for i, p := range cmd.Params {
		if p.Type == "bool" {
			args[i] = fmt.Sprintf("boolByte(%s)", p.Name)
		} else {
			args[i] = convert(p.Native, p.Name)
		}
	}
	call := fmt.Sprintf("proc%s.get()(%s)", cmd.GoName, strings.Join(args, ", "))
	switch cmd.Return {
	case "":
		return call
	case "bool":
		return "return " + call + " != 0"
	}
	return "return " + convert(cmd.Return, call)
}

func convert(t, expr string) string {
	if strings.HasPrefix(t, "*") {
		return "(" + t + ")(" + expr + ")"
	}
	return t + "(" + expr + ")"
}

type fileData struct {
	Package  string
	Features []*Feature
}

func render(name, pkg string, features []*Feature) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := T.ExecuteTemplate(buf, name, &fileData{Package: pkg, Features: features}); err != nil {
		return nil, errors.Wrapf(err, "unable to execute template %s", name)
	}
	out, err := format.Source(buf.Bytes())
	return out, errors.Wrapf(err, "unable to format %s output", name)
}

// generate writes enums.go, commands_core.go and commands_ext.go to dir.
func generate(reg *Registry, pkg, dir string) error {
	core, ext := reg.Split()
	files := []struct {
		name     string
		tmpl     string
		features []*Feature
	}{
		{"enums.go", "enums", reg.Features},
		{"commands_core.go", "commands", core},
		{"commands_ext.go", "commands", ext},
	}
	for _, f := range files {
		out, err := render(f.tmpl, pkg, f.features)
		if err != nil {
			return errors.Wrap(err, f.name)
		}
		if err := os.WriteFile(filepath.Join(dir, f.name), out, 0o644); err != nil {
			return errors.Wrapf(err, "unable to write %s", f.name)
		}
	}
	return nil
}
