// Command glgen generates the gl package from the Khronos gl.h and
// glext.h headers.
package main

import (
	"fmt"
	"os"

	"github.com/juju/gnuflag"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type options struct {
	gl         string
	glext      string
	out        string
	pkg        string
	maxVersion string
	verbose    bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	f := gnuflag.NewFlagSet("glgen", gnuflag.ContinueOnError)
	f.StringVar(&opts.gl, "gl", "/usr/include/GL/gl.h", "path to gl.h")
	f.StringVar(&opts.glext, "glext", "/usr/include/GL/glext.h", "path to glext.h")
	f.StringVar(&opts.out, "out", ".", "output directory")
	f.StringVar(&opts.pkg, "pkg", "gl", "package name of the generated files")
	f.StringVar(&opts.maxVersion, "max-version", "2.1", "highest core version to generate")
	f.BoolVar(&opts.verbose, "verbose", false, "log skipped entry points")
	if err := f.Parse(true, args); err != nil {
		return nil, err
	}
	if f.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments %q", f.Args())
	}
	return opts, nil
}

func readHeader(path, def string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open header")
	}
	defer f.Close()
	h, err := parseHeader(f, def)
	return h, errors.Wrap(err, path)
}

func run(opts *options, log *zap.Logger) error {
	maxVersion, err := ParseVersion(opts.maxVersion)
	if err != nil {
		return err
	}
	// glext.h carries the newest prototypes, so it is read first; gl.h
	// declarations outside a feature block are GL 1.1.
	ext, err := readHeader(opts.glext, "")
	if err != nil {
		return err
	}
	core, err := readHeader(opts.gl, "GL_VERSION_1_1")
	if err != nil {
		return err
	}

	reg := buildRegistry(maxVersion, ext, core)
	for _, s := range reg.Skipped {
		log.Warn("skipped entry point", zap.String("name", s.Name), zap.String("reason", s.Reason))
	}
	if err := generate(reg, opts.pkg, opts.out); err != nil {
		return err
	}
	log.Info("generated bindings",
		zap.Int("features", len(reg.Features)),
		zap.Int("commands", reg.Commands()),
		zap.Int("enums", reg.Consts()),
		zap.String("out", opts.out),
	)
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := zap.NewNop()
	if opts.verbose {
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	if err := run(opts, log); err != nil {
		log.Error("generation failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "glgen: %v\n", err)
		os.Exit(1)
	}
}
