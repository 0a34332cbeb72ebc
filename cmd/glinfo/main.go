// Command glinfo makes a GL context current on a window, prints what the
// driver reports and clears the window for a number of frames.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/elliotmr/glbind"
	"github.com/elliotmr/glbind/gl"
	"github.com/juju/gnuflag"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func init() {
	// GL contexts are bound to the thread that made them current.
	runtime.LockOSThread()
}

type options struct {
	title    string
	create   bool
	width    int
	height   int
	frames   int
	interval time.Duration
	features []string
	verbose  bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	var features string
	f := gnuflag.NewFlagSet("glinfo", gnuflag.ContinueOnError)
	f.StringVar(&opts.title, "title", "glinfo", "title of the window to render into")
	f.BoolVar(&opts.create, "create", false, "create the window instead of looking for an existing one")
	f.IntVar(&opts.width, "width", 640, "width of a created window")
	f.IntVar(&opts.height, "height", 480, "height of a created window")
	f.IntVar(&opts.frames, "frames", 60, "number of frames to clear and swap")
	f.DurationVar(&opts.interval, "interval", 16*time.Millisecond, "sleep between frames")
	f.StringVar(&features, "feature", "", "comma separated features or extensions to check")
	f.BoolVar(&opts.verbose, "verbose", false, "log symbol resolution and window handling")
	if err := f.Parse(true, args); err != nil {
		return nil, err
	}
	if f.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments %q", f.Args())
	}
	if opts.width <= 0 || opts.height <= 0 {
		return nil, errors.Errorf("invalid window size %dx%d", opts.width, opts.height)
	}
	for _, feature := range strings.Split(features, ",") {
		if feature = strings.TrimSpace(feature); feature != "" {
			opts.features = append(opts.features, feature)
		}
	}
	return opts, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// featureStatus reports whether name is available, either as a feature
// whose entry points all resolve or as a string in GL_EXTENSIONS.
func featureStatus(name string, extensions map[string]bool) string {
	if extensions[name] {
		return "advertised"
	}
	err := gl.LoadFeature(name)
	switch {
	case err == nil:
		return "resolved"
	case errors.Cause(err) == gl.ErrProcNotFound:
		return "missing"
	}
	return "unknown"
}

func extensionSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, ext := range strings.Fields(s) {
		set[ext] = true
	}
	return set
}

func report(w io.Writer, opts *options) {
	fmt.Fprintf(w, "vendor:     %s\n", gl.GoStr(gl.GetString(gl.VENDOR)))
	fmt.Fprintf(w, "renderer:   %s\n", gl.GoStr(gl.GetString(gl.RENDERER)))
	fmt.Fprintf(w, "version:    %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
	exts := extensionSet(gl.GoStr(gl.GetString(gl.EXTENSIONS)))
	fmt.Fprintf(w, "extensions: %d\n", len(exts))
	for _, feature := range opts.features {
		fmt.Fprintf(w, "  %-40s %s\n", feature, featureStatus(feature, exts))
	}
}

func render(opts *options, log *zap.Logger) error {
	for i := 0; i < opts.frames; i++ {
		shade := gl.Float(i%60) / 60
		gl.ClearColor(gl.Clampf(shade), 0.2, gl.Clampf(1-shade), 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		if err := glbind.SwapBuffers(); err != nil {
			return err
		}
		if e := gl.GetError(); e != gl.NO_ERROR {
			log.Warn("GL error", zap.Uint32("error", uint32(e)), zap.Int("frame", i))
		}
		glbind.Sleep(uint32(opts.interval / time.Millisecond))
	}
	return nil
}

func run(opts *options, log *zap.Logger) error {
	glbind.SetLogger(log)
	if err := gl.Init(); err != nil {
		return err
	}
	if opts.create {
		closeWindow, err := createWindow(opts.title, opts.width, opts.height)
		if err != nil {
			return errors.Wrap(err, "unable to create window")
		}
		defer closeWindow()
	}
	if err := glbind.MakeCurrent(opts.title); err != nil {
		return err
	}
	defer glbind.Release()

	report(os.Stdout, opts)
	return render(opts, log)
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	err = run(opts, log)
	log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "glinfo: %v\n", err)
		os.Exit(1)
	}
}
