// nrrdinfo reads an NRRD volume and prints its layout, per-slice origins
// and sample statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dchen116/nrrd"
	"github.com/dchen116/nrrd/internal/config"
	"github.com/dchen116/nrrd/internal/logging"
)

var version = "dev"

const (
	exitSuccess = 0
	exitError   = 1
)

type options struct {
	inputFile  string
	configFile string
	workers    int
	tempDir    string
	maxBytes   int64
	logLevel   string
	showSlices bool
	noStats    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, done, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	if done {
		return exitSuccess
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	applyFlags(cfg, opts)

	log, err := logging.New(cfg.Log.Format, cfg.Log.Level, zapcore.AddSync(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	defer log.Sync() //nolint:errcheck // best effort flush

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := execute(ctx, opts, cfg, log, stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	return exitSuccess
}

func parseFlags(args []string, stderr io.Writer) (options, bool, error) {
	var opts options
	var showVersion bool

	fs := flag.NewFlagSet("nrrdinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.inputFile, "i", "", "input NRRD or detached header (.nhdr)")
	fs.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	fs.IntVar(&opts.workers, "w", 0, "slabs read concurrently (default: from config, 1)")
	fs.StringVar(&opts.tempDir, "tmp", "", "directory for decompressed slabs")
	fs.Int64Var(&opts.maxBytes, "max-bytes", 0, "refuse volumes larger than this many bytes")
	fs.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&opts.showSlices, "slices", false, "print the origin of every slice")
	fs.BoolVar(&opts.noStats, "no-stats", false, "skip sample statistics")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")
	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return opts, true, nil
		}
		return opts, false, err
	}

	if showVersion {
		fmt.Fprintf(stderr, "nrrdinfo version %s\n", version)
		return opts, true, nil
	}

	// Handle positional argument
	if opts.inputFile == "" && fs.NArg() > 0 {
		opts.inputFile = fs.Arg(0)
	}
	if opts.inputFile == "" {
		fs.Usage()
		return opts, false, fmt.Errorf("no input file")
	}
	return opts, false, nil
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `nrrdinfo - Inspect NRRD volumes

Usage:
  nrrdinfo [options] volume.nrrd
  nrrdinfo [options] -i header.nhdr

Options:
`)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Examples:
  nrrdinfo brain.nrrd                    Print layout and statistics
  nrrdinfo -slices dwi.nhdr              Also print slice origins
  nrrdinfo -config site.yaml -w 4 x.nhdr Read autosequenced slabs in parallel
`)
}

// applyFlags lets command-line flags override the configuration file.
func applyFlags(cfg *config.Config, opts options) {
	if opts.workers > 0 {
		cfg.Decode.Workers = opts.workers
	}
	if opts.tempDir != "" {
		cfg.Decode.TempDir = opts.tempDir
	}
	if opts.maxBytes > 0 {
		cfg.Decode.MaxBytes = opts.maxBytes
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
}

func execute(ctx context.Context, opts options, cfg *config.Config, log *zap.Logger, w io.Writer) error {
	orientations, err := cfg.ParsedOrientations()
	if err != nil {
		return err
	}

	v, err := nrrd.Read(ctx, opts.inputFile, &nrrd.Options{
		Workers:      cfg.Decode.Workers,
		TempDir:      cfg.Decode.TempDir,
		MaxBytes:     cfg.Decode.MaxBytes,
		Origin:       cfg.Geometry.Origin,
		Orientations: orientations,
		Logger:       log,
	})
	if err != nil {
		return err
	}

	printVolume(w, opts.inputFile, v)
	if !opts.noStats {
		st := v.Stats()
		fmt.Fprintf(w, "min:         %g\nmax:         %g\nmean:        %g\nstd dev:     %g\n",
			st.Min, st.Max, st.Mean, st.StdDev)
	}
	if opts.showSlices {
		for _, s := range v.Slices {
			fmt.Fprintf(w, "slice %d time %d: (%g, %g, %g) t=%g\n",
				s.Slice, s.Time, s.Origin.X, s.Origin.Y, s.Origin.Z, s.TimeOrigin)
		}
	}
	return nil
}

func printVolume(w io.Writer, path string, v *nrrd.Volume) {
	d := v.Descriptor

	units := make([]string, len(d.Units))
	for i, u := range d.Units {
		units[i] = u.String()
	}

	fmt.Fprintf(w, "file:        %s\n", path)
	fmt.Fprintf(w, "type:        %s\n", d.Type)
	if d.Channels > 1 {
		fmt.Fprintf(w, "channels:    %d\n", d.Channels)
	}
	fmt.Fprintf(w, "dimensions:  %d\n", d.Dims)
	fmt.Fprintf(w, "extents:     %s\n", join(d.Extents, " x "))
	fmt.Fprintf(w, "resolutions: %s\n", join(d.Resolutions, " "))
	fmt.Fprintf(w, "units:       %s\n", strings.Join(units, " "))
	if d.Labels != nil {
		fmt.Fprintf(w, "labels:      %q\n", d.Labels)
	}
	if d.SliceThickness != nil {
		fmt.Fprintf(w, "thickness:   %g\n", *d.SliceThickness)
	}
	fmt.Fprintf(w, "encoding:    %s\n", d.Encoding)
	if v.Header.Modality != "" {
		fmt.Fprintf(w, "modality:    %s\n", v.Header.Modality)
	}
	if n := len(v.Header.Gradients); n > 0 {
		fmt.Fprintf(w, "gradients:   %d\n", n)
	}
}

func join[T any](vals []T, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}
