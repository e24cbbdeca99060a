package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/nebbyJammin/asciiweb/cmd/internal/cmdutil"
	"github.com/nebbyJammin/asciiweb/pkg/asciiart"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, flags := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logLevel := slog.LevelInfo
	if flags.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		logger.Error("failed to load config", "path", flags.configPath, "error", err)
		return exitUsage
	}
	flags.apply(fs, cfg)

	tty := isTerminal(stdout)

	outFormat, err := parseFormat(cfg.Output.Format, tty)
	if err != nil {
		logger.Error("invalid output format", "error", err)
		return exitUsage
	}

	// A terminal preview fills the terminal unless a size was asked for.
	if outFormat == formatANSI && cfg.Generator.Width == 0 && cfg.Generator.Height == 0 {
		if cols := terminalWidth(stdout); cols > 0 {
			cfg.Generator.Width = min(cols, asciiart.MaxDimension)
		}
	}

	interp, err := asciiart.ParseInterpolation(cfg.Output.Interpolation)
	if err != nil {
		logger.Error("invalid interpolation", "error", err)
		return exitUsage
	}

	g, err := asciiart.New(
		asciiart.WithConfig(cfg.Generator),
		asciiart.WithSurfaceProvider(asciiart.NewScalingProvider(interp)),
		asciiart.WithLogger(logger),
	)
	if err != nil {
		logger.Error("invalid generator configuration", "error", err)
		return exitUsage
	}

	em, err := newEmitter(outFormat, stdout, emitterOptions{
		title:   cfg.Output.Title,
		profile: colorProfile(stdout),
	})
	if err != nil {
		logger.Error("failed to create output", "error", err)
		return exitUsage
	}

	var failed bool
	if fs.Changed("text") {
		failed = convertText(g, em, flags.text, cfg.Text, logger)
	} else {
		paths := fs.Args()
		if len(paths) == 0 {
			if paths, err = readPaths(stdin); err != nil {
				logger.Error("failed to read paths from stdin", "error", err)
				return exitFailure
			}
		}
		failed = convertPaths(g, em, paths, logger)
	}

	if err := em.Close(); err != nil {
		logger.Error("failed to write output", "error", err)
		return exitFailure
	}

	if failed {
		return exitFailure
	}
	return exitOK
}

func convertText(g *asciiart.Generator, em emitter, text string, opts asciiart.TextOptions, logger *slog.Logger) (failed bool) {
	res, err := g.ConvertText(text, opts)
	if err != nil {
		logger.Error("text conversion failed", "error", err)
		return true
	}

	if err := em.Emit("text", res); err != nil {
		logger.Error("failed to write output", "error", err)
		return true
	}
	return false
}

// convertPaths converts every file path, and every image beneath every directory path. One failure does not stop the rest.
func convertPaths(g *asciiart.Generator, em emitter, paths []string, logger *slog.Logger) (failed bool) {
	convert := func(path string) (*asciiart.Result, error) {
		return convertFile(g, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			logger.Error("cannot read path", "path", path, "error", err)
			failed = true
			continue
		}

		if info.IsDir() {
			stats, err := cmdutil.ConvertTree(path, convert, em.Emit, logger)
			if err != nil {
				logger.Error("batch conversion stopped", "path", path, "error", err)
				failed = true
			}
			if stats.Failed > 0 {
				failed = true
			}
			logger.Info("converted directory",
				"path", path,
				"converted", stats.Converted,
				"failed", stats.Failed,
				"elapsed", stats.Elapsed,
			)
			continue
		}

		res, err := convert(path)
		if err != nil {
			logger.Error("conversion failed", "path", path, "error", describe(err))
			failed = true
			continue
		}

		if err := em.Emit(path, res); err != nil {
			logger.Error("failed to write output", "path", path, "error", err)
			return true
		}
	}

	return failed
}

// describe appends a hint to err for the error classes a user can act on.
func describe(err error) string {
	switch {
	case errors.Is(err, asciiart.ErrResourceLimit):
		return fmt.Sprintf("%v (try a smaller --width or drop --color)", err)
	case errors.Is(err, asciiart.ErrInvalidSource):
		return fmt.Sprintf("%v (is this a png, jpeg, gif, webp, bmp or tiff image?)", err)
	default:
		return err.Error()
	}
}
