package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/slashdevops/id128"
	"github.com/slashdevops/id128/internal/logging"
)

// Environment variables used as flag defaults.
const (
	envLibrary   = "ID128_LIBRARY"
	envLogLevel  = "ID128_LOG_LEVEL"
	envLogFormat = "ID128_LOG_FORMAT"
)

// Structured output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// options holds the global flags and the state derived from them.
type options struct {
	format    string
	upper     bool
	output    string
	library   string
	quiet     bool
	logLevel  string
	logFormat string

	// native replaces libsystemd when set (tests).
	native id128.Native

	mode     id128.FormatMode
	provider *id128.Provider
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   applicationName,
		Short: "Query systemd 128-bit identifiers through libsystemd",
		Long: `id128 prints the boot, machine and invocation IDs of this system, generates
random IDs and converts IDs between their textual layouts. All identifier
values come from libsystemd's sd-id128 API.`,
		Example: `  id128 boot
  id128 machine --app 8a4b6e7f2c1d4e5f9a0b1c2d3e4f5a6b --format hex
  id128 random -n 3 --upper
  id128 parse 0123-4567-89ab-cdef-0123-4567-89ab-cdef
  id128 show --output yaml`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&o.format, "format", "f", "rfc", "Text layout of printed IDs: rfc, hex, simple")
	flags.BoolVarP(&o.upper, "upper", "u", false, "Print hex digits in upper case")
	flags.StringVarP(&o.output, "output", "o", outputText, "Output format: text, json, yaml")
	flags.StringVar(&o.library, "library", envOr(envLibrary, id128.DefaultLibrary), "libsystemd shared object to load [$"+envLibrary+"]")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "Discard all log output")
	flags.StringVar(&o.logLevel, "log-level", envOr(envLogLevel, "warn"), "Log level: debug, info, warn, error [$"+envLogLevel+"]")
	flags.StringVar(&o.logFormat, "log-format", envOr(envLogFormat, "text"), "Log format: text, json [$"+envLogFormat+"]")

	root.AddCommand(
		newBootCmd(o),
		newMachineCmd(o),
		newInvocationCmd(o),
		newRandomCmd(o),
		newShowCmd(o),
		newParseCmd(o),
		newVersionCmd(o),
	)

	return root
}

// setup validates the global flags and builds the logger and provider.
func (o *options) setup(cmd *cobra.Command, _ []string) error {
	mode, err := id128.ParseFormatMode(o.format)
	if err != nil {
		return err
	}
	o.mode = mode

	switch o.output {
	case outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unknown output %q; valid values are text, json, yaml", o.output)
	}

	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(o.logFormat)
	if err != nil {
		return err
	}

	logger := logging.Nop()
	if !o.quiet {
		logger = logging.New(logging.Config{Level: level, Format: format, Output: cmd.ErrOrStderr()})
	}
	slog.SetDefault(logger)

	o.provider = id128.New().WithLibrary(o.library).WithLogger(logger)
	if o.native != nil {
		o.provider.WithNative(o.native)
	}

	return nil
}

// text renders an ID with the selected layout and case.
func (o *options) text(id id128.ID) string {
	c := id128.Lower
	if o.upper {
		c = id128.Upper
	}

	return id.Text(o.mode, c)
}

// parseApp parses the --app flag leniently.
func parseApp(s string) (id128.ID, error) {
	app, err := id128.ParseLax(s)
	if err != nil {
		return id128.Null, fmt.Errorf("--app: %w", err)
	}

	return app, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// writeText is a small helper for the text renderers.
func writeText(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)

	return err
}
