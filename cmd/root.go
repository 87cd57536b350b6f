package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jpts/incidr/internal/config"
	"github.com/jpts/incidr/pkg/ipv4"
	"github.com/jpts/incidr/pkg/render"
	"github.com/jpts/incidr/pkg/types"
)

// UsageError is a problem with the command line itself rather than with one
// of the addresses on it.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func newRootCmd(opts *types.CliOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "incidr [options] <address-or-cidr> [<address-or-cidr> ...]",
		Short: "Display v4 IPs and/or CIDR blocks in dotted-quad, binary, hex, and decimal",
		Long: `Display v4 IPs and/or CIDR blocks in dotted-quad, binary, hex, and decimal.

Addresses may be given as a.b.c.d, a.b.c.d/n, a decimal integer or a 0x
prefixed hex integer. Any combination of --quad, --binary, --hexadecimal and
--decimal selects the columns shown; the default is all of them. Long options
may be abbreviated to any unambiguous prefix.`,
		Example: `  incidr 10.20.30.40/24
  incidr --mask 24 --mask 16 10.0.0.1
  incidr --q --hex 169090600`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &UsageError{Err: errors.New("at least one address or CIDR block is required")}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, opts); err != nil {
				return err
			}

			lvl, err := zerolog.ParseLevel(fmt.Sprint(opts.LogLevel))
			if err != nil {
				return errors.New("Error setting up logging")
			}
			zerolog.SetGlobalLevel(lvl)
			if opts.ConfigFile != "" {
				log.Debug().Msgf("loaded config from %s", opts.ConfigFile)
			}

			entries, err := ipv4.ParseAll(args, opts.Masks)
			if err != nil {
				return err
			}
			for _, e := range entries {
				log.Debug().Msgf("parsed %s as %08x with %d mask(s)", e.Token, e.Token.Value, len(e.Masks))
			}

			formats := selectedFormats(opts)
			if opts.Table {
				render.Table(cmd.OutOrStdout(), entries, formats)
				return nil
			}
			return render.Text(cmd.OutOrStdout(), entries, render.Options{
				Formats: formats,
				Summary: opts.Summary,
				Reverse: opts.Reverse,
			})
		},
	}

	// display filters
	rootCmd.Flags().BoolVarP(&opts.Quad, "quad", "q", false, "Display the addresses as dotted quads")
	rootCmd.Flags().BoolVarP(&opts.Binary, "binary", "b", false, "Display the addresses as binary")
	rootCmd.Flags().BoolVarP(&opts.Hexadecimal, "hexadecimal", "x", false, "Display the addresses as hexadecimal ints")
	rootCmd.Flags().BoolVarP(&opts.Decimal, "decimal", "d", false, "Display the addresses as base-10 ints")

	rootCmd.Flags().StringArrayVarP(&opts.Masks, "mask", "m", nil, "Prefix length (0-32) to apply to bare addresses, repeatable")

	// output
	rootCmd.Flags().BoolVarP(&opts.Table, "table", "t", false, "Render all addresses as a single table")
	rootCmd.Flags().BoolVarP(&opts.Summary, "summary", "s", false, "Show the address range of each masked network")
	rootCmd.Flags().BoolVarP(&opts.Reverse, "reverse", "r", false, "Show the reverse DNS name of each address")

	rootCmd.Flags().IntVarP(&opts.LogLevel, "loglevel", "v", 1, "Set loglevel (-1 => 5)")
	rootCmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "YAML file with default options")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	rootCmd.InitDefaultHelpFlag()

	return rootCmd
}

// applyConfig fills in options from the config file that were not set on
// the command line.
func applyConfig(cmd *cobra.Command, opts *types.CliOpts) error {
	if opts.ConfigFile == "" {
		return nil
	}
	cfg, err := config.LoadConfig(opts.ConfigFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("loglevel") && cfg.LogLevel != nil {
		opts.LogLevel = *cfg.LogLevel
	}
	if !flags.Changed("mask") {
		for _, m := range cfg.Masks {
			opts.Masks = append(opts.Masks, strconv.Itoa(m))
		}
	}
	if !flags.Changed("table") {
		opts.Table = cfg.Table
	}
	if !flags.Changed("summary") {
		opts.Summary = cfg.Summary
	}
	if !flags.Changed("reverse") {
		opts.Reverse = cfg.Reverse
	}

	if selectedFormats(opts) != 0 {
		return nil
	}
	for _, name := range cfg.Formats {
		f, err := render.ParseFormat(name)
		if err != nil {
			return fmt.Errorf("config %s: %w", opts.ConfigFile, err)
		}
		switch f {
		case render.Quad:
			opts.Quad = true
		case render.Binary:
			opts.Binary = true
		case render.Hex:
			opts.Hexadecimal = true
		case render.Decimal:
			opts.Decimal = true
		}
	}
	return nil
}

func selectedFormats(opts *types.CliOpts) render.Formats {
	var fs render.Formats
	if opts.Quad {
		fs = fs.With(render.Quad)
	}
	if opts.Binary {
		fs = fs.With(render.Binary)
	}
	if opts.Hexadecimal {
		fs = fs.With(render.Hex)
	}
	if opts.Decimal {
		fs = fs.With(render.Decimal)
	}
	return fs
}

// consoleWriter only colours output going to a terminal.
func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	noColor := true
	if f, ok := out.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}
	return zerolog.ConsoleWriter{Out: out, NoColor: noColor}
}

func execute(args []string, stdout, stderr io.Writer) int {
	log.Logger = log.Output(consoleWriter(stderr))

	var opts types.CliOpts
	rootCmd := newRootCmd(&opts)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	expanded, err := expandLongFlags(rootCmd.Flags(), args)
	if err == nil {
		rootCmd.SetArgs(expanded)
		err = rootCmd.Execute()
	}
	if err != nil {
		// printed directly so --loglevel cannot hide it
		fmt.Fprintln(stderr, "Error:", err)
		log.Debug().Msgf("%T", err)

		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
		}
		return 1
	}
	return 0
}

func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
