package plot

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/plot/recording"
)

// ParseMode controls ParseOpts. Modes combine with |.
type ParseMode int

const (
	// ParseFull treats unknown options as errors.
	ParseFull ParseMode = 1 << iota

	// ParseSkip returns unknown options with the remaining arguments.
	ParseSkip

	// ParseQuiet suppresses usage and error messages.
	ParseQuiet

	// ParseNoProgram means args[0] is not the program name.
	ParseNoProgram
)

// flagState holds the option table and the values without a Stream field.
type flagState struct {
	fs      *flag.FlagSet
	help    bool
	version bool
}

// FlagSet returns the stream's option table. Callers can define their own
// options on it before ParseOpts, which then parses both sets together.
func (s *Stream) FlagSet() *flag.FlagSet {
	if s.flags == nil {
		s.flags = s.newFlagState()
	}
	return s.flags.fs
}

func (s *Stream) newFlagState() *flagState {
	st := &flagState{fs: flag.NewFlagSet(s.program, flag.ContinueOnError)}
	fs := st.fs
	fs.SetOutput(s.stderr)

	fs.StringVar(&s.device, "dev", s.device, "output device ("+strings.Join(recording.Backends(), ", ")+")")
	fs.StringVar(&s.output, "o", s.output, "output file, - for standard output")
	fs.Func("geometry", "page size in pixels, `WxH`", func(v string) error {
		w, h, err := parseGeometry(v)
		if err != nil {
			return err
		}
		s.widthPx, s.heightPx = w, h
		return nil
	})
	fs.Func("dpi", "resolution in dots per inch", func(v string) error {
		dpi, err := strconv.ParseFloat(v, 64)
		if err != nil || dpi <= 0 {
			return fmt.Errorf("%w: dpi %q", ErrBadOption, v)
		}
		s.dpi = dpi
		return nil
	})
	fs.Func("bg", "background color, `hex` such as ffffff", func(v string) error {
		c, err := recording.ParseHex(v)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadColor, err)
		}
		s.cmap0[0] = c
		return nil
	})
	fs.Func("ncol0", "number of colors in color map 0", func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: ncol0 %q", ErrBadOption, v)
		}
		s.cmap0 = s.cmap0.Resize(n)
		return nil
	})
	fs.Func("cmap0", "color map 0 as comma-separated hex `colors`", func(v string) error {
		p, err := ParsePalette(v, s.cmap0)
		if err != nil {
			return err
		}
		s.cmap0 = p
		return nil
	})
	fs.Func("px", "subpages in x", func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: px %q", ErrBadOption, v)
		}
		s.nx = n
		return nil
	})
	fs.Func("py", "subpages in y", func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: py %q", ErrBadOption, v)
		}
		s.ny = n
		return nil
	})
	fs.Func("width", "default pen width", func(v string) error {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil || w < 0 {
			return fmt.Errorf("%w: width %q", ErrBadStyle, v)
		}
		s.width = w
		return nil
	})
	fs.Func("cfg", "TOML or YAML config `file` with session defaults", func(v string) error {
		cfg, err := LoadConfig(v)
		if err != nil {
			return err
		}
		return cfg.Apply(s)
	})
	fs.BoolVar(&s.verbose, "verbose", s.verbose, "log session progress to stderr")
	fs.BoolVar(&s.debug, "debug", s.debug, "log debugging output to stderr")
	fs.BoolVar(&st.version, "v", false, "print the library version")
	fs.BoolVar(&st.help, "h", false, "print this help")
	return st
}

// ParseOpts parses command-line options into the stream and returns the
// arguments it did not consume. Options may be written -name value or
// -name=value, with one or two dashes; "--" ends option parsing.
//
// -h prints usage and returns flag.ErrHelp. -v prints the version and
// returns ErrVersionShown.
func (s *Stream) ParseOpts(args []string, mode ParseMode) ([]string, error) {
	fs := s.FlagSet()
	quiet := mode&ParseQuiet != 0

	if mode&ParseNoProgram == 0 && len(args) > 0 {
		s.program = programName(args[0])
		args = args[1:]
	}

	fail := func(err error) ([]string, error) {
		if !quiet {
			fmt.Fprintf(fs.Output(), "%s: %v\n", s.program, err)
			s.usage()
		}
		return nil, err
	}

	var rest []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			rest = append(rest, args[i+1:]...)
			break
		}
		if len(a) < 2 || a[0] != '-' {
			rest = append(rest, a)
			continue
		}

		name := strings.TrimPrefix(a[1:], "-")
		name, value, hasValue := strings.Cut(name, "=")
		f := fs.Lookup(name)
		if f == nil {
			if mode&ParseSkip != 0 {
				rest = append(rest, a)
				continue
			}
			return fail(fmt.Errorf("%w: unrecognized option -%s", ErrBadOption, name))
		}

		if !hasValue {
			if isBoolFlag(f) {
				value = "true"
			} else {
				if i+1 == len(args) {
					return fail(fmt.Errorf("%w: option -%s needs an argument", ErrBadOption, name))
				}
				i++
				value = args[i]
			}
		}
		if err := fs.Set(name, value); err != nil {
			if !errors.Is(err, ErrBadOption) && !errors.Is(err, ErrBadColor) && !errors.Is(err, ErrBadStyle) {
				err = fmt.Errorf("%w: -%s %q: %v", ErrBadOption, name, value, err)
			}
			return fail(err)
		}

		switch {
		case s.flags.help:
			s.flags.help = false
			if !quiet {
				s.usage()
			}
			return nil, flag.ErrHelp
		case s.flags.version:
			s.flags.version = false
			if !quiet {
				fmt.Fprintf(fs.Output(), "plot library version: %s\n", Version)
			}
			return nil, ErrVersionShown
		}
	}

	s.applyLogging()
	return rest, nil
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func (s *Stream) usage() {
	fs := s.FlagSet()
	fmt.Fprintf(fs.Output(), "Usage: %s [options]\n", s.program)
	fs.PrintDefaults()
}

// applyLogging installs a stderr logger for -verbose and -debug.
func (s *Stream) applyLogging() {
	level := slog.LevelInfo
	switch {
	case s.debug:
		level = slog.LevelDebug
	case s.verbose:
	default:
		return
	}
	SetLogger(slog.New(slog.NewTextHandler(s.stderr, &slog.HandlerOptions{Level: level})))
}
