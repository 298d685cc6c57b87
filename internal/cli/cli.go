// Package cli is the command-line entry point: it parses flags, sets up
// logging and maps failures to exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"bmi/internal/adapter/terminal"
	"bmi/internal/app"
	"bmi/internal/domain"
	"bmi/internal/logging"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitAborted  = 1
	ExitInternal = 2
	ExitUsage    = 64
)

// Version is overridden at build time with -ldflags "-X bmi/internal/cli.Version=...".
var Version = "dev"

var errUsage = errors.New("usage")

// Run executes the calculator with the given process arguments and streams
// and returns the exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), args, stdin, stdout, stderr)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			code = report(stderr, fmt.Errorf("panic: %v", r))
		}
	}()
	return report(stderr, newApp(stdin, stdout, stderr).RunContext(ctx, args))
}

// report is the single error boundary of the program.
func report(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrInputAborted):
		_, _ = fmt.Fprintf(stderr, "bmi: %v\n", err)
		return ExitAborted
	case errors.Is(err, errUsage):
		_, _ = fmt.Fprintf(stderr, "bmi: %v\n", err)
		return ExitUsage
	default:
		_, _ = fmt.Fprintf(stderr, "An error occurred: %v\n", err)
		return ExitInternal
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	var (
		logLevel string
		noColor  bool
	)
	return &cli.App{
		Name:            "bmi",
		Usage:           "calculate your Body Mass Index interactively",
		Version:         Version,
		HideHelpCommand: true,
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Diagnostic log level: debug, info, warn, error",
				EnvVars:     []string{"BMI_LOG_LEVEL"},
				Value:       "warn",
				Destination: &logLevel,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable coloured output",
				Destination: &noColor,
			},
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %v", errUsage, err)
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return fmt.Errorf("%w: unexpected argument %q", errUsage, c.Args().First())
			}
			log := logging.New(stderr, logging.ParseLevel(logLevel))

			prompter := terminal.NewPrompter(terminal.NewStreamReader(stdin), stdout, log)
			presenter := terminal.NewPresenter(stdout, !noColor && isTerminal(stdout))
			svc := app.NewCalculatorService(prompter, presenter, log)

			log.Debug("starting", "version", Version)
			_, err := svc.Run(c.Context)
			return err
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
