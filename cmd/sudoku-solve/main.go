package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/adapters/text"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/infrastructure/puzzlefile"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

type options struct {
	puzzlePath    string
	format        string
	logLevel      string
	timeout       time.Duration
	requireUnique bool
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "sudoku-solve",
		Short: "Solve a 9x9 sudoku read from a text file",
		Long: "Reads a puzzle of 81 digit cells (0 = empty, any non-digit is a\n" +
			"separator) and prints its completion, searching by exhaustive\n" +
			"backtracking.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), os.Stdout, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.puzzlePath, "sudoku-path", "s", "", "file with the task")
	cmd.Flags().StringVar(&opts.format, "format", "pretty", "output format: pretty|plain")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "abort the search after this long (0 = no limit)")
	cmd.Flags().BoolVar(&opts.requireUnique, "require-unique", false, "fail unless the puzzle has exactly one solution")
	_ = cmd.MarkFlagRequired("sudoku-path")
	return cmd
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func run(ctx context.Context, w io.Writer, opts options) error {
	logger := newLogger(opts.logLevel)
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	uc := usecase.NewService(solver.NewBacktrackingSolver(), validator.New(), puzzlefile.NewFS())

	format := text.Pretty
	if strings.EqualFold(strings.TrimSpace(opts.format), "plain") {
		format = text.Plain
	}
	rd := text.NewRenderer(format)

	in, err := uc.Load(ctx, opts.puzzlePath)
	if err != nil {
		logger.Error("cannot load sudoku from file", "path", opts.puzzlePath, "err", err)
		return err
	}
	fmt.Fprintln(w, "Solving sudoku")
	fmt.Fprint(w, rd.Render(in))

	out, st, err := uc.Solve(ctx, in)
	switch {
	case errors.Is(err, domain.ErrInvalidGivens):
		_, conflicts, _ := uc.Validate(ctx, in)
		for _, cc := range conflicts {
			logger.Error("duplicate given", "row", cc.Row, "col", cc.Col)
		}
		return fmt.Errorf("puzzle rejected: %w", err)
	case errors.Is(err, domain.ErrUnsolvable):
		fmt.Fprintln(w, "Cannot solve sudoku")
		return err
	case err != nil:
		return err
	}
	logger.Debug("search finished", "nodes", st.Nodes, "dur", st.Duration.Round(time.Microsecond))

	if opts.requireUnique {
		unique, ust, err := uc.Unique(ctx, in)
		if err != nil {
			return err
		}
		logger.Debug("uniqueness check", "nodes", ust.Nodes, "dur", ust.Duration.Round(time.Microsecond))
		if !unique {
			return errors.New("puzzle has more than one solution")
		}
	}

	fmt.Fprintln(w, "Solved!")
	fmt.Fprint(w, rd.Render(out))
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
