package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vytor/uci2pgn/internal/config"
	"github.com/vytor/uci2pgn/internal/db"
	"github.com/vytor/uci2pgn/internal/logger"
	"github.com/vytor/uci2pgn/internal/repository/sqlite"
	"github.com/vytor/uci2pgn/internal/services"
	"github.com/vytor/uci2pgn/internal/uci"
)

// app holds what every subcommand needs once configuration is loaded.
type app struct {
	cfg     config.Config
	log     *logger.Logger
	archive *db.DB
	service services.ConversionService
}

// close releases the archive. It is safe to call more than once.
func (a *app) close() {
	if a.archive != nil {
		a.log.Debug("closing archive")
		_ = a.archive.Close()
		a.archive = nil
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var withOpening bool

	root := &cobra.Command{
		Use:   "uci2pgn",
		Short: "Convert UCI moves on stdin into a PGN game",
		Long: `uci2pgn reads chess moves in UCI long algebraic notation from standard
input, one move per line, plays them from the standard starting position and
prints the parsed move list followed by the game in PGN.

Examples:
  # Scholar's opening
  printf 'e2e4\ne7e5\ng1f3\n' | uci2pgn

  # Add ECO and Opening tags
  printf 'e2e4\nc7c5\n' | uci2pgn --opening

Environment (also read from .env):
  LOG_LEVEL        DEBUG, INFO, WARN or ERROR (default WARN)
  ARCHIVE_DB_PATH  SQLite file that records every conversion (default off)
  DETECT_OPENING   add ECO and Opening tags by default
  ADDR             listen address for "serve" (default :8080)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context(), cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			opening := a.cfg.DetectOpening
			if cmd.Flags().Changed("opening") {
				opening = withOpening
			}
			return runConvert(cmd.Context(), a, cmd.InOrStdin(), cmd.OutOrStdout(), opening)
		},
	}
	root.Flags().BoolVar(&withOpening, "opening", false, "add ECO and Opening tags from the opening book")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newHistoryCmd(a))
	return root
}

func (a *app) setup(ctx context.Context, logOut io.Writer) error {
	a.cfg = config.Load()
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = logger.New(
		logger.WithOutput(logOut),
		logger.WithLevel(logger.ParseLevel(a.cfg.LogLevel)),
		logger.WithColors(false),
	)
	logger.SetDefault(a.log)
	a.log.Debug("log_level=%s", a.cfg.LogLevel)
	a.log.Debug("archive_db_path=%s", a.cfg.ArchiveDBPath)
	a.log.Debug("detect_opening=%t", a.cfg.DetectOpening)

	if !a.cfg.ArchiveEnabled() {
		a.service = services.NewConversionService(nil)
		return nil
	}

	archive, err := db.Open(logger.NewContext(ctx, a.log), a.cfg.ArchiveDBPath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	a.archive = archive
	a.service = services.NewConversionService(sqlite.NewConversionRepository(archive.DB))
	return nil
}

// runConvert reads the whole input, echoes the parsed move list, then prints
// the PGN. Nothing after the move list is printed when a move is rejected.
func runConvert(ctx context.Context, a *app, in io.Reader, out io.Writer, opening bool) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	tokens := uci.SplitInput(string(raw))
	fmt.Fprintf(out, "%q\n", tokens)

	conv, err := a.service.Convert(logger.NewContext(ctx, a.log), tokens, services.ConvertOptions{Opening: opening})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, conv.PGN)
	return err
}
