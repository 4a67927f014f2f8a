package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vytor/uci2pgn/internal/logger"
	"github.com/vytor/uci2pgn/internal/models"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit   int
		eco     string
		showPGN bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived conversions, newest first",
		Long: `History lists conversions recorded in the archive database.
The archive is enabled by setting ARCHIVE_DB_PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.NewContext(cmd.Context(), a.log)
			list, err := a.service.History(ctx, models.ConversionFilter{Limit: limit, ECOCode: eco})
			if err != nil {
				return err
			}
			return printHistory(cmd.OutOrStdout(), list, showPGN)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of conversions to list")
	cmd.Flags().StringVar(&eco, "eco", "", "only list conversions with this ECO code")
	cmd.Flags().BoolVar(&showPGN, "pgn", false, "print the PGN of each conversion")
	return cmd
}

func printHistory(out io.Writer, list []models.Conversion, showPGN bool) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "no conversions archived")
		return err
	}

	if showPGN {
		for i, c := range list {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# %d  %s\n%s\n", c.ID, c.CreatedAt.Format("2006-01-02 15:04:05"), c.PGN)
		}
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tPLIES\tECO\tMOVES")
	for _, c := range list {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
			c.ID, c.CreatedAt.Format("2006-01-02 15:04:05"), c.Plies, c.ECOCode, strings.Join(c.Moves, " "))
	}
	return tw.Flush()
}
