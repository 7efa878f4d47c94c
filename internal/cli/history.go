package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

var ErrHistoryDisabled = errors.New("query history is disabled: set --history-dsn or NEUPRINT_HISTORY_DSN")

func (a *app) newHistoryCommand() *cobra.Command {
	var (
		limit    int
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the recorded custom queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Storage.HistoryDSN == "" {
				return ErrHistoryDisabled
			}

			svc, closeFn, err := a.withHistory(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeFn()

			if clearAll {
				removed, err := svc.ClearHistory(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries\n", removed)
				return nil
			}

			entries, err := svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printer, err := a.printer(cmd)
			if err != nil {
				return err
			}
			return printer.History(entries)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "number of entries to show, 0 for all")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete every recorded query")

	return cmd
}
