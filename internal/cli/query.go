package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/connectome-neuprint/neuprint-go/internal/output"
)

var (
	ErrNoQuery         = errors.New("no cypher query given")
	ErrTwoQueries      = errors.New("give the query either as an argument or with --file, not both")
	ErrInteractiveJSON = errors.New("--interactive needs table output")
)

type queryOptions struct {
	file        string
	copy        bool
	interactive bool
}

func (a *app) newQueryCommand() *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query [cypher]",
		Short: "Run a custom cypher query",
		Long: `Run a read-only cypher query through /api/custom/custom.

The query is sent verbatim. Use --file to read it from a file, or "--file -"
to read it from stdin.`,
		Example: `  neuprint query 'MATCH (n:Neuron) RETURN n.bodyId, n.type LIMIT 5'
  neuprint query --format csv --file query.cypher > out.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runQuery(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "F", "", `read the query from a file ("-" for stdin)`)
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "also copy the rendered result to the clipboard")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the result in a full-screen table")

	return cmd
}

func (a *app) runQuery(cmd *cobra.Command, args []string, opts queryOptions) error {
	cypher, err := readQuery(cmd.InOrStdin(), args, opts.file)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(a.cfg.OutputFormat)
	if err != nil {
		return err
	}
	if opts.interactive && format == output.FormatJSON {
		return ErrInteractiveJSON
	}

	svc, closeFn, err := a.newQueryService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := svc.Custom(cmd.Context(), cypher, format.QueryFormat())
	if err != nil {
		return err
	}

	if opts.interactive {
		return a.opts.ShowTable(cypher, res.Table)
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), format)
	if opts.copy {
		printer.CopyToClipboard()
	}
	return printer.Result(res)
}

func readQuery(stdin io.Reader, args []string, file string) (string, error) {
	if len(args) > 0 && file != "" {
		return "", ErrTwoQueries
	}

	var cypher string
	switch {
	case len(args) > 0:
		cypher = args[0]
	case file == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read query from stdin: %w", err)
		}
		cypher = string(data)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read query file: %w", err)
		}
		cypher = string(data)
	}

	if strings.TrimSpace(cypher) == "" {
		return "", ErrNoQuery
	}
	return cypher, nil
}
