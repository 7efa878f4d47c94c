package cli

import (
	"github.com/spf13/cobra"

	"github.com/connectome-neuprint/neuprint-go/internal/service"
)

type metaCommand struct {
	use      string
	short    string
	endpoint service.MetaEndpoint
}

// "help" is taken by cobra, so the server's help document lives under api-help.
var metaCommands = []metaCommand{
	{use: "api-help", short: "Show the server's API help document", endpoint: service.MetaHelp},
	{use: "version", short: "Show the server version", endpoint: service.MetaVersion},
	{use: "available", short: "List the API endpoints available to this token", endpoint: service.MetaAvailable},
	{use: "database", short: "Show metadata about the backing database", endpoint: service.MetaDatabase},
	{use: "datasets", short: "List the datasets hosted by the server", endpoint: service.MetaDatasets},
}

func (a *app) newMetaCommand(m metaCommand) *cobra.Command {
	return &cobra.Command{
		Use:   m.use,
		Short: m.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			printer, err := a.printer(cmd)
			if err != nil {
				return err
			}

			// metadata requests are not recorded, so no history store is opened
			doc, err := service.NewQueryService(client, nil, a.log).Meta(cmd.Context(), m.endpoint)
			if err != nil {
				return err
			}
			return printer.Document(doc)
		},
	}
}
