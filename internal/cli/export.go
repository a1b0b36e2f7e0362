package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export quotes, favorites and theme as JSON",
		Long:  "Export everything QuickQuotes stores for backup, as JSON on stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStorage()
			if err != nil {
				return err
			}
			defer st.Close()

			data, err := st.ExportData(a.cfg.User.ID)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(data)
		},
	}
}
