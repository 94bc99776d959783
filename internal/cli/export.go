package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/money-dungeon-web/internal/export"
	"github.com/preston-bernstein/money-dungeon-web/internal/loader"
	"github.com/preston-bernstein/money-dungeon-web/internal/logging"
	"github.com/preston-bernstein/money-dungeon-web/internal/timeutil"
)

func (a *app) exportCommand() *cobra.Command {
	var (
		out  string
		lang string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the rendered page and structured data to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = a.cfg.ExportDir
			}
			l := loader.New(loader.StaticMessage(a.cfg.FooterMessage)).WithClock(a.opts.Now)
			w := export.NewWriter(out).WithLocale(timeutil.MatchLocale(lang))

			m, err := w.Export(cmd.Context(), l.Load(cmd.Context()))
			if err != nil {
				return fmt.Errorf("export to %s: %w", out, err)
			}
			for _, f := range m.Files {
				logging.Info(a.logger, "exported file",
					"file", f.Name,
					logging.FieldBytes, f.Bytes,
					"changed", f.Changed,
				)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d files to %s\n", len(m.Files), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output directory (overrides EXPORT_DIR)")
	cmd.Flags().StringVar(&lang, "lang", "", "Accept-Language used for the announcement date")
	return cmd
}
