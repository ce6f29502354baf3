package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-cvtemplates/pkg/gallery"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		format     string
		output     string
		standalone bool
		pick       bool
	)
	cmd := &cobra.Command{
		Use:   "render [id]",
		Short: "Render one template to stdout or a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := a.gallery(ctx)
			if err != nil {
				return err
			}

			var id int
			switch {
			case len(args) == 1:
				id, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("cvtemplates: invalid template id %q", args[0])
				}
			case pick:
				id, err = a.picker.Pick(ctx, g.Entries())
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("cvtemplates: a template id or --pick is required")
			}

			res, err := g.Render(ctx, gallery.Request{
				ID:         id,
				Renderer:   format,
				Standalone: standalone,
			})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(res.Body)
				return err
			}
			if err := os.WriteFile(output, res.Body, 0o644); err != nil {
				return fmt.Errorf("cvtemplates: write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Plantilla %d (%s) escrita en %s\n", res.ID, res.Label, output)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&format, "format", "f", "", "renderer: html or json (default from config)")
	flags.StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	flags.BoolVar(&standalone, "standalone", true, "wrap HTML output in a full printable page")
	flags.BoolVar(&pick, "pick", false, "choose the template interactively")
	return cmd
}
