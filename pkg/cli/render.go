package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/recursive_art/pkg/engine"
)

func newRenderCommand(opts *rootOptions) *cobra.Command {
	var (
		output string
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "render <expressions.json>",
		Short: "Render an image from saved channel expressions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, closeLog, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer closeLog()

			sc, err := engine.ReadSidecar(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "-render.png"
			}
			if err := engine.Render(sc, output, width, height); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default <expressions>-render.png)")
	cmd.Flags().IntVar(&width, "width", 0, "image width (0 = size stored in the file)")
	cmd.Flags().IntVar(&height, "height", 0, "image height (0 = size stored in the file)")
	return cmd
}
