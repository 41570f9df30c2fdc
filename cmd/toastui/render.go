package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toastui/internal/errors"
	"github.com/vango-dev/toastui/internal/gallery"
	"github.com/vango-dev/toastui/pkg/render"
	"github.com/vango-dev/toastui/pkg/vdom"
)

// createOutput opens the -o target.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeOutput runs write against stdout, or against the file at path when
// one is given. A failed close is reported like a failed write.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := createOutput(path)
	if err != nil {
		return errors.New("E101").WithDetail("Cannot create " + path).Wrap(err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.New("E101").WithDetail("Cannot write " + path).Wrap(err)
	}
	return nil
}

func renderCmd(g *globals) *cobra.Command {
	var (
		t       gallery.Toast
		page    bool
		fixture string
		pretty  bool
		out     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a toast or the gallery to HTML",
		Long: `Render a single toast from flags, or the whole gallery page.

Examples:
  toastui render --title "Saved" --description "All changes stored."
  toastui render --variant destructive --title "Uh oh!" --action "Try again"
  toastui render --gallery --fixture toasts.yaml -o gallery.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var node *vdom.VNode
			if page {
				f, err := loadFixture(cfg, fixture)
				if err != nil {
					return err
				}
				data := f.Page(gallery.Handlers{}, cfg.Gallery.StyleSheet)
				if f.Title == "" && cfg.Gallery.Title != "" {
					data.Title = cfg.Gallery.Title
				}
				node = render.BuildPage(data)
			} else {
				if t.ID == "" {
					t.ID = "toast"
				}
				node = t.Node(gallery.Handlers{})
			}

			r := render.NewRenderer(render.RendererConfig{
				Pretty: pretty || cfg.Render.Pretty,
				Indent: strings.Repeat(" ", cfg.Render.Indent),
			})
			newline := !page && !(pretty || cfg.Render.Pretty)
			err = writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				if err := r.RenderToWriter(w, node); err != nil {
					return err
				}
				if newline {
					if _, err := io.WriteString(w, "\n"); err != nil {
						return errors.New("E101").Wrap(err)
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			logger.Debug("rendered", "gallery", page, "out", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&t.ID, "id", "", "Element id (default \"toast\")")
	cmd.Flags().StringVar(&t.Variant, "variant", "default", "Variant: default or destructive")
	cmd.Flags().StringVar(&t.Title, "title", "", "Title text")
	cmd.Flags().StringVar(&t.Description, "description", "", "Description text")
	cmd.Flags().StringVar(&t.Action, "action", "", "Action button label")
	cmd.Flags().StringVar(&t.Class, "class", "", "Extra classes merged over the variant")
	cmd.Flags().StringVar(&t.State, "state", "open", "data-state: open or closed")
	cmd.Flags().BoolVar(&page, "gallery", false, "Render the gallery page instead of one toast")
	cmd.Flags().StringVar(&fixture, "fixture", "", "Gallery fixture YAML (default from config or built-in)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the HTML")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")

	return cmd
}
