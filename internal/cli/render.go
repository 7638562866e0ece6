package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sudoq/internal/render"
)

func init() {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a stored puzzle as PNG or PDF",
		Args:  cobra.NoArgs,
		Run:   runRender,
	}

	cmd.Flags().String("id", "", "Puzzle id or id prefix")
	cmd.Flags().Bool("latest", false, "Use the most recently stored puzzle")
	cmd.Flags().Bool("printable", false, "Print-friendly variant (title header, no short id)")
	cmd.Flags().Bool("pdf", false, "Render an A4 PDF instead of PNG")

	RootCmd.AddCommand(cmd)
}

func runRender(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	latest, _ := cmd.Flags().GetBool("latest")
	printable, _ := cmd.Flags().GetBool("printable")
	pdf, _ := cmd.Flags().GetBool("pdf")

	cfg := loadConfig()
	store := openStore(cfg)
	doc, _ := loadDocument(store, id, latest)

	kind := "puzzle"
	if printable {
		kind = "print"
	}

	var out string
	if pdf {
		dir := rendersDir(cfg)
		if err := render.EnsureDir(dir); err != nil {
			exitErr("prepare renders dir", err)
		}
		out = render.OutputPath(dir, doc, kind, "pdf")
		if err := render.PDF(doc, render.PDFOptions{Printable: printable}, out); err != nil {
			exitErr("render pdf", err)
		}
	} else {
		out = writeImage(cfg, doc, render.ImageOptions{Printable: printable}, kind)
	}

	if jsonOutput() {
		printJSON(map[string]any{
			"puzzle_id": doc.Picked.ID,
			"output":    out,
		})
		return
	}
	fmt.Printf("Rendered %s: %s\n", doc.ShortID(), out)
}
