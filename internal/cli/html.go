package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sudoq/internal/render"
)

func init() {
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Render a stored puzzle as a standalone HTML page",
		Args:  cobra.NoArgs,
		Run:   runHTML,
	}

	cmd.Flags().String("id", "", "Puzzle id or id prefix")
	cmd.Flags().Bool("latest", false, "Use the most recently stored puzzle")

	RootCmd.AddCommand(cmd)
}

func runHTML(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	latest, _ := cmd.Flags().GetBool("latest")

	cfg := loadConfig()
	store := openStore(cfg)
	doc, _ := loadDocument(store, id, latest)

	dir := rendersDir(cfg)
	if err := render.EnsureDir(dir); err != nil {
		exitErr("prepare renders dir", err)
	}
	out := render.OutputPath(dir, doc, "puzzle", "html")
	if err := os.WriteFile(out, []byte(render.HTML(doc)), 0o644); err != nil {
		exitErr("write html", err)
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
