package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sudoq/internal/share"
)

func init() {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a web link for a stored puzzle",
		Args:  cobra.NoArgs,
		Run:   runShare,
	}

	cmd.Flags().String("id", "", "Puzzle id or id prefix")
	cmd.Flags().Bool("latest", false, "Use the most recently stored puzzle")

	RootCmd.AddCommand(cmd)
}

func runShare(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	latest, _ := cmd.Flags().GetBool("latest")

	cfg := loadConfig()
	store := openStore(cfg)
	doc, _ := loadDocument(store, id, latest)

	s := doc.Share
	if s.Kind == "" || s.Kind == share.KindNone {
		s = share.ForDocument(doc.Clues, doc.Size)
	}
	if s.Kind == share.KindNone {
		exitErr("share", fmt.Errorf("no share link available for %dx%d puzzles", doc.Size, doc.Size))
	}

	if jsonOutput() {
		printJSON(map[string]any{
			"puzzle_id":  doc.Picked.ID,
			"share_kind": s.Kind,
			"share_link": s.Link,
		})
		return
	}
	fmt.Println(s.Link)
}
