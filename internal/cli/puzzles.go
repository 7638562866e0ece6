package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "puzzles",
		Short: "List stored puzzles, oldest first",
		Run:   runPuzzles,
	}
	RootCmd.AddCommand(cmd)
}

func runPuzzles(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store := openStore(cfg)

	handles, err := store.List()
	if err != nil {
		exitErr("list puzzles", err)
	}

	type item struct {
		Path    string `json:"path"`
		ID      string `json:"id"`
		Preset  string `json:"preset"`
		Size    int    `json:"size"`
		Created string `json:"created_utc"`
	}
	var items []item
	for _, h := range handles {
		doc, err := store.Read(h.Path)
		if err != nil {
			continue
		}
		items = append(items, item{
			Path:    h.Path,
			ID:      doc.Picked.ID,
			Preset:  doc.Preset.Key,
			Size:    doc.Size,
			Created: doc.CreatedUTC,
		})
	}

	if jsonOutput() {
		printJSON(map[string]any{"puzzles": items})
		return
	}

	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{it.Created, it.Preset, fmt.Sprintf("%dx%d", it.Size, it.Size), it.ID}
	}
	fmt.Println(renderTable([]string{"CREATED", "PRESET", "SIZE", "ID"}, rows))
}
