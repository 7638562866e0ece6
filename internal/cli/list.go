package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sudoq/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		Run:   runList,
	}
	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	presets := cfg.MergedPresets()

	type item struct {
		Preset  string `json:"preset"`
		Desc    string `json:"desc"`
		Letters bool   `json:"letters"`
		URL     string `json:"url"`
	}
	var items []item
	for _, key := range model.PresetKeys(presets) {
		p := presets[key]
		items = append(items, item{Preset: p.Key, Desc: p.Desc, Letters: p.Letters, URL: p.URL})
	}

	if jsonOutput() {
		printJSON(map[string]any{"presets": items})
		return
	}

	rows := make([][]string, len(items))
	for i, it := range items {
		letters := ""
		if it.Letters {
			letters = "letters"
		}
		rows[i] = []string{it.Preset, it.Desc, letters, it.URL}
	}
	fmt.Println(renderTable([]string{"PRESET", "DESCRIPTION", "MODE", "URL"}, rows))
}
