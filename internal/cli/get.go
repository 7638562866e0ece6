package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sudoq/internal/config"
	"sudoq/internal/decode"
	"sudoq/internal/fetch"
	"sudoq/internal/model"
	"sudoq/internal/picker"
	"sudoq/internal/render"
	"sudoq/internal/share"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get <preset>",
		Short: "Fetch a puzzle from a preset and store it as JSON",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}

	cmd.Flags().Int("count", 1, "Fetch and store N unique puzzles")
	cmd.Flags().String("id", "", "Select puzzle by id fragment (case-insensitive substring)")
	cmd.Flags().Int("index", 0, "Select puzzle by 1-based batch index")
	cmd.Flags().Int64("seed", 0, "Seed for reproducible random selection")
	cmd.Flags().Bool("render", false, "Also render the puzzle image now")

	RootCmd.AddCommand(cmd)
}

type getItem struct {
	Preset      string `json:"preset"`
	Desc        string `json:"desc"`
	PuzzleID    string `json:"puzzle_id"`
	PickedIndex int    `json:"picked_index"`
	PuzzleCount int    `json:"puzzle_count"`
	Size        int    `json:"size"`
	LettersMode bool   `json:"letters_mode"`
	PuzzleJSON  string `json:"puzzle_json"`
	ShareKind   string `json:"share_kind"`
	ShareLink   string `json:"share_link,omitempty"`
	PuzzleImage string `json:"puzzle_image,omitempty"`
}

func runGet(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt("count")
	idFragment, _ := cmd.Flags().GetString("id")
	index, _ := cmd.Flags().GetInt("index")
	seed, _ := cmd.Flags().GetInt64("seed")
	doRender, _ := cmd.Flags().GetBool("render")

	if count < 1 {
		exitErr("get", fmt.Errorf("--count must be >= 1, got %d", count))
	}
	hasSelector := idFragment != "" || cmd.Flags().Changed("index")
	if count > 1 && hasSelector {
		exitErr("get", fmt.Errorf("--count > 1 cannot be combined with --id or --index"))
	}

	cfg := loadConfig()
	preset, ok := cfg.MergedPresets()[args[0]]
	if !ok {
		exitErr("get", fmt.Errorf("unknown preset %q (run: sudoq list)", args[0]))
	}

	store := openStore(cfg)
	used, err := store.UsedIDs()
	if err != nil {
		exitErr("scan corpus", err)
	}

	client := fetch.New(cfg.Timeout(), cfg.HTTP.UserAgent)
	opts := picker.Options{
		IDFragment: idFragment,
		Index:      index,
		HasIndex:   cmd.Flags().Changed("index"),
		Seed:       seed,
		HasSeed:    cmd.Flags().Changed("seed"),
		UsedIDs:    used,
	}

	var picks []picker.Picked
	if count == 1 {
		batch, err := client.Fetch(cmd.Context(), preset.URL)
		if err != nil {
			exitErr("fetch", err)
		}
		rec, idx, err := picker.Pick(batch, opts)
		if err != nil {
			exitErr("pick", err)
		}
		picks = []picker.Picked{{Record: rec, Index: idx, Total: len(batch)}}
	} else {
		picks, err = picker.PickMany(cmd.Context(), client.Fetcher(preset.URL), count, opts)
		if err != nil {
			exitErr("pick", err)
		}
	}

	var items []getItem
	for _, p := range picks {
		doc, err := buildDocument(preset, p)
		if err != nil {
			exitErr("decode puzzle", err)
		}
		h, err := store.Write(doc)
		if err != nil {
			exitErr("store puzzle", err)
		}

		item := getItem{
			Preset:      preset.Key,
			Desc:        preset.Desc,
			PuzzleID:    doc.Picked.ID,
			PickedIndex: doc.Picked.Index,
			PuzzleCount: doc.Picked.Total,
			Size:        doc.Size,
			LettersMode: preset.Letters,
			PuzzleJSON:  h.Path,
			ShareKind:   doc.Share.Kind,
			ShareLink:   doc.Share.Link,
		}
		if doRender {
			item.PuzzleImage = writeImage(cfg, doc, render.ImageOptions{}, "puzzle")
		}
		items = append(items, item)
	}

	if count == 1 {
		if jsonOutput() {
			printJSON(items[0])
			return
		}
		it := items[0]
		fmt.Printf("Stored: %s\n", it.PuzzleJSON)
		if it.PuzzleImage != "" {
			fmt.Printf("Puzzle image: %s\n", it.PuzzleImage)
		}
		if it.ShareKind != share.KindNone {
			fmt.Printf("Share link (%s): %s\n", it.ShareKind, it.ShareLink)
		}
		return
	}

	if jsonOutput() {
		ids := make([]string, len(items))
		for i, it := range items {
			ids[i] = it.PuzzleID
		}
		printJSON(map[string]any{
			"preset":          preset.Key,
			"desc":            preset.Desc,
			"count_requested": count,
			"count_fetched":   len(items),
			"puzzle_ids":      ids,
			"items":           items,
		})
		return
	}
	fmt.Printf("Stored %d puzzle(s):\n", len(items))
	for _, it := range items {
		fmt.Printf("- %s -> %s\n", it.PuzzleID, it.PuzzleJSON)
	}
}

func buildDocument(preset model.Preset, p picker.Picked) (*model.Document, error) {
	size, clues, solution, err := decode.Grid(p.Record.Data)
	if err != nil {
		return nil, err
	}
	bw, bh := model.BlockDims(size)

	return &model.Document{
		Version:    model.DocumentVersion,
		CreatedUTC: model.UTCStamp(time.Now()),
		Preset:     preset,
		Picked:     model.Picked{ID: p.Record.ID, Index: p.Index, Total: p.Total},
		Size:       size,
		Block:      model.Block{BW: bw, BH: bh},
		Clues:      clues,
		Solution:   solution,
		Share:      share.ForDocument(clues, size),
	}, nil
}

// writeImage renders doc as PNG under the renders dir and returns the path.
func writeImage(cfg *config.Config, doc *model.Document, opts render.ImageOptions, kind string) string {
	dir := rendersDir(cfg)
	if err := render.EnsureDir(dir); err != nil {
		exitErr("prepare renders dir", err)
	}
	img, err := render.Image(doc, opts)
	if err != nil {
		exitErr("render image", err)
	}
	out := render.OutputPath(dir, doc, kind, "png")
	if err := render.WritePNG(img, out); err != nil {
		exitErr("write image", err)
	}
	return out
}
