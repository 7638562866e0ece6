package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sudoq/internal/model"
	"sudoq/internal/render"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the solution of a stored puzzle (full, per box or per cell)",
		Args:  cobra.NoArgs,
		Run:   runReveal,
	}

	cmd.Flags().String("id", "", "Puzzle id or id prefix")
	cmd.Flags().Bool("latest", false, "Use the most recently stored puzzle")
	cmd.Flags().Bool("full", false, "Reveal the whole solution (default)")
	cmd.Flags().IntSlice("box", nil, "Reveal one box: --box IDX or --box ROW,COL (1-based)")
	cmd.Flags().IntSlice("cell", nil, "Reveal one cell: --cell ROW,COL (1-based)")
	cmd.Flags().Bool("image", false, "With --cell: also write a one-cell crop image")
	cmd.Flags().Bool("printable", false, "Print-friendly variant")
	cmd.Flags().Bool("pdf", false, "With full reveal: render an A4 PDF")

	RootCmd.AddCommand(cmd)
}

func runReveal(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	latest, _ := cmd.Flags().GetBool("latest")
	full, _ := cmd.Flags().GetBool("full")
	box, _ := cmd.Flags().GetIntSlice("box")
	cell, _ := cmd.Flags().GetIntSlice("cell")
	withImage, _ := cmd.Flags().GetBool("image")
	printable, _ := cmd.Flags().GetBool("printable")
	pdf, _ := cmd.Flags().GetBool("pdf")

	if full && (len(box) > 0 || len(cell) > 0) {
		exitErr("reveal", fmt.Errorf("use only one of --full / --box / --cell"))
	}
	if len(box) > 0 && len(cell) > 0 {
		exitErr("reveal", fmt.Errorf("use only one of --box / --cell"))
	}

	cfg := loadConfig()
	store := openStore(cfg)
	doc, h := loadDocument(store, id, latest)

	wantFull := full || (len(box) == 0 && len(cell) == 0)

	if pdf && wantFull {
		dir := rendersDir(cfg)
		if err := render.EnsureDir(dir); err != nil {
			exitErr("prepare renders dir", err)
		}
		out := render.OutputPath(dir, doc, "reveal_print", "pdf")
		if err := render.PDF(doc, render.PDFOptions{Solution: true, Printable: true}, out); err != nil {
			exitErr("render pdf", err)
		}
		if jsonOutput() {
			printJSON(map[string]any{"puzzle_json": h.Path, "solution_pdf": out})
			return
		}
		fmt.Println(out)
		return
	}

	kind := "reveal"
	if printable {
		kind = "reveal_print"
	}
	revealImg := writeImage(cfg, doc, render.ImageOptions{Solution: true, Printable: printable}, kind)

	if wantFull {
		if jsonOutput() {
			printJSON(map[string]any{"puzzle_json": h.Path, "solution_image": revealImg})
			return
		}
		fmt.Println(revealImg)
		return
	}

	if len(box) > 0 {
		idx, boxR, boxC := resolveBox(doc.Size, box)
		out := render.OutputPath(rendersDir(cfg), doc, fmt.Sprintf("box_%d_r%d_c%d", idx, boxR, boxC), "png")
		if err := render.CropBox(revealImg, doc.Size, boxR, boxC, out); err != nil {
			exitErr("crop box", err)
		}
		if jsonOutput() {
			printJSON(map[string]any{
				"puzzle_json": h.Path,
				"box":         map[string]int{"index": idx, "r": boxR, "c": boxC},
				"image":       out,
			})
			return
		}
		fmt.Println(out)
		return
	}

	if len(cell) != 2 {
		exitErr("reveal", fmt.Errorf("--cell expects 2 values (row col), got %d", len(cell)))
	}
	r, c := cell[0], cell[1]
	if r < 1 || r > doc.Size || c < 1 || c > doc.Size {
		exitErr("reveal", fmt.Errorf("cell out of range: (%d,%d) for size %d", r, c, doc.Size))
	}

	val := doc.Solution[r-1][c-1]
	text := model.FormatCellValue(val, doc.LettersMode())

	var cellImg string
	if withImage {
		cellImg = render.OutputPath(rendersDir(cfg), doc, fmt.Sprintf("cell_r%d_c%d", r, c), "png")
		if err := render.CropCell(revealImg, doc.Size, r, c, cellImg); err != nil {
			exitErr("crop cell", err)
		}
	}

	if jsonOutput() {
		out := map[string]any{
			"puzzle_json": h.Path,
			"cell":        map[string]int{"r": r, "c": c},
			"value":       val,
			"text":        text,
		}
		if cellImg != "" {
			out["image"] = cellImg
		}
		printJSON(out)
		return
	}
	fmt.Println(text)
	if cellImg != "" {
		fmt.Println(cellImg)
	}
}

// resolveBox turns either a single 1-based box index or a row/col pair into
// the (index, boxR, boxC) triple, validating ranges for the given size.
func resolveBox(size int, vals []int) (idx, boxR, boxC int) {
	var err error
	switch len(vals) {
	case 1:
		idx = vals[0]
		boxR, boxC, err = render.BoxFromIndex(size, idx)
		if err != nil {
			exitErr("reveal", err)
		}
	case 2:
		boxR, boxC = vals[0], vals[1]
		idx, err = render.BoxIndex(size, boxR, boxC)
		if err != nil {
			exitErr("reveal", err)
		}
	default:
		exitErr("reveal", fmt.Errorf("--box expects 1 value (index) or 2 values (row col), got %d", len(vals)))
	}
	return idx, boxR, boxC
}
