package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/wildfunctions/recursive_art/pkg/art"
)

// ImageResult summarizes one generated image.
type ImageResult struct {
	Index      int           `json:"index"`
	File       string        `json:"file"`
	ExprFile   string        `json:"expr_file,omitempty"`
	Seed       int64         `json:"seed"`
	Red        string        `json:"red"`
	Green      string        `json:"green"`
	Blue       string        `json:"blue"`
	RedLaTeX   string        `json:"red_latex"`
	GreenLaTeX string        `json:"green_latex"`
	BlueLaTeX  string        `json:"blue_latex"`
	Depths     [3]int        `json:"depths"`
	NodeCount  int           `json:"node_count"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

func newImageResult(index int, seed int64, path string, c art.Channels) ImageResult {
	return ImageResult{
		Index:      index,
		File:       path,
		Seed:       seed,
		Red:        c.Red.String(),
		Green:      c.Green.String(),
		Blue:       c.Blue.String(),
		RedLaTeX:   c.Red.LaTeX(),
		GreenLaTeX: c.Green.LaTeX(),
		BlueLaTeX:  c.Blue.LaTeX(),
		Depths:     [3]int{c.Red.Depth(), c.Green.Depth(), c.Blue.Depth()},
		NodeCount:  c.NodeCount(),
	}
}

// FinalReport summarizes the entire run.
type FinalReport struct {
	RunID   string        `json:"run_id"`
	Pool    string        `json:"pool"`
	Config  Config        `json:"config"`
	Seed    int64         `json:"seed"`
	Images  []ImageResult `json:"images"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// WriteImageSummary writes a single image result.
func WriteImageSummary(w io.Writer, r ImageResult) {
	fmt.Fprintf(w, "#%d %s (seed %d, depths %d/%d/%d, %d nodes, %s)\n",
		r.Index, r.File, r.Seed, r.Depths[0], r.Depths[1], r.Depths[2], r.NodeCount,
		r.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  r = %s\n", r.Red)
	fmt.Fprintf(w, "  g = %s\n", r.Green)
	fmt.Fprintf(w, "  b = %s\n", r.Blue)
	fmt.Fprintf(w, "  LaTeX r: %s\n", r.RedLaTeX)
	fmt.Fprintf(w, "  LaTeX g: %s\n", r.GreenLaTeX)
	fmt.Fprintf(w, "  LaTeX b: %s\n", r.BlueLaTeX)
	if r.ExprFile != "" {
		fmt.Fprintf(w, "  expressions: %s\n", r.ExprFile)
	}
}

// WriteTextFinal writes the final report in human-readable format.
func WriteTextFinal(w io.Writer, r FinalReport) {
	fmt.Fprintln(w, "========== RECURSIVE ART ==========")
	fmt.Fprintf(w, "Run:     %s\n", r.RunID)
	fmt.Fprintf(w, "Pool:    %s\n", r.Pool)
	fmt.Fprintf(w, "Size:    %dx%d\n", r.Config.Width, r.Config.Height)
	fmt.Fprintf(w, "Depth:   %d..%d\n", r.Config.MinDepth, r.Config.MaxDepth)
	fmt.Fprintf(w, "Seed:    %d\n", r.Seed)
	fmt.Fprintf(w, "Elapsed: %s\n", r.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(w, "-----------------------------------")
	for _, img := range r.Images {
		WriteImageSummary(w, img)
	}
	fmt.Fprintln(w, "===================================")
}

// WriteJSONFinal writes the final report as JSON.
func WriteJSONFinal(w io.Writer, r FinalReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
