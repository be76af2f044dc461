package main

import (
	"fmt"
	"time"

	"github.com/philipparndt/meshcompare/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print statistics of every test case",
	Long:  "Load every case and show face counts, intersecting faces, bounding boxes and how the repair changed the mesh.",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	v, _, err := setup()
	if err != nil {
		return err
	}
	defer v.Close()
	v.WaitLoaded(10 * time.Millisecond)

	for row, c := range v.Manifest.Cases {
		state := v.Row(row)

		fmt.Printf("%s: %s\n", v.Heading(row), c.Name)
		fmt.Println("====================")
		if state.Original == nil || state.Repaired == nil {
			fmt.Printf("  incomplete: original loaded=%t, repaired loaded=%t\n\n", state.Original != nil, state.Repaired != nil)
			continue
		}

		comparison := analysis.Comparison{
			Original: analysis.Summarize(state.Original.Model),
			Repaired: analysis.Summarize(state.Repaired.Model),
		}
		comparison.Intersecting = state.Intersections.CountIn(comparison.Original.FaceCount)

		printSummary("Original", c.Original, comparison.Original)
		fmt.Printf("  Intersecting faces: %d (%.2f%%)\n\n", comparison.Intersecting, 100*comparison.IntersectingRatio())
		printSummary("Repaired", c.Repaired, comparison.Repaired)

		fmt.Println("Repair:")
		fmt.Printf("  Face delta: %+d\n", comparison.FaceDelta())
		fmt.Printf("  Surface area change: %+.2f%%\n", 100*comparison.AreaChange())
		fmt.Printf("  Center shift: %.6f units\n\n", comparison.CenterShift())
	}
	return nil
}

func printSummary(title, file string, s analysis.Summary) {
	fmt.Printf("%s (%s):\n", title, file)
	fmt.Printf("  Faces: %d (%d degenerate)\n", s.FaceCount, s.DegenerateFace)
	fmt.Printf("  Surface Area: %.6f square units\n", s.SurfaceArea)
	fmt.Printf("  Min: %s\n", analysis.FormatVector(s.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(s.BoundingBox.Max))
	fmt.Printf("  Edge Lengths: %.6f / %.6f / %.6f (min/avg/max)\n", s.MinEdgeLength, s.AvgEdgeLength, s.MaxEdgeLength)
}
