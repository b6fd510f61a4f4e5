package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"garden-planner-backend/internal/service"
)

var (
	headerColor    = color.New(color.FgBlue, color.Bold)
	selectedColor  = color.New(color.FgGreen, color.Bold)
	companionColor = color.New(color.FgCyan)
	forbiddenColor = color.New(color.FgRed, color.Bold)
	dimColor       = color.New(color.FgHiBlack)
	errorColor     = color.New(color.FgRed, color.Bold)
)

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

func printAllocations(w io.Writer, resp *service.CompanionListResponse) {
	_, _ = headerColor.Fprintf(w, "Garden %.2f m² (side %.2f m, capacity %d)\n",
		resp.AreaM2, resp.SideLengthMeters, resp.Capacity)

	width := 0
	for _, a := range resp.Allocations {
		width = max(width, len(a.PlantID))
	}
	for _, a := range resp.Allocations {
		clr := companionColor
		if a.Source == "selected" {
			clr = selectedColor
		}
		fmt.Fprintf(w, "  %-*s %3d  ", width, a.PlantID, a.Quantity)
		_, _ = clr.Fprintln(w, a.Source)
	}
}

// printGrid prints one grid row per line. Empty cells print as ".".
func printGrid(w io.Writer, resp *service.GardenPlanResponse) {
	if resp.GridSide == 0 {
		_, _ = dimColor.Fprintln(w, "(empty grid)")
		return
	}

	cells := make([][]string, resp.GridSide)
	for y := range cells {
		cells[y] = make([]string, resp.GridSide)
		for x := range cells[y] {
			cells[y][x] = "."
		}
	}
	width := 1
	for _, p := range resp.Positions {
		cells[p.GridY][p.GridX] = p.PlantID
		width = max(width, len(p.PlantID))
	}

	fmt.Fprintln(w)
	for _, row := range cells {
		padded := make([]string, len(row))
		for i, cell := range row {
			padded[i] = fmt.Sprintf("%-*s", width, cell)
		}
		fmt.Fprintln(w, "  "+strings.TrimRight(strings.Join(padded, " "), " "))
	}
	_, _ = dimColor.Fprintf(w, "\n%dx%d grid, cell size %.2f m\n", resp.GridSide, resp.GridSide, resp.CellSizeMeters)
}
