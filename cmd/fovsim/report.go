package main

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

// WriteReport renders rows as a table. every > 1 keeps only every Nth tick
// plus the last one.
func WriteReport(out io.Writer, rows []Row, every int) error {
	if every > 1 {
		rows = lo.Filter(rows, func(r Row, i int) bool {
			return r.Tick%every == 0 || i == len(rows)-1
		})
	}

	table := tablewriter.NewWriter(out)
	table.Header("tick", "paused", "held", "scroll", "bound", "state", "target", "fov", "baseline", "watcher")
	for _, r := range rows {
		fov := "-"
		if r.Bound {
			fov = formatFloat(r.FOV)
		}
		if err := table.Append([]string{
			strconv.Itoa(r.Tick),
			yesNo(r.Paused),
			yesNo(r.KeyHeld),
			formatFloat(r.Scroll),
			yesNo(r.Bound),
			r.State.String(),
			formatFloat(r.Target),
			fov,
			formatFloat(r.Baseline),
			yesNo(r.Watching),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
