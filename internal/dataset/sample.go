package dataset

import (
	"fmt"

	"gridsel/internal/domain"
)

var sampleItems = []string{
	"Hex bolt", "Wing nut", "Flat washer", "Lock washer", "Cap screw",
	"Dowel pin", "Cotter pin", "Rivet", "Eye bolt", "U-bolt",
	"Threaded rod", "Set screw", "Shoulder bolt", "Carriage bolt", "Lag screw",
}

var sampleBins = []string{"A1", "A2", "B1", "B3", "C2", "C4", "D1"}

// SampleDataset generates a deterministic inventory table, used when no
// SQLite source is configured.
func SampleDataset(rows int) domain.Dataset {
	if rows <= 0 {
		rows = 200
	}

	ds := domain.Dataset{
		Name: "sample inventory",
		Columns: []domain.Column{
			{Title: "Item", Kind: domain.ColumnData, Width: 18},
			{Title: "Bin", Kind: domain.ColumnData, Width: 6},
			{Title: "Qty", Kind: domain.ColumnData, Width: 7},
			{Title: "Unit price", Kind: domain.ColumnData, Width: 11},
			{Title: "Reorder at", Kind: domain.ColumnData, Width: 11},
		},
	}

	for i := 0; i < rows; i++ {
		item := sampleItems[i%len(sampleItems)]
		ds.Rows = append(ds.Rows, domain.Row{
			ID: int64(i),
			Cells: []string{
				fmt.Sprintf("%s #%d", item, i/len(sampleItems)+1),
				sampleBins[i%len(sampleBins)],
				fmt.Sprintf("%d", (i*37)%500),
				fmt.Sprintf("%d.%02d", (i*13)%90+1, (i*7)%100),
				fmt.Sprintf("%d", (i*11)%50+10),
			},
		})
	}

	return ds
}
