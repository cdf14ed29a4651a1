package render

import (
	"strings"

	"github.com/lululau/isocal/internal/textwidth"
)

const (
	// ChunkSize is the number of months printed side by side.
	ChunkSize = 3
	separator = "    "
	// GridWidth is the width of a full chunk.
	GridWidth = ChunkSize*BlockWidth + (ChunkSize-1)*len(separator)
)

// Layout zips blocks side by side in chunks of ChunkSize. A line index that
// is blank in every block of a chunk is dropped; each chunk ends with an
// empty line.
func Layout(blocks []Block) string {
	var sb strings.Builder
	parts := make([]string, 0, ChunkSize)
	for start := 0; start < len(blocks); start += ChunkSize {
		chunk := blocks[start:min(start+ChunkSize, len(blocks))]
		for i := range BlockLines {
			parts = parts[:0]
			blank := true
			for _, b := range chunk {
				parts = append(parts, b[i])
				if strings.TrimSpace(textwidth.StripANSI(b[i])) != "" {
					blank = false
				}
			}
			if blank {
				continue
			}
			sb.WriteString(strings.Join(parts, separator))
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// YearHeading centers year over a full chunk.
func YearHeading(year string) string {
	return strings.TrimRight(textwidth.Center(year, GridWidth), " ")
}
