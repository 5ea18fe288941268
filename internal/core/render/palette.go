package render

import (
	"hash/fnv"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

// FallbackColor is used when nothing else assigns a bear a color.
const FallbackColor = "#ff7f0e"

// HomeColor marks a bear's starting point.
const HomeColor = "blue"

var defaultColors = []string{
	"#1f77b4",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#17becf",
	"#bcbd22",
}

// Palette resolves the display color of a bear. The lookup order is the
// bear's own color, then the configured assignment, then a stable pick from
// the default colors.
type Palette struct {
	assigned map[string]string
	fallback string
}

// NewPalette builds a palette from a bear id to color assignment. An empty
// fallback means FallbackColor.
func NewPalette(assigned map[string]string, fallback string) *Palette {
	if fallback == "" {
		fallback = FallbackColor
	}
	copied := make(map[string]string, len(assigned))
	for id, c := range assigned {
		copied[id] = c
	}
	return &Palette{assigned: copied, fallback: fallback}
}

func (p *Palette) ColorFor(b *domain.Bear) string {
	if b == nil || b.ID == "" {
		return p.fallback
	}
	if b.Color != "" {
		return b.Color
	}
	if c, ok := p.assigned[b.ID]; ok && c != "" {
		return c
	}

	h := fnv.New32a()
	h.Write([]byte(b.ID))
	return defaultColors[h.Sum32()%uint32(len(defaultColors))]
}
