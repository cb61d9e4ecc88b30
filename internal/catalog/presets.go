package catalog

import "github.com/alexanderramin/skatelog/internal/domain"

var (
	jumpVariants = []string{"Single", "Double"}
	edgeVariants = []string{"LFO", "LFI", "RFO", "RFI", "LBO", "LBI", "RBO", "RBI"}
)

var presets = []domain.SkillDefinition{
	// Jumps
	{ID: "bunny-hop", Name: "Bunny Hop", Category: domain.CategoryJumps},
	{ID: "ballet-jump", Name: "Ballet Jump", Category: domain.CategoryJumps},
	{ID: "mazurka", Name: "Mazurka", Category: domain.CategoryJumps},
	{ID: "tap-toe", Name: "Tap Toe Jump", Category: domain.CategoryJumps},
	{ID: "falling-leaf", Name: "Falling Leaf", Category: domain.CategoryJumps},
	{ID: "waltz-jump", Name: "Waltz Jump", Category: domain.CategoryJumps},
	{ID: "salchow", Name: "Salchow", Category: domain.CategoryJumps, Variants: jumpVariants},
	{ID: "toe-loop", Name: "Toe Loop", Category: domain.CategoryJumps, Variants: jumpVariants},
	{ID: "loop", Name: "Loop", Category: domain.CategoryJumps, Variants: jumpVariants},
	{ID: "flip", Name: "Flip", Category: domain.CategoryJumps, Variants: jumpVariants},
	{ID: "lutz", Name: "Lutz", Category: domain.CategoryJumps, Variants: jumpVariants},
	{ID: "axel", Name: "Axel", Category: domain.CategoryJumps, Variants: jumpVariants},

	// Spins
	{ID: "two-foot-spin", Name: "Two Foot Spin", Category: domain.CategorySpins},
	{ID: "one-foot-spin", Name: "One Foot Spin", Category: domain.CategorySpins},
	{ID: "pivot", Name: "Pivot", Category: domain.CategorySpins},
	{ID: "back-spin", Name: "Back Spin", Category: domain.CategorySpins},
	{ID: "forward-scratch", Name: "Forward Scratch Spin", Category: domain.CategorySpins},
	{ID: "backward-scratch", Name: "Backward Scratch Spin", Category: domain.CategorySpins},
	{ID: "upright-spin", Name: "Upright Spin", Category: domain.CategorySpins},
	{ID: "sit-spin", Name: "Sit Spin", Category: domain.CategorySpins},
	{ID: "camel-spin", Name: "Camel Spin", Category: domain.CategorySpins},
	{ID: "layback-spin", Name: "Layback Spin", Category: domain.CategorySpins},
	{ID: "flying-camel", Name: "Flying Camel", Category: domain.CategorySpins},
	{ID: "flying-sit", Name: "Flying Sit Spin", Category: domain.CategorySpins},
	{ID: "biellmann", Name: "Biellmann Spin", Category: domain.CategorySpins},

	// Footwork
	{ID: "3-turn", Name: "3 Turn", Category: domain.CategoryFootwork, Variants: edgeVariants},
	{ID: "mohawk", Name: "Mohawk", Category: domain.CategoryFootwork, Variants: edgeVariants},
	{ID: "choctaw", Name: "Choctaw", Category: domain.CategoryFootwork, Variants: edgeVariants},
	{ID: "twizzle", Name: "Twizzle", Category: domain.CategoryFootwork, Variants: edgeVariants},
	{ID: "bracket", Name: "Bracket", Category: domain.CategoryFootwork, Variants: edgeVariants},
	{ID: "rocker", Name: "Rocker", Category: domain.CategoryFootwork, Variants: edgeVariants},
	{ID: "counter", Name: "Counter", Category: domain.CategoryFootwork, Variants: edgeVariants},
	{ID: "crossrolls", Name: "Crossrolls", Category: domain.CategoryFootwork, Variants: []string{"Forward", "Backward"}},

	// Field moves
	{ID: "lunge", Name: "Lunge", Category: domain.CategoryFieldMoves},
	{ID: "shoot-duck", Name: "Shoot the Duck", Category: domain.CategoryFieldMoves},
	{ID: "arabesque", Name: "Arabesque", Category: domain.CategoryFieldMoves},
	{ID: "spiral", Name: "Spiral", Category: domain.CategoryFieldMoves},
	{ID: "catch-foot", Name: "Catch Foot Spiral", Category: domain.CategoryFieldMoves},
	{ID: "attitude", Name: "Attitude", Category: domain.CategoryFieldMoves},
	{ID: "penche", Name: "Penché", Category: domain.CategoryFieldMoves},
	{ID: "fan-spiral", Name: "Fan Spiral", Category: domain.CategoryFieldMoves},
	{ID: "y-position", Name: "Y-Position", Category: domain.CategoryFieldMoves},
	{ID: "needle", Name: "Needle", Category: domain.CategoryFieldMoves},
	{ID: "spread-eagle", Name: "Spread Eagle", Category: domain.CategoryFieldMoves},
	{ID: "ina-bauer", Name: "Ina Bauer", Category: domain.CategoryFieldMoves},
	{ID: "hydroblading", Name: "Hydroblading", Category: domain.CategoryFieldMoves},
}

// Presets returns a copy of the built-in skill list in display order.
func Presets() []domain.SkillDefinition {
	out := make([]domain.SkillDefinition, len(presets))
	for i, s := range presets {
		s.Variants = append([]string(nil), s.Variants...)
		out[i] = s
	}
	return out
}
