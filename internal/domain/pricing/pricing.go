package pricing

type StrategyKind string

const (
	StrategyNone       StrategyKind = ""
	StrategyHighSeason StrategyKind = "high_season"
	StrategyLowSeason  StrategyKind = "low_season"
	StrategyLongStay   StrategyKind = "long_stay"
)

// ParseStrategy maps a strategy name to its kind. Absent or unknown names
// resolve to StrategyNone with ok=false.
func ParseStrategy(name string) (StrategyKind, bool) {
	switch kind := StrategyKind(name); kind {
	case StrategyHighSeason, StrategyLowSeason, StrategyLongStay:
		return kind, true
	default:
		return StrategyNone, false
	}
}

func (k StrategyKind) Multiplier() float64 {
	switch k {
	case StrategyHighSeason:
		return 1.5
	case StrategyLowSeason:
		return 0.8
	case StrategyLongStay:
		return 0.9
	default:
		return 1
	}
}

func (k StrategyKind) String() string {
	if k == StrategyNone {
		return "none"
	}
	return string(k)
}

// CalculatePrice applies the strategy multiplier once to the composed total.
// Fractional results are returned as is.
func CalculatePrice(kind StrategyKind, basePrice float64) float64 {
	if kind == StrategyNone {
		return basePrice
	}
	return basePrice * kind.Multiplier()
}

// Breakdown records how a final price was obtained.
type Breakdown struct {
	Subtotal   int64
	Strategy   StrategyKind
	Multiplier float64
	Total      float64
}

func Quote(kind StrategyKind, subtotal int64) Breakdown {
	return Breakdown{
		Subtotal:   subtotal,
		Strategy:   kind,
		Multiplier: kind.Multiplier(),
		Total:      CalculatePrice(kind, float64(subtotal)),
	}
}
