package agent

import "fmt"

// Strategy selects which reward cell the Collector pursues.
type Strategy int

const (
	// StrategyNearest minimizes Manhattan distance to the agent.
	StrategyNearest Strategy = iota
	// StrategyNearestSafe is nearest restricted to rewards outside every
	// threat's danger radius, falling back to plain nearest when none
	// qualify.
	StrategyNearestSafe
	// StrategyFurthestFromThreats maximizes the minimum distance to any
	// known threat.
	StrategyFurthestFromThreats
)

var strategyNames = map[Strategy]string{
	StrategyNearest:             "nearest",
	StrategyNearestSafe:         "nearest_safe",
	StrategyFurthestFromThreats: "furthest_from_threats",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a config name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("agent: unknown strategy %q", name)
}
