package domain

import (
	"fmt"
	"strings"
)

// Strategy selects how proposed times are compared against HouseRules.
type Strategy string

const (
	// StrategyClock12 compares 12-hour clock fields directly and treats any
	// AM start as after a PM boundary. This is the default. Only meaningful
	// for a PM earliest start and an AM latest end.
	StrategyClock12 Strategy = "clock12"

	// StrategyBusinessDay measures every time as an offset from a rolling
	// business-day start and compares offsets. Works for any window that
	// does not straddle the business-day start. Opt-in.
	StrategyBusinessDay Strategy = "businessday"
)

// DefaultBusinessDayStart is noon: an overnight window sits entirely inside
// one noon-to-noon business day.
var DefaultBusinessDayStart = MustTimeOfDay(12, 0, PM)

// ParseStrategy accepts a Strategy name in any case.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case StrategyClock12, StrategyBusinessDay:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown strategy %q (want %s or %s)", ErrValidation, s, StrategyClock12, StrategyBusinessDay)
}
