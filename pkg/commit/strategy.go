package commit

import (
	cerr "github.com/cockroachdb/errors"

	"github.com/sergiomgn/EasyFinance/pkg/ef_err"
)

// Strategy is the operator's menu choice, made exactly once per run.
type Strategy int

const (
	// StrategyGranular records the nine scoped groups in order.
	StrategyGranular Strategy = iota + 1
	// StrategyAggregate records everything in a single commit.
	StrategyAggregate
	// StrategyCancel performs no mutation and exits cleanly.
	StrategyCancel
)

func (s Strategy) String() string {
	switch s {
	case StrategyGranular:
		return "granular"
	case StrategyAggregate:
		return "aggregate"
	case StrategyCancel:
		return "cancel"
	}
	return "unknown"
}

// ParseStrategy maps operator input to a Strategy. Exactly the strings
// "1", "2" and "3" are accepted; anything else is an invalid selection.
// There is no re-prompt on invalid input.
func ParseStrategy(input string) (Strategy, error) {
	switch input {
	case "1":
		return StrategyGranular, nil
	case "2":
		return StrategyAggregate, nil
	case "3":
		return StrategyCancel, nil
	}
	return 0, cerr.Wrapf(ef_err.ErrInvalidSelection,
		"%q is not a valid choice, enter 1, 2 or 3", input)
}
