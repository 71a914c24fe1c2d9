package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	sqlite "modernc.org/sqlite"
)

// RegisterColorFunctions registers color_dist with the driver so it is
// available on new connections opened after this call.
// Note: existing open connections will not see new functions.
func RegisterColorFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("color_dist", 6, colorDistImpl)
	return nil
}

func asComponent(arg driver.Value) (int64, error) {
	switch v := arg.(type) {
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("color_dist: unsupported argument type %T for component; want INTEGER", arg)
	}
}

// colorDistImpl computes the Manhattan distance between two RGB triples:
// color_dist(r1, g1, b1, r2, g2, b2) = |r1-r2| + |g1-g2| + |b1-b2|.
func colorDistImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 6 {
		return nil, fmt.Errorf("color_dist: expected 6 arguments, got %d", len(args))
	}
	var c [6]int64
	for i, arg := range args {
		if arg == nil {
			return nil, nil
		}
		v, err := asComponent(arg)
		if err != nil {
			return nil, err
		}
		c[i] = v
	}
	return absDiff(c[0], c[3]) + absDiff(c[1], c[4]) + absDiff(c[2], c[5]), nil
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
