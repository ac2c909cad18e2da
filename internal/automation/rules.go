// Package automation evaluates the config-defined automation rules shown
// on the dashboard's automations widget. Each rule carries a boolean
// condition over the site snapshot; a rule whose condition holds is armed.
package automation

import (
	"github.com/expr-lang/expr"

	"github.com/voltdeck/voltdeck/internal/site"
)

// Rule is one config-defined automation. When is an expression over the
// snapshot fields (load_w, pv_w, battery_w, battery_soc, grid_w, ev_w).
type Rule struct {
	Name string
	When string
}

// Status is a rule's display state.
type Status int

const (
	StatusIdle Status = iota
	StatusArmed
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusArmed:
		return "armed"
	case StatusInvalid:
		return "invalid"
	default:
		return "idle"
	}
}

// Evaluated pairs a rule with the outcome of its condition.
type Evaluated struct {
	Rule   Rule
	Status Status
	Err    error
}

// Env is the expression environment; the tags are the names rule authors
// write.
type Env struct {
	LoadW      float64 `expr:"load_w"`
	PVPowerW   float64 `expr:"pv_w"`
	BatteryW   float64 `expr:"battery_w"`
	BatterySoC float64 `expr:"battery_soc"`
	GridW      float64 `expr:"grid_w"`
	EVPowerW   float64 `expr:"ev_w"`
}

func envFrom(o site.Overview) Env {
	return Env{
		LoadW:      o.LoadW,
		PVPowerW:   o.PVPowerW,
		BatteryW:   o.BatteryW,
		BatterySoC: o.BatterySoC,
		GridW:      o.GridW,
		EVPowerW:   o.EVPowerW,
	}
}

// Evaluate runs every rule against the snapshot. Compile or runtime
// failures mark the rule invalid; they never propagate.
func Evaluate(rules []Rule, o site.Overview) []Evaluated {
	env := envFrom(o)
	out := make([]Evaluated, 0, len(rules))
	for _, r := range rules {
		prog, err := expr.Compile(r.When, expr.Env(env), expr.AsBool())
		if err != nil {
			out = append(out, Evaluated{Rule: r, Status: StatusInvalid, Err: err})
			continue
		}
		res, err := expr.Run(prog, env)
		if err != nil {
			out = append(out, Evaluated{Rule: r, Status: StatusInvalid, Err: err})
			continue
		}
		status := StatusIdle
		if armed, ok := res.(bool); ok && armed {
			status = StatusArmed
		}
		out = append(out, Evaluated{Rule: r, Status: status})
	}
	return out
}
