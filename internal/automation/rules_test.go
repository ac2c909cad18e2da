package automation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voltdeck/voltdeck/internal/site"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	snapshot := site.Overview{
		LoadW:      1800,
		PVPowerW:   3200,
		BatterySoC: 0.15,
		GridW:      -400,
	}
	rules := []Rule{
		{Name: "low battery", When: "battery_soc < 0.2"},
		{Name: "exporting", When: "grid_w < 0 && pv_w > load_w"},
		{Name: "ev charging", When: "ev_w > 100"},
		{Name: "broken", When: "battery_soc <"},
		{Name: "not a bool", When: "load_w + 1"},
	}

	got := Evaluate(rules, snapshot)
	require.Len(t, got, 5)
	require.Equal(t, StatusArmed, got[0].Status)
	require.Equal(t, StatusArmed, got[1].Status)
	require.Equal(t, StatusIdle, got[2].Status)
	require.Equal(t, StatusInvalid, got[3].Status)
	require.Error(t, got[3].Err)
	require.Equal(t, StatusInvalid, got[4].Status)
}

func TestEvaluateEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, Evaluate(nil, site.Demo()))
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "idle", StatusIdle.String())
	require.Equal(t, "armed", StatusArmed.String())
	require.Equal(t, "invalid", StatusInvalid.String())
}
