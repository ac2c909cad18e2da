// Package site carries the point-in-time site snapshot widget bodies
// render from. The layout engine never inspects this data; it only hands
// the snapshot to whichever widgets are visible.
package site

// DER is one distributed energy resource reporting into the site.
type DER struct {
	Serial string
	Kind   string // battery | pv | meter | ev_charger
	Make   string
	PowerW float64
}

// Overview is a rollup of the site's power flows. Battery power is
// positive when discharging into the site; grid power is positive when
// importing.
type Overview struct {
	SiteName   string
	LoadW      float64
	PVPowerW   float64
	BatteryW   float64
	BatterySoC float64 // 0..1
	GridW      float64
	EVPowerW   float64
	DERs       []DER
	History    []float64 // recent load samples, oldest first
}

// Demo returns a static plausible snapshot. The real product polls a site
// backend for this; that poller lives outside this repo.
func Demo() Overview {
	return Overview{
		SiteName:   "Home",
		LoadW:      1840,
		PVPowerW:   3120,
		BatteryW:   -950, // charging
		BatterySoC: 0.72,
		GridW:      -330, // exporting
		EVPowerW:   0,
		DERs: []DER{
			{Serial: "INV-48213A", Kind: "pv", Make: "Fronius", PowerW: 3120},
			{Serial: "BAT-90412C", Kind: "battery", Make: "BYD", PowerW: -950},
			{Serial: "MTR-11502F", Kind: "meter", Make: "Eastron", PowerW: -330},
			{Serial: "EVC-77820B", Kind: "ev_charger", Make: "Wallbox", PowerW: 0},
		},
		History: []float64{
			1320, 1280, 1410, 1660, 1580, 1720, 1950, 2210,
			2030, 1890, 1760, 1840,
		},
	}
}
