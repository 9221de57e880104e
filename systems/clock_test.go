package systems

import "testing"

func TestClampFrameDelta(t *testing.T) {
	max := 4.0 / 60.0

	cases := []struct {
		name string
		dt   float64
		want float64
	}{
		{"normal frame", 1.0 / 60.0, 1.0 / 60.0},
		{"slow frame under cap", 3.0 / 60.0, 3.0 / 60.0},
		{"at cap", max, max},
		{"stalled frame", 2.0, max},
		{"clock went backwards", -0.5, 0},
	}

	for _, tc := range cases {
		if got := clampFrameDelta(tc.dt, max); got != tc.want {
			t.Errorf("%s: clampFrameDelta(%v) = %v, want %v", tc.name, tc.dt, got, tc.want)
		}
	}
}

func TestUpdateClockFirstFrame(t *testing.T) {
	e := newTestECS(1, 0)

	// The first measured frame has no previous timestamp; the clock
	// falls back to the nominal tick length.
	UpdateClock(e)
	clock := getOrCreateClock(e)
	if want := 1.0 / 60.0; clock.DT != want {
		t.Errorf("first-frame dt = %v, want %v", clock.DT, want)
	}
	if clock.Last.IsZero() {
		t.Error("first frame did not record a timestamp")
	}
}
