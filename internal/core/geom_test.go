package core

import "testing"

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestGreenRamp(t *testing.T) {
	if GreenRamp(0) != 46 {
		t.Errorf("GreenRamp(0) = %d, expected brightest green (46)", GreenRamp(0))
	}
	if GreenRamp(1) != 22 {
		t.Errorf("GreenRamp(1) = %d, expected darkest green (22)", GreenRamp(1))
	}
	if GreenRamp(-0.5) != GreenRamp(0) {
		t.Error("GreenRamp should clamp below 0")
	}
	if GreenRamp(1.5) != GreenRamp(1) {
		t.Error("GreenRamp should clamp above 1")
	}

	// Monotonic: brightness only decreases as t grows
	prev := GreenRamp(0)
	for i := 1; i <= 10; i++ {
		c := GreenRamp(float64(i) / 10)
		if c > prev {
			t.Errorf("GreenRamp not monotonic at t=%f: %d after %d", float64(i)/10, c, prev)
		}
		prev = c
	}
}
