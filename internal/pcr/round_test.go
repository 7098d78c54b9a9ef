package pcr

import "testing"

func Test_roundHalf(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"zero", 0, 0},
		{"already on the grid", 6.0, 6.0},
		{"half stays", 0.5, 0.5},
		{"quarter rounds up", 0.25, 0.5},
		{"three quarters rounds up", 0.75, 1.0},
		{"just below a quarter rounds down", 0.24, 0},
		{"above a quarter rounds up", 0.3, 0.5},
		{"5X mix dose rounds up", 2.4, 2.5},
		{"below the midpoint rounds down", 2.2, 2.0},
		{"midpoint rounds up", 2.25, 2.5},
		{"float noise below a midpoint still rounds up", 2.2499999999999996, 2.5},
		{"float noise above a whole stays put", 11.000000000000002, 11.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundHalf(tt.v); got != tt.want {
				t.Errorf("roundHalf(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func Test_roundHighPrecision(t *testing.T) {
	// 10 * 1.1 accumulates to 11.000000000000002 in float64
	if got := roundHighPrecision(10 * 1.1); got != 11.0 {
		t.Errorf("roundHighPrecision(10*1.1) = %v, want 11", got)
	}
	if got := roundHighPrecision(2.4000000000000004); got != 2.4 {
		t.Errorf("roundHighPrecision(2.4000000000000004) = %v, want 2.4", got)
	}
	if got := roundHighPrecision(7.3); got != 7.3 {
		t.Errorf("roundHighPrecision(7.3) = %v, want 7.3", got)
	}
}
