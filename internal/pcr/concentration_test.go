package pcr

import "testing"

func Test_ParseConcentration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Concentration
		wantErr bool
	}{
		{"bottle form 2X", "2X", X2, false},
		{"bottle form 5X", "5X", X5, false},
		{"lowercase", "5x", X5, false},
		{"bare factor 2", "2", X2, false},
		{"bare factor 5", "5", X5, false},
		{"surrounding whitespace", "  2X ", X2, false},
		{"empty", "", 0, true},
		{"unsupported strength", "3X", 0, true},
		{"unsupported factor", "10", 0, true},
		{"no factor", "X", 0, true},
		{"garbage", "five", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConcentration(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseConcentration(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if _, ok := err.(*ErrInvalidInput); !ok {
					t.Fatalf("ParseConcentration(%q) error = %T, want *ErrInvalidInput", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseConcentration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func Test_ConcentrationString(t *testing.T) {
	if got := X2.String(); got != "2X" {
		t.Errorf("X2.String() = %q, want %q", got, "2X")
	}
	if got := X5.String(); got != "5X" {
		t.Errorf("X5.String() = %q, want %q", got, "5X")
	}
}

func Test_ConcentrationFactor(t *testing.T) {
	if got := X2.Factor(); got != 2.0 {
		t.Errorf("X2.Factor() = %v, want 2", got)
	}
	if got := X5.Factor(); got != 5.0 {
		t.Errorf("X5.Factor() = %v, want 5", got)
	}
}

func Test_ConcentrationMarshalYAML(t *testing.T) {
	v, err := X5.MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}
	if v != "5X" {
		t.Errorf("MarshalYAML() = %v, want %q", v, "5X")
	}
}
