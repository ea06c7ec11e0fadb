package main

import "testing"

func TestPrettyFrequency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00 Hz"},
		{59.94, "59.94 Hz"},
		{1500, "1.50 KHz"},
	}

	for _, tt := range tests {
		if have := prettyFrequency(tt.in); have != tt.want {
			t.Errorf("prettyFrequency(%v): want %q, have %q", tt.in, tt.want, have)
		}
	}
}
