package main

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want [4]float32
		ok   bool
	}{
		{"ff0000", [4]float32{1, 0, 0, 1}, true},
		{"#00ff00", [4]float32{0, 1, 0, 1}, true},
		{"0000FF", [4]float32{0, 0, 1, 1}, true},
		{"fff", [4]float32{}, false},
		{"gg0000", [4]float32{}, false},
		{"", [4]float32{}, false},
	}

	for _, tt := range tests {
		have, err := parseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("parseColor(%q): want ok=%v, have err=%v", tt.in, tt.ok, err)
			continue
		}
		if have != tt.want {
			t.Errorf("parseColor(%q): want %v, have %v", tt.in, tt.want, have)
		}
	}
}

func TestColorValue(t *testing.T) {
	var c [4]float32
	v := colorValue{&c}

	if err := v.Set("#80ff00"); err != nil {
		t.Fatal(err)
	}

	if have := v.String(); have != "80ff00" {
		t.Fatalf("want 80ff00, have %s", have)
	}

	if err := v.Set("nope"); err == nil {
		t.Fatal("invalid color accepted")
	}

	if (colorValue{}).String() != "" {
		t.Fatal("zero value must print empty")
	}
}
