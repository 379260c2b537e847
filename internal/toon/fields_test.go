package toon

import (
	"reflect"
	"testing"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"comma separated", "ঠিক১,ঠিক২", []string{"ঠিক১", "ঠিক২"}},
		{"comma glyph", "ঠিক১، ঠিক২", []string{"ঠিক১", "ঠিক২"}},
		{"newline separated", "ঠিক১\nঠিক২", []string{"ঠিক১", "ঠিক২"}},
		{"trims items", "  ঠিক১ , ঠিক২  ", []string{"ঠিক১", "ঠিক২"}},
		{"drops empty items", "ঠিক১,,ঠিক২,", []string{"ঠিক১", "ঠিক২"}},
		{"empty input", "", nil},
		{"whitespace only", "   ", nil},
		{"lone commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decodeList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodePosition(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain number", "5", 5},
		{"with surrounding text", "position: 12", 12},
		{"bengali numerals", "৫", 5},
		{"mixed numerals", "1৫", 15},
		{"empty", "", 0},
		{"no digits", "unknown", 0},
		{"negative sign stripped", "-3", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodePosition(tt.input); got != tt.want {
				t.Errorf("decodePosition(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeBool(t *testing.T) {
	truthy := []string{"true", "True", "TRUE", " true ", "হ্যাঁ"}
	for _, s := range truthy {
		if !decodeBool(s) {
			t.Errorf("decodeBool(%q) = false, want true", s)
		}
	}
	falsy := []string{"false", "yes", "1", "", "না", "truthy"}
	for _, s := range falsy {
		if decodeBool(s) {
			t.Errorf("decodeBool(%q) = true, want false", s)
		}
	}
}

func TestGraphemeCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"ভুল", 2},  // ভু + ল
		{"করছি", 3}, // ক + র + ছি
		{"a", 1},
		{"", 0},
	}
	for _, tt := range tests {
		if got := graphemeCount(tt.input); got != tt.want {
			t.Errorf("graphemeCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
