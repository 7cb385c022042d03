package main

import (
	"reflect"
	"testing"

	"github.com/Lonami/autoit/internal/coord"
)

func TestSplitHoldArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantKeys []string
		wantCmd  []string
	}{
		{
			name:     "keys only",
			args:     []string{"ctrl", "shift"},
			wantKeys: []string{"ctrl", "shift"},
		},
		{
			name:     "keys and command",
			args:     []string{"ctrl", "--", "autoit", "click"},
			wantKeys: []string{"ctrl"},
			wantCmd:  []string{"autoit", "click"},
		},
		{
			name:     "trailing separator",
			args:     []string{"ctrl", "--"},
			wantKeys: []string{"ctrl"},
			wantCmd:  []string{},
		},
		{
			name:    "separator first",
			args:    []string{"--", "autoit", "click"},
			wantCmd: []string{"autoit", "click"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, cmd := splitHoldArgs(tt.args)
			if len(keys) != len(tt.wantKeys) || (len(keys) > 0 && !reflect.DeepEqual(keys, tt.wantKeys)) {
				t.Errorf("keys = %v, want %v", keys, tt.wantKeys)
			}
			if len(cmd) != len(tt.wantCmd) || (len(cmd) > 0 && !reflect.DeepEqual(cmd, tt.wantCmd)) {
				t.Errorf("command = %v, want %v", cmd, tt.wantCmd)
			}
		})
	}
}

func TestParsePoint(t *testing.T) {
	x, y, err := parsePoint("0.5", "-10j")
	if err != nil {
		t.Fatalf("parsePoint: %v", err)
	}
	if x.Kind != coord.Fraction || x.Value != 0.5 {
		t.Errorf("x = %+v, want fraction 0.5", x)
	}
	if y.Kind != coord.Offset || y.Value != -10 {
		t.Errorf("y = %+v, want offset -10", y)
	}

	if _, _, err := parsePoint("nope", "0"); err == nil {
		t.Error("expected error for malformed x")
	}
}
