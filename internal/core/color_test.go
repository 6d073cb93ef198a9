package core

import "testing"

func TestColorANSI256(t *testing.T) {
	seen := map[string]Color{}
	for _, c := range Colors() {
		code := c.ANSI256()
		if c == ColorDefault {
			if code != "" {
				t.Errorf("default color has code %q", code)
			}
			continue
		}
		if code == "" {
			t.Errorf("color %d has no code", c)
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("colors %d and %d share code %s", prev, c, code)
		}
		seen[code] = c
	}
	if got := Color(200).ANSI256(); got != "" {
		t.Errorf("out of range color = %q, want empty", got)
	}
}
