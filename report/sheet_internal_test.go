package report

import (
	"strings"
	"testing"
)

func TestSheetName(t *testing.T) {
	used := map[string]bool{}
	cases := []struct{ in, want string }{
		{"Generic", "Generic"},
		{"generic", "generic (2)"},
		{"Generic", "Generic (3)"},
		{"a/b:c", "a_b_c"},
		{"  ", "Generic (4)"},
		{"'quoted'", "quoted"},
		{strings.Repeat("x", 40), strings.Repeat("x", 31)},
		{strings.Repeat("x", 40), strings.Repeat("x", 27) + " (2)"},
	}
	for _, tc := range cases {
		if got := sheetName(tc.in, used); got != tc.want {
			t.Errorf("sheetName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
