package filter

import "testing"

func TestNearestSymbol(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   string
	}{
		{
			"name with offset",
			"main + 16 in section .text of /bin/prog",
			"main 0x10",
		},
		{
			"name without offset",
			"main in section .text of /bin/prog",
			"main",
		},
		{
			"libc symbol",
			"raise + 272 in section .text of /usr/lib/libc.so.6",
			"raise 0x110",
		},
		{
			"offset does not parse",
			"main + sixteen in section .text of /bin/prog",
			"main + sixteen",
		},
		{
			"no section suffix",
			"main + 16",
			"main 0x10",
		},
		{
			"bare name, no section suffix",
			"_start",
			"_start",
		},
		{
			"trailing newline from console capture",
			"main + 16 in section .text of /bin/prog\n",
			"main 0x10",
		},
		{
			"spaced symbol name",
			"operator new + 32 in section .text of /bin/prog",
			"operator new 0x20",
		},
		{
			"zero offset",
			"main + 0 in section .text of /bin/prog",
			"main 0x0",
		},
	}

	for _, tt := range tests {
		if got := nearestSymbol(tt.report); got != tt.want {
			t.Errorf("%s: nearestSymbol(%q) = %q, want %q", tt.name, tt.report, got, tt.want)
		}
	}
}
