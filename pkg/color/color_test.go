package color

import "testing"

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain text", "#0  ", 4},
		{"empty", "", 0},
		{"single wrapped segment", "\033[1;37m#0  \033[0m", 4},
		{"only escapes", "\033[1;37m\033[0m", 0},
		{"unterminated sequence runs to end", "#0  \033[1;37", 4},
		{"unterminated sequence alone", "\033[1;3", 0},
		{
			"address prefix",
			"\033[1;37m#0  \033[0m  \033[1;30m0x0000000000400000\033[0m in ",
			28,
		},
		{"non-ascii visible text", "\033[0;36mдом.c\033[0m", 5},
	}

	for _, tt := range tests {
		if got := VisibleLength(tt.input); got != tt.want {
			t.Errorf("%s: VisibleLength(%q) = %d, want %d", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestColorize(t *testing.T) {
	prev := IsColorEnabled()
	defer EnableColor(prev)

	EnableColor(true)
	if got := Colorize(BrightBlue, "main"); got != "\033[1;34mmain\033[0m" {
		t.Errorf("Colorize enabled = %q", got)
	}

	EnableColor(false)
	if got := Colorize(BrightBlue, "main"); got != "main" {
		t.Errorf("Colorize disabled = %q, want bare text", got)
	}
}

func TestColorizedVisibleLength(t *testing.T) {
	prev := IsColorEnabled()
	defer EnableColor(prev)
	EnableColor(true)

	for _, text := range []string{"", "main", "#12 ", "args (a=1, b=2)"} {
		colored := Colorize(BrightWhite, text)
		if got, want := VisibleLength(colored), VisibleLength(text); got != want {
			t.Errorf("VisibleLength(%q) = %d, want %d", colored, got, want)
		}
	}
}
