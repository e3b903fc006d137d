package filter

import (
	"bytes"
	"strings"
	"testing"
)

func TestRegistryRegisterLookup(t *testing.T) {
	reg := NewRegistry()
	host := &fakeHost{}

	f := NewColourFilter(host)
	reg.Register(f)

	got, ok := reg.Lookup(DefaultName)
	if !ok {
		t.Fatalf("Lookup(%q) missed", DefaultName)
	}
	if got != FrameFilter(f) {
		t.Errorf("Lookup returned a different filter")
	}

	// Re-registering under the same name replaces the entry.
	replacement := NewColourFilter(host, WithPriority(9))
	reg.Register(replacement)
	got, _ = reg.Lookup(DefaultName)
	if got.Priority() != 9 {
		t.Errorf("replacement not in effect, priority = %d", got.Priority())
	}

	reg.Remove(DefaultName)
	if _, ok := reg.Lookup(DefaultName); ok {
		t.Error("Lookup succeeded after Remove")
	}
}

func TestRegistryEnabledOrder(t *testing.T) {
	reg := NewRegistry()
	host := &fakeHost{}

	reg.Register(NewColourFilter(host, WithName("low"), WithPriority(1)))
	reg.Register(NewColourFilter(host, WithName("high"), WithPriority(10)))
	reg.Register(NewColourFilter(host, WithName("off"), WithPriority(99), WithEnabled(false)))
	reg.Register(NewColourFilter(host, WithName("b"), WithPriority(5)))
	reg.Register(NewColourFilter(host, WithName("a"), WithPriority(5)))

	enabled := reg.Enabled()
	names := make([]string, 0, len(enabled))
	for _, f := range enabled {
		names = append(names, f.Name())
	}

	want := []string{"high", "a", "b", "low"}
	if len(names) != len(want) {
		t.Fatalf("Enabled() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Enabled() = %v, want %v", names, want)
		}
	}
}

func TestColourFilterDefaults(t *testing.T) {
	f := NewColourFilter(&fakeHost{})
	if f.Name() != DefaultName {
		t.Errorf("Name() = %q", f.Name())
	}
	if f.Priority() != 0 {
		t.Errorf("Priority() = %d", f.Priority())
	}
	if !f.Enabled() {
		t.Error("filter disabled by default")
	}
}

func TestColourFilterThroughRegistry(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry()
	reg.Register(NewColourFilter(&fakeHost{}, WithWriter(&buf)))

	for _, f := range reg.Enabled() {
		if err := f.Filter(stackOf("alpha", "beta")).Unroll(); err != nil {
			t.Fatalf("Unroll() error: %v", err)
		}
	}

	out := buf.String()
	if !strings.Contains(out, "alpha") || !strings.Contains(out, "beta") {
		t.Errorf("registry-driven render incomplete: %q", out)
	}
}
