package normalize

import (
	"reflect"
	"testing"
)

func TestFocusValueClamps(t *testing.T) {
	if got := FocusValue(-10); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := FocusValue(150); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := FocusValue(42.5); got != 42.5 {
		t.Fatalf("expected 42.5, got %v", got)
	}
}

func TestZoomValueClamps(t *testing.T) {
	if got := ZoomValue(0); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := ZoomValue(5); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := ZoomValue(2.2); got != 2.2 {
		t.Fatalf("expected 2.2, got %v", got)
	}
}

func TestExperienceStartYear(t *testing.T) {
	if got := ExperienceStartYear(1800); got != DefaultExperienceStartYear {
		t.Fatalf("expected default year, got %d", got)
	}
	if got := ExperienceStartYear(0); got != DefaultExperienceStartYear {
		t.Fatalf("expected default year, got %d", got)
	}
	if got := ExperienceStartYear(1999); got != 1999 {
		t.Fatalf("expected 1999, got %d", got)
	}
}

func TestStringSliceDedupesCaseInsensitively(t *testing.T) {
	got := StringSlice([]string{" Web ", "", "web", "Mobile", "WEB"})
	want := []string{"Web", "Mobile"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"#", ""},
		{"  #  ", ""},
		{"example.com/cert", "https://example.com/cert"},
		{"https://example.com/cert", "https://example.com/cert"},
		{"HTTP://example.com", "HTTP://example.com"},
	}
	for _, c := range cases {
		if got := URL(c.in); got != c.want {
			t.Fatalf("URL(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestSafeURL(t *testing.T) {
	if SafeURL("javascript:alert(1)") {
		t.Fatalf("expected javascript scheme rejected")
	}
	if SafeURL("  JAVASCRIPT:alert(1)") {
		t.Fatalf("expected javascript scheme rejected case-insensitively")
	}
	if SafeURL("data:text/html,<script>") {
		t.Fatalf("expected data:text/html rejected")
	}
	if !SafeURL("https://example.com/file.pdf") {
		t.Fatalf("expected https accepted")
	}
	if !SafeURL("/files/resume.pdf") {
		t.Fatalf("expected relative path accepted")
	}
}
