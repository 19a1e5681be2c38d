package normalize

import (
	"reflect"
	"strings"
	"testing"
)

func TestSanitizeHTMLStripsScripts(t *testing.T) {
	got := SanitizeHTML(`<p>hi</p><script>alert(1)</script><img src="/images/profile/a.png">`)
	if strings.Contains(got, "script") {
		t.Fatalf("expected script removed, got %q", got)
	}
	if !strings.Contains(got, `/images/profile/a.png`) {
		t.Fatalf("expected relative img src kept, got %q", got)
	}
}

func TestCoerceLegacyHTMLPlainText(t *testing.T) {
	got := CoerceLegacyHTML("first line\nsecond line\n\nnew paragraph")
	if !strings.HasPrefix(got, "<p>") {
		t.Fatalf("expected paragraph wrapping, got %q", got)
	}
	if !strings.Contains(got, "<br") {
		t.Fatalf("expected line break preserved, got %q", got)
	}
	if !strings.Contains(got, "new paragraph") {
		t.Fatalf("expected content kept, got %q", got)
	}
}

func TestCoerceLegacyHTMLKeepsMarkup(t *testing.T) {
	got := CoerceLegacyHTML("<p><strong>bold</strong></p>")
	if got != "<p><strong>bold</strong></p>" {
		t.Fatalf("expected markup passed through, got %q", got)
	}
	if got := CoerceLegacyHTML("   "); got != "" {
		t.Fatalf("expected empty for blank input, got %q", got)
	}
}

func TestContactMessagePrefersHTML(t *testing.T) {
	got := ContactMessage("<p>Hello <strong>there</strong></p>", "ignored")
	if !strings.Contains(got.HTML, "<strong>there</strong>") {
		t.Fatalf("expected html kept, got %q", got.HTML)
	}
	if got.Text != "Hello there" {
		t.Fatalf("expected text extracted, got %q", got.Text)
	}
}

func TestContactMessageFallsBackToText(t *testing.T) {
	got := ContactMessage("<script>alert(1)</script>", "plain message body")
	if got.Text != "plain message body" {
		t.Fatalf("expected plain text fallback, got %q", got.Text)
	}
	if !strings.Contains(got.HTML, "plain message body") {
		t.Fatalf("expected fallback html populated, got %q", got.HTML)
	}

	empty := ContactMessage("", "   ")
	if empty.Text != "" || empty.HTML != "" {
		t.Fatalf("expected empty message, got %+v", empty)
	}
}

func TestHTMLToTextListItems(t *testing.T) {
	got := HTMLToText("<ul><li>one</li><li>two</li></ul>")
	if !strings.Contains(got, "- one") || !strings.Contains(got, "- two") {
		t.Fatalf("expected dashed list items, got %q", got)
	}
}

func TestExtractImageSrcs(t *testing.T) {
	fragment := `<p><img src="/images/projects/a.png"><img src='/images/profile/b.jpg'>` +
		`<img src="https://cdn.example.com/c.png"></p>`
	got := ExtractImageSrcs(fragment)
	want := []string{"/images/projects/a.png", "/images/profile/b.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := ExtractImageSrcs(""); got != nil {
		t.Fatalf("expected nil for empty fragment, got %v", got)
	}
}
