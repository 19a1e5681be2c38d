package normalize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// bioPolicy sanitizes rich-text bio and project description HTML coming
// from the admin editor. Links open in a new tab with a hardened rel.
var bioPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "em", "u", "s", "h1", "h2", "h3", "ul", "ol", "li", "blockquote")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	p.AllowURLSchemes("http", "https", "mailto", "tel")
	p.RequireParseableURLs(true)
	// Site-relative /images/… srcs must survive sanitization
	p.AllowRelativeURLs(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}()

// messagePolicy is the narrower policy for contact-form messages: no
// images, no headings.
var messagePolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "em", "u", "ul", "ol", "li")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}()

var (
	htmlTagPattern    = regexp.MustCompile(`(?i)</?[a-z][^>]*>`)
	lineBreakPattern  = regexp.MustCompile(`(?i)<br\s*/?>`)
	listItemPattern   = regexp.MustCompile(`(?i)<li>`)
	blockClosePattern = regexp.MustCompile(`(?i)</(p|div|ul|ol|li|blockquote|h[1-6])>`)
	multiBlankPattern = regexp.MustCompile(`\n{3,}`)
	trailingWSPattern = regexp.MustCompile(`[ \t]+\n`)
	paragraphPattern  = regexp.MustCompile(`\n{2,}`)
)

// SanitizeHTML cleans rich-text content for storage and rendering.
func SanitizeHTML(raw string) string {
	return bioPolicy.Sanitize(raw)
}

// CoerceLegacyHTML accepts either rich HTML or legacy plain text. Plain
// text is escaped and wrapped into paragraphs so older records render the
// same as editor output.
func CoerceLegacyHTML(raw string) string {
	trimmed := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if trimmed == "" {
		return ""
	}
	if htmlTagPattern.MatchString(trimmed) {
		return SanitizeHTML(trimmed)
	}
	return SanitizeHTML(plainTextToHTML(trimmed))
}

// Message is a contact-form message in both shapes the mailer needs.
type Message struct {
	HTML string
	Text string
}

// ContactMessage normalizes a contact-form payload. The rich HTML body is
// preferred; when it sanitizes down to nothing the legacy plain-text field
// is used instead, converted to paragraph HTML so both representations
// stay populated together.
func ContactMessage(inputHTML, inputText string) Message {
	sanitized := messagePolicy.Sanitize(inputHTML)
	text := HTMLToText(sanitized)
	if text != "" {
		return Message{HTML: sanitized, Text: text}
	}

	legacy := normalizeTextWhitespace(inputText)
	if legacy == "" {
		return Message{}
	}
	fallbackHTML := messagePolicy.Sanitize(plainTextToHTML(legacy))
	return Message{HTML: fallbackHTML, Text: HTMLToText(fallbackHTML)}
}

// HTMLToText converts sanitized HTML into readable plain text: breaks and
// block closers become newlines, list items become dashes, entities are
// decoded and whitespace is collapsed.
func HTMLToText(input string) string {
	withBreaks := lineBreakPattern.ReplaceAllString(input, "\n")
	withBreaks = listItemPattern.ReplaceAllString(withBreaks, "- ")
	withBreaks = blockClosePattern.ReplaceAllString(withBreaks, "\n")

	stripped := bluemonday.StrictPolicy().Sanitize(withBreaks)
	decoded := strings.ReplaceAll(html.UnescapeString(stripped), " ", " ")
	return normalizeTextWhitespace(decoded)
}

// ExtractImageSrcs returns every /images/… path referenced by an
// <img src> inside an HTML fragment.
func ExtractImageSrcs(htmlFragment string) []string {
	if htmlFragment == "" {
		return nil
	}
	var out []string
	for _, match := range imgSrcPattern.FindAllStringSubmatch(htmlFragment, -1) {
		src := strings.TrimSpace(match[1])
		if strings.HasPrefix(src, "/images/") {
			out = append(out, src)
		}
	}
	return out
}

var imgSrcPattern = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["']`)

func plainTextToHTML(raw string) string {
	escaped := html.EscapeString(normalizeTextWhitespace(raw))
	if escaped == "" {
		return ""
	}
	paragraphs := paragraphPattern.Split(escaped, -1)
	var b strings.Builder
	for _, paragraph := range paragraphs {
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(paragraph, "\n", "<br />"))
		b.WriteString("</p>")
	}
	return b.String()
}

func normalizeTextWhitespace(input string) string {
	out := strings.ReplaceAll(input, "\r\n", "\n")
	out = trailingWSPattern.ReplaceAllString(out, "\n")
	out = multiBlankPattern.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
