package normalize

import "strings"

// Palette holds the three tints of a certification badge theme.
type Palette struct {
	TextColor  string `json:"textColor"`
	BgTint     string `json:"bgTint"`
	BorderTint string `json:"borderTint"`
}

// DefaultPaletteCode is used when no keyword matches the organization.
const DefaultPaletteCode = "provider-slate"

// CertProviderPalettes enumerates every valid palette code.
var CertProviderPalettes = map[string]Palette{
	"provider-blue":    {TextColor: "#3b82f6", BgTint: "#3b82f620", BorderTint: "#3b82f655"},
	"provider-cyan":    {TextColor: "#06b6d4", BgTint: "#06b6d420", BorderTint: "#06b6d455"},
	"provider-green":   {TextColor: "#22c55e", BgTint: "#22c55e20", BorderTint: "#22c55e55"},
	"provider-emerald": {TextColor: "#10b981", BgTint: "#10b98120", BorderTint: "#10b98155"},
	"provider-amber":   {TextColor: "#f59e0b", BgTint: "#f59e0b20", BorderTint: "#f59e0b55"},
	"provider-orange":  {TextColor: "#f97316", BgTint: "#f9731620", BorderTint: "#f9731655"},
	"provider-red":     {TextColor: "#ef4444", BgTint: "#ef444420", BorderTint: "#ef444455"},
	"provider-rose":    {TextColor: "#f43f5e", BgTint: "#f43f5e20", BorderTint: "#f43f5e55"},
	"provider-violet":  {TextColor: "#8b5cf6", BgTint: "#8b5cf620", BorderTint: "#8b5cf655"},
	"provider-slate":   {TextColor: "#94a3b8", BgTint: "#94a3b820", BorderTint: "#94a3b855"},
}

// providerKeywordMap maps case-insensitive substrings of an organization
// name to a palette code. First match wins.
var providerKeywordMap = []struct {
	keywords    []string
	paletteCode string
}{
	{keywords: []string{"microsoft"}, paletteCode: "provider-cyan"},
	{keywords: []string{"automation anywhere"}, paletteCode: "provider-orange"},
	{keywords: []string{"accenture"}, paletteCode: "provider-violet"},
	{keywords: []string{"international scrum institute", "scrum institute"}, paletteCode: "provider-amber"},
	{keywords: []string{"certiprof"}, paletteCode: "provider-green"},
}

// ResolvePaletteFromProvider derives a palette code from the organization
// name via keyword match, defaulting to slate.
func ResolvePaletteFromProvider(organization string) string {
	provider := strings.ToLower(strings.TrimSpace(organization))
	if provider == "" {
		return DefaultPaletteCode
	}
	for _, entry := range providerKeywordMap {
		for _, keyword := range entry.keywords {
			if strings.Contains(provider, keyword) {
				return entry.paletteCode
			}
		}
	}
	return DefaultPaletteCode
}

// PaletteCode keeps a supplied code when it is one of the known palettes
// and otherwise derives one from the organization name.
func PaletteCode(code, organization string) string {
	trimmed := strings.TrimSpace(code)
	if _, ok := CertProviderPalettes[trimmed]; ok {
		return trimmed
	}
	return ResolvePaletteFromProvider(organization)
}
