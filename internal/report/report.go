// Package report renders an inspection for a terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Bahjat/seo-tag-inspector/internal/model"
	"github.com/Bahjat/seo-tag-inspector/internal/seo"
)

const missing = "Missing"

// Preview is how one platform would display the page.
type Preview struct {
	Platform    string
	Title       string
	URL         string
	Description string
}

// Previews derives the Google, Facebook and Twitter previews. Social cards
// fall back from Open Graph values to the plain title and description, then
// to a placeholder.
func Previews(r *model.InspectResponse) []Preview {
	res := r.Results
	host := displayURL(r.URL)

	social := func(platform, titlePlaceholder, descPlaceholder string) Preview {
		return Preview{
			Platform:    platform,
			Title:       firstNonEmpty(res[string(seo.KeyOGTitle)], res[string(seo.KeyTitle)], titlePlaceholder),
			Description: firstNonEmpty(res[string(seo.KeyOGDescription)], res[string(seo.KeyDescription)], descPlaceholder),
			URL:         host,
		}
	}

	return []Preview{
		{
			Platform:    "Google Search",
			Title:       firstNonEmpty(res[string(seo.KeyTitle)], "Page Title"),
			Description: firstNonEmpty(res[string(seo.KeyDescription)], "Meta description will appear here."),
			URL:         host,
		},
		social("Facebook", "Open Graph Title", "Open Graph description will appear here."),
		social("Twitter Card", "Twitter Card Title", "Twitter card description will appear here."),
	}
}

// Text writes a human-readable report.
func Text(w io.Writer, r *model.InspectResponse) error {
	var b strings.Builder

	fmt.Fprintf(&b, "SEO report for %s\n\n", r.URL)
	fmt.Fprintf(&b, "SEO Health Score: %d/100 (%s)\n\n", r.Score, r.Grade)

	for _, tag := range seo.Tags {
		value := r.Results[string(tag.Key)]
		if value == "" {
			value = missing
		}
		fmt.Fprintf(&b, "  %-24s %s\n", tag.Label+":", value)
	}

	b.WriteString("\nContent Security Policy\n")
	if csp := r.Results[string(seo.KeyCSP)]; csp != "" {
		fmt.Fprintf(&b, "  %s\n", csp)
	} else {
		b.WriteString("  No Content Security Policy (CSP) found.\n")
	}

	for _, p := range Previews(r) {
		fmt.Fprintf(&b, "\n%s Preview\n  %s\n  %s\n  %s\n", p.Platform, p.Title, p.URL, p.Description)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes r as indented JSON.
func JSON(w io.Writer, r *model.InspectResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func displayURL(u string) string {
	if s, ok := strings.CutPrefix(u, "https://"); ok {
		return s
	}
	s, _ := strings.CutPrefix(u, "http://")
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
