package seo

// TagKey identifies one extracted field of an Analysis.
type TagKey string

const (
	KeyTitle         TagKey = "title"
	KeyDescription   TagKey = "description"
	KeyRobots        TagKey = "robots"
	KeyOGTitle       TagKey = "og:title"
	KeyOGDescription TagKey = "og:description"
	KeyTwitterCard   TagKey = "twitter:card"
	KeyCSP           TagKey = "csp"
)

// Match selects the element a tag is read from. An empty Attr selects the
// first element named Tag and reads its text content; otherwise the first
// Tag element whose Attr equals Value is selected and its content attribute
// is read.
type Match struct {
	Tag   string
	Attr  string
	Value string
	Fold  bool
}

// TagSpec is one row of the fixed tag table.
type TagSpec struct {
	Key    TagKey
	Label  string
	Match  Match
	Weight int
}

// Tags is the scored tag set, in display order. Weights add up to 100.
var Tags = []TagSpec{
	{Key: KeyTitle, Label: "Title", Match: Match{Tag: "title"}, Weight: 20},
	{Key: KeyDescription, Label: "Meta Description", Match: Match{Tag: "meta", Attr: "name", Value: "description"}, Weight: 20},
	{Key: KeyRobots, Label: "Meta Robots", Match: Match{Tag: "meta", Attr: "name", Value: "robots"}, Weight: 10},
	{Key: KeyOGTitle, Label: "Open Graph Title", Match: Match{Tag: "meta", Attr: "property", Value: "og:title"}, Weight: 15},
	{Key: KeyOGDescription, Label: "Open Graph Description", Match: Match{Tag: "meta", Attr: "property", Value: "og:description"}, Weight: 15},
	{Key: KeyTwitterCard, Label: "Twitter Card", Match: Match{Tag: "meta", Attr: "name", Value: "twitter:card"}, Weight: 20},
}

// cspMeta locates the meta-tag fallback for the Content-Security-Policy.
// http-equiv values are case-insensitive in HTML.
var cspMeta = Match{Tag: "meta", Attr: "http-equiv", Value: "Content-Security-Policy", Fold: true}

// Label returns the display label for key, or the key itself when unknown.
func Label(key TagKey) string {
	for _, t := range Tags {
		if t.Key == key {
			return t.Label
		}
	}
	if key == KeyCSP {
		return "Content Security Policy"
	}
	return string(key)
}

func extract(doc Document, m Match) string {
	if m.Attr == "" {
		el, ok := doc.First(m.Tag)
		if !ok {
			return ""
		}
		return el.Text()
	}

	el, ok := doc.FirstWithAttr(m.Tag, m.Attr, m.Value, m.Fold)
	if !ok {
		return ""
	}
	v, _ := el.Attr("content")
	return v
}
