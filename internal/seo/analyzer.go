package seo

// Results maps every TagKey, csp included, to its extracted value. An empty
// string means the tag was not found; every key is always present.
type Results map[TagKey]string

// Analysis is the outcome of analyzing one document.
type Analysis struct {
	Results Results `json:"results"`
	Score   int     `json:"score"`
}

// Missing returns the labels of the scored tags that were not found, in
// table order.
func (a Analysis) Missing() []string {
	var out []string
	for _, t := range Tags {
		if a.Results[t.Key] == "" {
			out = append(out, t.Label)
		}
	}
	return out
}

// Analyzer extracts the fixed tag set from markup and scores it.
type Analyzer struct {
	parse ParseFunc
}

// NewAnalyzer returns an Analyzer using the given parsing backend. A nil
// parse selects ParseGoquery.
func NewAnalyzer(parse ParseFunc) *Analyzer {
	if parse == nil {
		parse = ParseGoquery
	}
	return &Analyzer{parse: parse}
}

// Analyze parses markup, extracts every tag in Tags plus the meta-tag CSP,
// and scores the result. headerCSP, when non-empty, takes precedence over the
// meta tag. Malformed markup never fails; missing tags are empty strings.
func (a *Analyzer) Analyze(markup, headerCSP string) Analysis {
	doc := a.parse(markup)

	results := make(Results, len(Tags)+1)
	for _, t := range Tags {
		results[t.Key] = extract(doc, t.Match)
	}

	results[KeyCSP] = headerCSP
	if headerCSP == "" {
		results[KeyCSP] = extract(doc, cspMeta)
	}

	return Analysis{Results: results, Score: Score(results)}
}

var defaultAnalyzer = NewAnalyzer(nil)

// Analyze runs the default goquery-backed Analyzer.
func Analyze(markup, headerCSP string) Analysis {
	return defaultAnalyzer.Analyze(markup, headerCSP)
}
