package seo

// Document is a parsed markup tree that can be queried for the first element
// matching a tag name or a tag plus attribute predicate. Implementations must
// tolerate malformed input: a failed lookup reports ok=false, never an error.
type Document interface {
	// First returns the first element named tag in document order.
	First(tag string) (Element, bool)
	// FirstWithAttr returns the first element named tag whose attribute attr
	// equals value. When fold is set the value comparison ignores ASCII case.
	FirstWithAttr(tag, attr, value string, fold bool) (Element, bool)
}

// Element is a single node returned by a Document query.
type Element interface {
	// Text returns the concatenated text content of the element.
	Text() string
	// Attr returns the named attribute's value and whether it is present.
	Attr(name string) (string, bool)
}

// ParseFunc turns raw markup into a Document.
type ParseFunc func(markup string) Document

// emptyDocument is used when a backend cannot build a tree at all.
type emptyDocument struct{}

func (emptyDocument) First(string) (Element, bool) { return nil, false }

func (emptyDocument) FirstWithAttr(string, string, string, bool) (Element, bool) {
	return nil, false
}
