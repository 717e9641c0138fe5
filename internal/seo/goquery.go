package seo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type goqueryDocument struct {
	doc *goquery.Document
}

// ParseGoquery builds a Document backed by goquery. It is the default backend.
func ParseGoquery(markup string) Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return emptyDocument{}
	}
	return goqueryDocument{doc: doc}
}

func (d goqueryDocument) First(tag string) (Element, bool) {
	sel := d.doc.Find(tag).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return goqueryElement{sel: sel}, true
}

func (d goqueryDocument) FirstWithAttr(tag, attr, value string, fold bool) (Element, bool) {
	sel := d.doc.Find(tag + "[" + attr + "]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr(attr)
		return attrEquals(v, value, fold)
	}).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return goqueryElement{sel: sel}, true
}

type goqueryElement struct {
	sel *goquery.Selection
}

func (e goqueryElement) Text() string { return e.sel.Text() }

func (e goqueryElement) Attr(name string) (string, bool) { return e.sel.Attr(name) }

func attrEquals(got, want string, fold bool) bool {
	if fold {
		return strings.EqualFold(got, want)
	}
	return got == want
}
