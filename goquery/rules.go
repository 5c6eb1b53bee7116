package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SourceTypeRule maps a domain substring to a source category.
type SourceTypeRule struct {
	Domain string
	Type   string
}

// SourceTypeRules is checked in order; the first rule whose domain occurs
// anywhere in the URL wins.
var SourceTypeRules = []SourceTypeRule{
	{Domain: "linkedin.com", Type: "Social Media - Professional"},
	{Domain: "twitter.com", Type: "Social Media - Personal"},
	{Domain: "facebook.com", Type: "Social Media - Personal"},
	{Domain: "github.com", Type: "Developer Profile"},
	{Domain: "medium.com", Type: "Blog/Publishing Platform"},
}

// DefaultSourceType is returned when no SourceTypeRules entry matches.
const DefaultSourceType = "Website"

// Industries is searched in order; the first industry mentioned in the text wins.
var Industries = []string{
	"Technology",
	"Finance",
	"Healthcare",
	"Education",
	"Marketing",
	"Engineering",
}

// UnknownIndustry is returned when the text mentions none of Industries.
const UnknownIndustry = "Unknown"

// Page content types in priority order.
const (
	ContentTypeArticle = "Blog/Article"
	ContentTypeProfile = "Profile Page"
	ContentTypeContact = "Contact/Landing Page"
	ContentTypeGeneral = "General Website"
)

// maxAboutLength is the number of characters kept by About.
const maxAboutLength = 500

var (
	aboutClassRe = regexp.MustCompile(`(?i)about|description|bio`)
	contactRe    = regexp.MustCompile(`(?i)tel:|contact`)
	emailRe      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
)

// SourceType classifies a URL by the domains in SourceTypeRules.
func SourceType(url string) string {
	for _, rule := range SourceTypeRules {
		if strings.Contains(url, rule.Domain) {
			return rule.Type
		}
	}
	return DefaultSourceType
}

// Name returns the content of the first og:title meta tag among the
// document's h1, title and meta elements. Heading and title text are not
// used as a fallback.
func Name(doc *goquery.Document) string {
	var name string
	doc.Find("h1, title, meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if property, _ := s.Attr("property"); property == "og:title" {
			name, _ = s.Attr("content")
			return false
		}
		return true
	})
	return name
}

// About joins the text of div and p elements whose class mentions about,
// description or bio, truncated to 500 characters.
func About(doc *goquery.Document) string {
	var parts []string
	doc.Find("div, p").Each(func(_ int, s *goquery.Selection) {
		class, ok := s.Attr("class")
		if !ok || !aboutClassRe.MatchString(class) {
			return
		}
		parts = append(parts, s.Text())
	})
	return truncate(strings.Join(parts, " "), maxAboutLength)
}

// Industry returns the first entry of Industries found in text, ignoring case.
func Industry(text string) string {
	lower := strings.ToLower(text)
	for _, industry := range Industries {
		if strings.Contains(lower, strings.ToLower(industry)) {
			return industry
		}
	}
	return UnknownIndustry
}

// PageContentType classifies the page by the presence of article, profile
// and form elements, checked in that order.
func PageContentType(doc *goquery.Document) string {
	switch {
	case hasElement(doc, "article"):
		return ContentTypeArticle
	case hasElement(doc, "profile"):
		return ContentTypeProfile
	case hasElement(doc, "form"):
		return ContentTypeContact
	}
	return ContentTypeGeneral
}

// Contact returns the href of the first link to a phone number or a
// contact page, or "" if there is none.
func Contact(doc *goquery.Document) string {
	var href string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		h, _ := s.Attr("href")
		if contactRe.MatchString(h) {
			href = h
			return false
		}
		return true
	})
	return href
}

// Email returns the first email address in text, or nil if there is none.
func Email(text string) *string {
	match := emailRe.FindString(text)
	if match == "" {
		return nil
	}
	return &match
}

// Title returns the text of the document's first title element.
func Title(doc *goquery.Document) string {
	return doc.Find("title").First().Text()
}

// Description returns the content of the description meta tag.
func Description(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	return content
}

// hasElement checks if the document contains at least one element matching the selector.
func hasElement(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
