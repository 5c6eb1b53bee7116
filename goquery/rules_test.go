package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitelens/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *gq.Document {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestSourceType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://www.linkedin.com/in/someone", "Social Media - Professional"},
		{"https://twitter.com/someone", "Social Media - Personal"},
		{"https://facebook.com/page", "Social Media - Personal"},
		{"https://github.com/fwojciec", "Developer Profile"},
		{"https://gist.github.com/abc", "Developer Profile"},
		{"https://example.com/?ref=github.com", "Developer Profile"},
		{"https://medium.com/@writer/post", "Blog/Publishing Platform"},
		{"https://example.com", "Website"},
		{"", "Website"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, goquery.SourceType(tt.url))
		})
	}

	t.Run("first rule in table order wins", func(t *testing.T) {
		t.Parallel()

		// Mentions both medium.com and linkedin.com; linkedin is declared first.
		url := "https://medium.com/share?to=linkedin.com"

		assert.Equal(t, "Social Media - Professional", goquery.SourceType(url))
	})
}

func TestName(t *testing.T) {
	t.Parallel()

	t.Run("returns og:title content", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<title>Page Title</title>
<meta property="og:title" content="Acme Corp">
</head><body><h1>Heading</h1></body></html>`)

		assert.Equal(t, "Acme Corp", goquery.Name(doc))
	})

	t.Run("returns first og:title in document order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta property="og:title" content="First">
<meta property="og:title" content="Second">
</head></html>`)

		assert.Equal(t, "First", goquery.Name(doc))
	})

	t.Run("does not fall back to title or heading", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><title>Page Title</title>
<meta name="og:title" content="Wrong attribute">
</head><body><h1>Heading</h1></body></html>`)

		assert.Empty(t, goquery.Name(doc))
	})
}

func TestAbout(t *testing.T) {
	t.Parallel()

	t.Run("joins matching div and p elements", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body>
<div class="about-us">We build things.</div>
<p class="Product-DESCRIPTION">Fast and simple.</p>
<span class="bio">Ignored span.</span>
<div class="footer">Ignored footer.</div>
<p class="author-bio">Written by Ann.</p>
</body></html>`)

		assert.Equal(t, "We build things. Fast and simple. Written by Ann.", goquery.About(doc))
	})

	t.Run("truncates to 500 characters", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div class="about">`+strings.Repeat("é", 600)+`</div>`)

		about := goquery.About(doc)

		assert.Equal(t, 500, len([]rune(about)))
	})

	t.Run("returns empty string when nothing matches", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div class="content">Hello</div>`)

		assert.Empty(t, goquery.About(doc))
	})
}

func TestIndustry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"first list match wins", "This is a Technology and Finance company", "Technology"},
		{"list order beats text order", "finance first, then technology", "Technology"},
		{"case insensitive", "we teach EDUCATION", "Education"},
		{"substring match", "bioengineering lab", "Engineering"},
		{"no match", "we sell shoes", "Unknown"},
		{"empty text", "", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, goquery.Industry(tt.text))
		})
	}
}

func TestPageContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"article wins over form", `<body><form></form><article>Post</article></body>`, "Blog/Article"},
		{"article alone", `<body><article>Post</article></body>`, "Blog/Article"},
		{"profile wins over form", `<body><form></form><profile>Me</profile></body>`, "Profile Page"},
		{"form alone", `<body><form><input name="q"></form></body>`, "Contact/Landing Page"},
		{"nothing", `<body><div>Hi</div></body>`, "General Website"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, goquery.PageContentType(parse(t, tt.html)))
		})
	}
}

func TestContact(t *testing.T) {
	t.Parallel()

	t.Run("returns first tel or contact link", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body>
<a href="/home">Home</a>
<a href="/Contact-Us">Contact</a>
<a href="tel:+15551234">Call</a>
</body>`)

		assert.Equal(t, "/Contact-Us", goquery.Contact(doc))
	})

	t.Run("matches tel links", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<a href="mailto:a@b.com">Mail</a><a href="tel:+15551234">Call</a>`)

		assert.Equal(t, "tel:+15551234", goquery.Contact(doc))
	})

	t.Run("returns empty string without contact links", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<a href="/about">About</a><a>no href contact</a>`)

		assert.Empty(t, goquery.Contact(doc))
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()

	t.Run("returns first address", func(t *testing.T) {
		t.Parallel()

		email := goquery.Email("Reach us at sales@example.com or support@example.org.")

		require.NotNil(t, email)
		assert.Equal(t, "sales@example.com", *email)
	})

	t.Run("returns nil without address", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, goquery.Email("no addresses @ here"))
	})
}

func TestTitleAndDescription(t *testing.T) {
	t.Parallel()

	t.Run("reads title and description meta", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><title>Acme</title>
<meta name="description" content="Acme makes anvils."></head></html>`)

		assert.Equal(t, "Acme", goquery.Title(doc))
		assert.Equal(t, "Acme makes anvils.", goquery.Description(doc))
	})

	t.Run("empty when absent", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body>nothing</body></html>`)

		assert.Empty(t, goquery.Title(doc))
		assert.Empty(t, goquery.Description(doc))
	})
}
