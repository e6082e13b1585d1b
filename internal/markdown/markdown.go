// Package markdown provides the regular-expression extractions the checks
// are built on: fenced code blocks, image tags, links, and headings. All
// functions are pure; results are recomputed per call and never cached.
//
// This is deliberately not a Markdown parser. The checks assert properties of
// the raw text, and a full AST would change their semantics (e.g. code inside
// blockquotes, or headings inside fences).
package markdown

import (
	"regexp"
)

// imgTagPattern matches HTML image tags as they appear in the raw text.
var imgTagPattern = regexp.MustCompile(`<img[^>]+>`)

// imgSrcPattern captures the src attribute value of an image tag.
var imgSrcPattern = regexp.MustCompile(`<img[^>]+src="([^"]+)"`)

// linkPattern captures markdown links: [text](url).
var linkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

// urlPattern matches bare http(s) URLs up to whitespace or a closing paren.
var urlPattern = regexp.MustCompile(`https?://[^\s)]+`)

// Link is a markdown link extracted from the document.
type Link struct {
	Text string
	URL  string
}

// FencedBlocks returns the bodies of fenced code blocks tagged with lang, in
// document order. The fence tag must follow the opening backticks exactly
// (```rust matches lang "rust", not "rust,ignore"). Matching is non-greedy
// across lines, so adjacent blocks do not merge.
func FencedBlocks(content, lang string) []string {
	re := regexp.MustCompile("(?s)```" + regexp.QuoteMeta(lang) + "\n(.*?)\n```")
	matches := re.FindAllStringSubmatch(content, -1)
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, m[1])
	}
	return blocks
}

// ImageTags returns all <img ...> tags in document order.
func ImageTags(content string) []string {
	return imgTagPattern.FindAllString(content, -1)
}

// ImageSources returns the src attribute values of all image tags.
func ImageSources(content string) []string {
	matches := imgSrcPattern.FindAllStringSubmatch(content, -1)
	srcs := make([]string, 0, len(matches))
	for _, m := range matches {
		srcs = append(srcs, m[1])
	}
	return srcs
}

// Links returns all markdown links in document order.
func Links(content string) []Link {
	matches := linkPattern.FindAllStringSubmatch(content, -1)
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Text: m[1], URL: m[2]})
	}
	return links
}

// URLs returns all bare http(s) URLs in document order.
func URLs(content string) []string {
	return urlPattern.FindAllString(content, -1)
}

// HasHeading reports whether content contains name as a level-2 heading on
// its own line. The match is anchored: "### Motivation" does not satisfy
// "Motivation", and neither does a longer heading that merely starts with it.
func HasHeading(content, name string) bool {
	re := regexp.MustCompile(`(?m)^## ` + regexp.QuoteMeta(name) + `[ \t]*$`)
	return re.MatchString(content)
}

// SectionBody returns the text between the "## <name>" heading and the next
// heading line (or end of document). The second return value is false when
// the heading is absent.
func SectionBody(content, name string) (string, bool) {
	re := regexp.MustCompile(`(?ms)^## ` + regexp.QuoteMeta(name) + `[ \t]*$\n?(.*?)(?:\n##|\z)`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}
