package checks

import (
	"fmt"
	"strings"

	"github.com/readmecheck/readmecheck/internal/document"
	"github.com/readmecheck/readmecheck/internal/markdown"
)

const repositoryHost = "https://github.com/"

// RepositoryLinksChecker verifies every repository link uses HTTPS and points
// at an owner/repo path, not a bare host or user page.
type RepositoryLinksChecker struct{}

// RepositoryLinksData reports how many repository links were scanned.
type RepositoryLinksData struct {
	CheckData
	Links int
}

var _ Checker = (*RepositoryLinksChecker)(nil)

func (*RepositoryLinksChecker) Name() string { return "repository-links" }

func (c *RepositoryLinksChecker) Check(doc document.Document) (*CheckResult, error) {
	data := &RepositoryLinksData{}
	for _, url := range markdown.URLs(doc.Content) {
		if !strings.HasPrefix(url, repositoryHost) {
			continue
		}
		data.Links++
		path := strings.TrimPrefix(url, repositoryHost)
		if len(strings.Split(path, "/")) < 2 {
			data.add(KindMalformedRepositoryLink, fmt.Sprintf("repository link has no owner/repo path: %s", url))
		}
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Malformed repository link(s)",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%d repository link(s) well-formed", data.Links),
		Data:    data,
	}, nil
}

// LinkExtractionChecker is an extraction sanity check: the document must
// yield at least one link across markdown links, image sources, and raw URLs.
type LinkExtractionChecker struct{}

// LinkExtractionData reports the per-source link counts.
type LinkExtractionData struct {
	CheckData
	MarkdownLinks int
	ImageSources  int
	RawURLs       int
}

var _ Checker = (*LinkExtractionChecker)(nil)

func (*LinkExtractionChecker) Name() string { return "link-extraction" }

func (c *LinkExtractionChecker) Check(doc document.Document) (*CheckResult, error) {
	data := &LinkExtractionData{
		MarkdownLinks: len(markdown.Links(doc.Content)),
		ImageSources:  len(markdown.ImageSources(doc.Content)),
		RawURLs:       len(markdown.URLs(doc.Content)),
	}
	total := data.MarkdownLinks + data.ImageSources + data.RawURLs

	if total == 0 {
		data.add(KindNoLinksFound, "no links extracted from the document")
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "No links found",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%d link(s) extracted", total),
		Data:    data,
	}, nil
}

// minDocLinks is the default minimum number of latest-docs links.
const minDocLinks = 5

// DocLinksChecker requires a minimum number of links under the latest-docs
// URL prefix.
type DocLinksChecker struct {
	LatestPrefix string // e.g. "https://docs.rs/plotlars/latest/plotlars/"
	MinCount     int    // 0 means minDocLinks
}

// DocLinksData reports how many latest-docs links were found.
type DocLinksData struct {
	CheckData
	Links int
}

var _ Checker = (*DocLinksChecker)(nil)

func (*DocLinksChecker) Name() string { return "doc-links" }

func (c *DocLinksChecker) Check(doc document.Document) (*CheckResult, error) {
	minCount := c.MinCount
	if minCount <= 0 {
		minCount = minDocLinks
	}

	data := &DocLinksData{Links: strings.Count(doc.Content, c.LatestPrefix)}
	if data.Links < minCount {
		data.add(KindInsufficientDocLinks, fmt.Sprintf("found %d documentation link(s), want at least %d", data.Links, minCount))
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Not enough documentation links",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%d documentation link(s)", data.Links),
		Data:    data,
	}, nil
}

// minShieldBadges is the default minimum number of badge URLs.
const minShieldBadges = 2

// BadgeFormatChecker requires a minimum number of badge URLs and that badges
// are embedded as image tags or markdown images rather than bare links.
type BadgeFormatChecker struct {
	Host     string // badge host prefix, e.g. "https://img.shields.io/"
	MinCount int    // 0 means minShieldBadges
}

// BadgeFormatData reports how many badge URLs were found.
type BadgeFormatData struct {
	CheckData
	Badges int
}

var _ Checker = (*BadgeFormatChecker)(nil)

func (*BadgeFormatChecker) Name() string { return "badge-format" }

func (c *BadgeFormatChecker) Check(doc document.Document) (*CheckResult, error) {
	minCount := c.MinCount
	if minCount <= 0 {
		minCount = minShieldBadges
	}

	data := &BadgeFormatData{Badges: strings.Count(doc.Content, c.Host)}
	if data.Badges < minCount {
		data.add(KindMalformedBadges, fmt.Sprintf("found %d badge URL(s), want at least %d", data.Badges, minCount))
	}
	if data.Badges > 0 && !strings.Contains(doc.Content, "<img") && !strings.Contains(doc.Content, "![") {
		data.add(KindMalformedBadges, "badges are not embedded as images")
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Badge formatting is incomplete",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%d badge(s) properly embedded", data.Badges),
		Data:    data,
	}, nil
}
