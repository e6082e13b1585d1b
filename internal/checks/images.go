package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/readmecheck/readmecheck/internal/document"
	"github.com/readmecheck/readmecheck/internal/markdown"
)

// ImageSrcChecker verifies image tags are well-formed: every tag needs a src
// attribute, and tags outside the example-image host need an alt attribute
// for accessibility.
type ImageSrcChecker struct {
	Host string // example-image host exempt from the alt requirement
}

// ImageSrcData reports how many image tags were scanned.
type ImageSrcData struct {
	CheckData
	Tags int
}

var _ Checker = (*ImageSrcChecker)(nil)

func (*ImageSrcChecker) Name() string { return "image-src" }

func (c *ImageSrcChecker) Check(doc document.Document) (*CheckResult, error) {
	tags := markdown.ImageTags(doc.Content)
	data := &ImageSrcData{Tags: len(tags)}

	for i, tag := range tags {
		if !strings.Contains(tag, "src=") {
			data.add(KindImageMissingSrc, fmt.Sprintf("image tag %d has no src attribute: %s", i+1, tag))
		}
		if c.Host != "" && !strings.Contains(tag, c.Host) && !strings.Contains(tag, "alt=") {
			data.add(KindImageMissingAlt, fmt.Sprintf("image tag %d has no alt attribute: %s", i+1, tag))
		}
	}

	if len(data.Failures) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: fmt.Sprintf("%d of %d image tag(s) are malformed", len(data.Failures), data.Tags),
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("All %d image tag(s) well-formed", data.Tags),
		Data:    data,
	}, nil
}

// minExampleImages is the default minimum number of example-image links.
const minExampleImages = 10

// ImageCountChecker requires a minimum number of links to the example-image
// host.
type ImageCountChecker struct {
	Host     string // e.g. "imgur.com"
	MinCount int    // 0 means minExampleImages
}

// ImageCountData reports how many host links were found.
type ImageCountData struct {
	CheckData
	Links int
}

var _ Checker = (*ImageCountChecker)(nil)

func (*ImageCountChecker) Name() string { return "image-count" }

func (c *ImageCountChecker) Check(doc document.Document) (*CheckResult, error) {
	minCount := c.MinCount
	if minCount <= 0 {
		minCount = minExampleImages
	}

	re := regexp.MustCompile(`https://` + regexp.QuoteMeta(c.Host) + `/[^\s"]+`)
	data := &ImageCountData{Links: len(re.FindAllString(doc.Content, -1))}

	if data.Links < minCount {
		data.add(KindInsufficientImages, fmt.Sprintf("found %d %s link(s), want at least %d", data.Links, c.Host, minCount))
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Not enough example images",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%d example image link(s)", data.Links),
		Data:    data,
	}, nil
}

// thumbnailPixels is the default thumbnail edge length in pixels.
const thumbnailPixels = 100

// minThumbnails is the default minimum number of consistently sized thumbnails.
const minThumbnails = 10

// ThumbnailSizeChecker requires a minimum number of image tags carrying
// explicit width and height attributes of the configured pixel size. The
// width attribute must precede height, matching how the thumbnails are
// written in the table.
type ThumbnailSizeChecker struct {
	Pixels   int // 0 means thumbnailPixels
	MinCount int // 0 means minThumbnails
}

// ThumbnailSizeData reports how many sized thumbnails were found.
type ThumbnailSizeData struct {
	CheckData
	Sized int
}

var _ Checker = (*ThumbnailSizeChecker)(nil)

func (*ThumbnailSizeChecker) Name() string { return "thumbnail-size" }

func (c *ThumbnailSizeChecker) Check(doc document.Document) (*CheckResult, error) {
	pixels := c.Pixels
	if pixels <= 0 {
		pixels = thumbnailPixels
	}
	minCount := c.MinCount
	if minCount <= 0 {
		minCount = minThumbnails
	}

	re := regexp.MustCompile(fmt.Sprintf(`<img[^>]+width="%d"[^>]+height="%d"[^>]*>`, pixels, pixels))
	data := &ThumbnailSizeData{Sized: len(re.FindAllString(doc.Content, -1))}

	if data.Sized < minCount {
		data.add(KindInconsistentThumbnailSizing,
			fmt.Sprintf("found %d thumbnail(s) sized %dx%d, want at least %d", data.Sized, pixels, pixels, minCount))
		return &CheckResult{
			Name:    c.Name(),
			Passed:  false,
			Summary: "Thumbnail sizing is inconsistent",
			Details: data.messages(),
			Data:    data,
		}, nil
	}
	return &CheckResult{
		Name:    c.Name(),
		Passed:  true,
		Summary: fmt.Sprintf("%d thumbnail(s) sized %dx%d", data.Sized, pixels, pixels),
		Data:    data,
	}, nil
}
