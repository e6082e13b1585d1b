package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFencedBlocks(t *testing.T) {
	content := "intro\n" +
		"```rust\nfn main() {\n    println!(\"hi\");\n}\n```\n" +
		"middle\n" +
		"```bash\ncargo add plotlars\n```\n" +
		"```rust\nlet x = 1;\n```\n"

	rust := FencedBlocks(content, "rust")
	require.Len(t, rust, 2)
	assert.Contains(t, rust[0], "fn main()")
	assert.Contains(t, rust[0], "println!")
	assert.Equal(t, "let x = 1;", rust[1])

	bash := FencedBlocks(content, "bash")
	require.Len(t, bash, 1)
	assert.Equal(t, "cargo add plotlars", bash[0])
}

func TestFencedBlocksDoNotMerge(t *testing.T) {
	// Non-greedy matching must stop at the first closing fence.
	content := "```rust\nfirst\n```\n\n```rust\nsecond\n```\n"
	blocks := FencedBlocks(content, "rust")
	require.Len(t, blocks, 2)
	assert.Equal(t, "first", blocks[0])
	assert.Equal(t, "second", blocks[1])
}

func TestFencedBlocksTagIsExact(t *testing.T) {
	content := "```rustler\nnot rust\n```\n"
	assert.Empty(t, FencedBlocks(content, "rust"))
}

func TestImageTags(t *testing.T) {
	content := `text <img src="https://imgur.com/a.png" width="100" height="100"> more
<img alt="b" src="https://example.com/b.png">`
	tags := ImageTags(content)
	require.Len(t, tags, 2)
	assert.Contains(t, tags[0], "imgur.com")
	assert.Contains(t, tags[1], "example.com")
}

func TestImageSources(t *testing.T) {
	content := `<img src="https://imgur.com/a.png"> <img width="100">`
	srcs := ImageSources(content)
	require.Len(t, srcs, 1)
	assert.Equal(t, "https://imgur.com/a.png", srcs[0])
}

func TestLinks(t *testing.T) {
	content := `See [Scatter Plot](https://docs.rs/plotlars/latest/plotlars/scatter) and [empty]().`
	links := Links(content)
	require.Len(t, links, 1)
	assert.Equal(t, "Scatter Plot", links[0].Text)
	assert.Equal(t, "https://docs.rs/plotlars/latest/plotlars/scatter", links[0].URL)
}

func TestURLs(t *testing.T) {
	content := "visit https://github.com/owner/repo and http://example.com/page now"
	urls := URLs(content)
	require.Len(t, urls, 2)
	assert.Equal(t, "https://github.com/owner/repo", urls[0])
}

func TestHasHeading(t *testing.T) {
	tests := []struct {
		name    string
		content string
		heading string
		want    bool
	}{
		{
			name:    "exact heading",
			content: "# Title\n\n## Motivation\n\nbody\n",
			heading: "Motivation",
			want:    true,
		},
		{
			name:    "heading with trailing spaces",
			content: "## Motivation  \nbody\n",
			heading: "Motivation",
			want:    true,
		},
		{
			name:    "level-3 heading does not satisfy",
			content: "### Motivation\nbody\n",
			heading: "Motivation",
			want:    false,
		},
		{
			name:    "longer heading does not satisfy",
			content: "## Motivation and Goals\nbody\n",
			heading: "Motivation",
			want:    false,
		},
		{
			name:    "heading at start of document",
			content: "## License\nMIT\n",
			heading: "License",
			want:    true,
		},
		{
			name:    "absent heading",
			content: "# Title\nno sections\n",
			heading: "License",
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasHeading(tt.content, tt.heading))
		})
	}
}

func TestSectionBody(t *testing.T) {
	content := "# Title\n\n## Acknowledgements\n\n- Polars\n- Plotly\n\n## License\nMIT\n"

	body, ok := SectionBody(content, "Acknowledgements")
	require.True(t, ok)
	assert.Contains(t, body, "Polars")
	assert.Contains(t, body, "Plotly")
	assert.NotContains(t, body, "MIT")
}

func TestSectionBodyAtEndOfDocument(t *testing.T) {
	content := "## Acknowledgements\nthanks to everyone"
	body, ok := SectionBody(content, "Acknowledgements")
	require.True(t, ok)
	assert.Equal(t, "thanks to everyone", body)
}

func TestSectionBodyMissing(t *testing.T) {
	_, ok := SectionBody("# Title\n", "Acknowledgements")
	assert.False(t, ok)
}
