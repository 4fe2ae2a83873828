package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/zjrosen/navdrawer/internal/cachemanager"
	"github.com/zjrosen/navdrawer/internal/config"
	"github.com/zjrosen/navdrawer/internal/log"
	"github.com/zjrosen/navdrawer/internal/ui/markdown"
	"github.com/zjrosen/navdrawer/internal/ui/styles"
)

// renderInput is what the section cache needs to render one body on a miss.
type renderInput struct {
	renderer *markdown.Renderer
	body     string
}

type sectionCache = cachemanager.ReadThroughCache[string, string, renderInput]

func newSectionCache() *sectionCache {
	store := cachemanager.NewInMemoryCacheManager[string, string](
		"sections",
		cachemanager.DefaultExpiration,
		cachemanager.DefaultCleanupInterval,
	)
	return cachemanager.NewReadThroughCache[string, string, renderInput](store, func(_ context.Context, in renderInput) (string, error) {
		return in.renderer.Render(in.body)
	})
}

func sectionKey(s config.SectionConfig, width int) string {
	return fmt.Sprintf("%s@%d", s.Anchor, width)
}

// page is the rendered host content and the line each anchor starts on.
type page struct {
	content string
	anchors map[string]int
}

// renderPage lays out every section for width. A section whose markdown
// fails to render falls back to its raw body.
func renderPage(ctx context.Context, cache *sectionCache, renderer *markdown.Renderer, sections []config.SectionConfig) page {
	p := page{anchors: make(map[string]int, len(sections))}
	width := renderer.Width()

	var lines []string
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		p.anchors[s.Anchor] = len(lines)
		lines = append(lines, styles.SectionTitleStyle.Render(s.Title))

		body, err := cache.Get(ctx, sectionKey(s, width), renderInput{renderer: renderer, body: s.Body}, 0)
		if err != nil {
			log.Warn(log.CatCache, "section render failed", "anchor", s.Anchor, "error", err)
			body = s.Body
		}
		lines = append(lines, strings.Split(body, "\n")...)
	}

	p.content = strings.Join(lines, "\n")
	return p
}
