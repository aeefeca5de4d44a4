package resources

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/abhisek/skillpath/internal/store"
)

// fetchLimit caps how many descriptors a fetch returns.
const fetchLimit = 3

// fetchCacheSize bounds the per-fetcher result cache.
const fetchCacheSize = 256

// Suggester is the optional provider-backed stage of the fetch pipeline.
// It is only consulted when configured and when the earlier stages produced
// fewer than fetchLimit candidates.
type Suggester interface {
	Suggest(ctx context.Context, topic, difficulty string) ([]Descriptor, error)
}

// Fetcher returns ranked resource descriptors for a topic. Results are
// cached per (topic, difficulty, type) for the lifetime of the Fetcher;
// the LRU cache is safe for concurrent use.
type Fetcher struct {
	cache     *lru.Cache[string, []Descriptor]
	suggester Suggester
	events    store.EventRepo
}

// NewFetcher creates a Fetcher. Both suggester and events may be nil:
// a nil suggester disables the provider stage, a nil events repo disables
// fetch telemetry.
func NewFetcher(suggester Suggester, events store.EventRepo) *Fetcher {
	cache, err := lru.New[string, []Descriptor](fetchCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic("resources: build fetch cache: " + err.Error())
	}
	return &Fetcher{cache: cache, suggester: suggester, events: events}
}

// Fetch returns up to fetchLimit ranked descriptors for the topic.
// It never fails: a broken provider stage degrades to a fixed fallback list.
func (f *Fetcher) Fetch(ctx context.Context, topic, difficulty, resourceType string) []Descriptor {
	key := topic + "|" + difficulty + "|" + resourceType
	if cached, ok := f.cache.Get(key); ok {
		f.record(ctx, topic, difficulty, resourceType, len(cached), true, false)
		return slices.Clone(cached)
	}

	list := curatedResources(topic, difficulty)

	if len(list) < fetchLimit {
		list = append(list, webResource(topic, difficulty))
	}

	if len(list) < fetchLimit && f.suggester != nil {
		suggested, err := f.suggester.Suggest(ctx, topic, difficulty)
		if err != nil {
			// Documented degradation: the fixed fallback list, uncached so a
			// later fetch can try the provider again.
			fallback := fallbackDescriptors(topic)
			f.record(ctx, topic, difficulty, resourceType, len(fallback), false, true)
			return fallback
		}
		list = append(list, suggested...)
	}

	ranked := rankAndFilter(list, topic)
	if len(ranked) > fetchLimit {
		ranked = ranked[:fetchLimit]
	}

	f.cache.Add(key, ranked)
	f.record(ctx, topic, difficulty, resourceType, len(ranked), false, false)
	return slices.Clone(ranked)
}

// webResource is the templated entry standing in for live platform scraping.
func webResource(topic, difficulty string) Descriptor {
	slug := strings.ToLower(strings.ReplaceAll(topic, " ", "-"))
	return Descriptor{
		Title:          fmt.Sprintf("Complete %s Tutorial", topic),
		Description:    fmt.Sprintf("Comprehensive %s learning resource", topic),
		URL:            "https://example.com/" + slug,
		Provider:       "Educational Platform",
		Type:           "tutorial",
		Difficulty:     difficulty,
		Rating:         4.5,
		EstimatedHours: 30,
	}
}

// fallbackDescriptors is the fixed two-entry list returned when the pipeline
// fails.
func fallbackDescriptors(topic string) []Descriptor {
	return []Descriptor{
		{
			Title:          fmt.Sprintf("Learn %s - Getting Started", topic),
			Description:    fmt.Sprintf("Basic introduction to %s", topic),
			URL:            "https://www.google.com/search?q=learn+" + strings.ReplaceAll(topic, " ", "+"),
			Provider:       "Web Search",
			Type:           "mixed",
			Difficulty:     "beginner",
			Rating:         4.0,
			EstimatedHours: 20,
		},
		{
			Title:          fmt.Sprintf("%s Documentation", topic),
			Description:    fmt.Sprintf("Official documentation and guides for %s", topic),
			URL:            "https://devdocs.io/",
			Provider:       "Official Docs",
			Type:           "documentation",
			Difficulty:     "intermediate",
			Rating:         4.2,
			EstimatedHours: 15,
		},
	}
}

// rankAndFilter removes URL duplicates (first occurrence wins) and orders
// the rest by relevance score, descending. The sort is stable so equal
// scores keep pipeline order.
func rankAndFilter(list []Descriptor, topic string) []Descriptor {
	seen := make(map[string]bool, len(list))
	unique := make([]Descriptor, 0, len(list))
	for _, d := range list {
		if seen[d.URL] {
			continue
		}
		seen[d.URL] = true
		unique = append(unique, d)
	}

	lcTopic := strings.ToLower(topic)
	score := func(d Descriptor) float64 {
		s := d.Rating * 0.7
		if strings.Contains(strings.ToLower(d.Title), lcTopic) {
			s += 1.0
		}
		if strings.Contains(strings.ToLower(d.Description), lcTopic) {
			s += 0.5
		}
		return s
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return score(unique[i]) > score(unique[j])
	})
	return unique
}

// record appends a fetch event; telemetry failures never affect the fetch.
func (f *Fetcher) record(ctx context.Context, topic, difficulty, resourceType string, results int, cacheHit, fallback bool) {
	if f.events == nil {
		return
	}
	err := f.events.AppendResourceFetch(ctx, store.ResourceFetchEventData{
		Topic:        topic,
		Difficulty:   difficulty,
		ResourceType: resourceType,
		Results:      results,
		CacheHit:     cacheHit,
		Fallback:     fallback,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "skillpath: record fetch event:", err)
	}
}
