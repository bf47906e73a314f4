package donorflow

import (
	"context"
	"log"
	"sync"
)

// DefaultStaticPurposes is the fixed baseline of organizational purposes.
// These carry no content references and always lead the catalog.
var DefaultStaticPurposes = []PurposeOption{
	{Label: "General Donation"},
	{Label: "Where Needed Most"},
	{Label: "Emergency Relief Fund"},
	{Label: "Monthly Giving Program"},
}

const (
	slugPrograms  = "programs"
	slugCampaigns = "campaigns"
	slugNews      = "news"
)

// Catalog is the merged, ordered list of selectable purposes plus the
// current selection state. Options are immutable after construction.
type Catalog struct {
	Options  []PurposeOption
	Selected PurposeOption
	// Locked means the selection was forced by a pre-selected content
	// reference and must not be changed by the user.
	Locked bool
}

// CatalogOptions configures a catalog build.
type CatalogOptions struct {
	// StaticPurposes overrides DefaultStaticPurposes when non-nil.
	StaticPurposes []PurposeOption
	// PreselectObjectID forces selection of the option derived from the
	// content object with this id, locking the selector.
	PreselectObjectID string
}

// BuildCatalog fetches the three content collections concurrently and merges
// them after the static list. A failed fetch contributes nothing; the static
// list alone is the floor, so the result is never empty and the build never
// returns an error.
func BuildCatalog(ctx context.Context, client SiteClient, opts CatalogOptions) Catalog {
	static := opts.StaticPurposes
	if static == nil {
		static = DefaultStaticPurposes
	}

	fetches := []struct {
		slug   string
		prefix string
		items  func(SectionContent) []ContentItem
	}{
		{slugPrograms, "Program: ", func(c SectionContent) []ContentItem { return c.Programs }},
		{slugCampaigns, "Campaign: ", func(c SectionContent) []ContentItem { return c.SuccessStories }},
		{slugNews, "News: ", func(c SectionContent) []ContentItem { return c.News }},
	}

	// Each fetch writes only its own slot, so the merge order is fixed
	// regardless of which request resolves first.
	derived := make([][]PurposeOption, len(fetches))

	var wg sync.WaitGroup
	for i, f := range fetches {
		wg.Add(1)
		go func() {
			defer wg.Done()

			section, err := client.FetchSection(ctx, f.slug)
			if err != nil {
				log.Printf("[catalog][donorflow] section %q unavailable, continuing without it: %v", f.slug, err)
				return
			}

			var options []PurposeOption
			for _, item := range f.items(section.Content) {
				if item.Title == "" {
					continue
				}
				options = append(options, PurposeOption{
					Label:     f.prefix + item.Title,
					SectionID: section.ID,
					ObjectID:  item.ID,
				})
			}
			derived[i] = options
		}()
	}
	wg.Wait()

	options := make([]PurposeOption, 0, len(static))
	options = append(options, static...)
	for _, group := range derived {
		options = append(options, group...)
	}

	catalog := Catalog{Options: options}
	if len(options) > 0 {
		catalog.Selected = options[0]
	}

	if opts.PreselectObjectID != "" {
		for _, option := range options {
			if option.ObjectID == opts.PreselectObjectID {
				catalog.Selected = option
				catalog.Locked = true
				break
			}
		}
	}

	return catalog
}
