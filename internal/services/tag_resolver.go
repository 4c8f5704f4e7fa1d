package services

import "tag-ledger/internal/models"

// TagCatalog is the immutable view of one user's tags used during a pass.
type TagCatalog struct {
	byID   map[string]models.Tag
	byName map[string]models.Tag
}

func NewTagCatalog(tags []models.Tag) *TagCatalog {
	catalog := &TagCatalog{
		byID:   make(map[string]models.Tag, len(tags)),
		byName: make(map[string]models.Tag, len(tags)),
	}
	for _, tag := range tags {
		catalog.byID[tag.ID] = tag
		catalog.byName[models.TagNameKey(tag.Name)] = tag
	}
	return catalog
}

func (c *TagCatalog) Len() int {
	return len(c.byID)
}

// Resolve returns the catalog tags referenced by refs. An id match wins over a name
// match; dangling references are dropped and each tag is returned at most once.
func (c *TagCatalog) Resolve(refs []models.TagRef) []models.Tag {
	if len(refs) == 0 {
		return nil
	}

	resolved := make([]models.Tag, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		tag, ok := c.lookup(ref)
		if !ok {
			continue
		}
		if _, dup := seen[tag.ID]; dup {
			continue
		}
		seen[tag.ID] = struct{}{}
		resolved = append(resolved, tag)
	}
	return resolved
}

func (c *TagCatalog) lookup(ref models.TagRef) (models.Tag, bool) {
	if ref.ID != "" {
		if tag, ok := c.byID[ref.ID]; ok {
			return tag, true
		}
	}
	if ref.Name != "" {
		if tag, ok := c.byName[models.TagNameKey(ref.Name)]; ok {
			return tag, true
		}
	}
	return models.Tag{}, false
}
