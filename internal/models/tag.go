package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultTagColor = "#6B7280"

// Tag is a user-defined label used as the grouping key for aggregation.
type Tag struct {
	ID        string    `gorm:"type:varchar(64);primary_key" json:"id"`
	UserID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_tags_user_name,priority:1" json:"userId"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	NameKey   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_tags_user_name,priority:2" json:"-"`
	Color     string    `gorm:"type:varchar(16)" json:"color"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (*Tag) TableName() string {
	return "tags"
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Color == "" {
		t.Color = DefaultTagColor
	}
	t.NameKey = TagNameKey(t.Name)
	return nil
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	t.NameKey = TagNameKey(t.Name)
	return nil
}

// TagNameKey is the case-insensitive identity of a tag name within one user.
func TagNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TagRef is one entry of a transaction's raw tags field after boundary parsing.
// Rows written by older importers carry bare ids; newer ones embed {id, name} snapshots.
type TagRef struct {
	ID   string
	Name string
}

// ParseTagRefs normalizes the raw tags value of a transaction.
// Accepted shapes: nil, a single id string, a JSON-encoded array string, []string,
// or []interface{} of strings and/or objects carrying id/_id/tagId and name.
// Entries carrying neither id nor name are dropped.
func ParseTagRefs(raw interface{}) []TagRef {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "[") {
			var decoded []interface{}
			if err := json.Unmarshal([]byte(s), &decoded); err == nil {
				return ParseTagRefs(decoded)
			}
		}
		return []TagRef{{ID: s}}
	case []string:
		refs := make([]TagRef, 0, len(v))
		for _, id := range v {
			if id = strings.TrimSpace(id); id != "" {
				refs = append(refs, TagRef{ID: id})
			}
		}
		return refs
	case []interface{}:
		refs := make([]TagRef, 0, len(v))
		for _, item := range v {
			if ref, ok := parseTagRef(item); ok {
				refs = append(refs, ref)
			}
		}
		return refs
	default:
		return nil
	}
}

func parseTagRef(item interface{}) (TagRef, bool) {
	switch v := item.(type) {
	case string:
		id := strings.TrimSpace(v)
		return TagRef{ID: id}, id != ""
	case map[string]interface{}:
		ref := TagRef{
			ID:   firstString(v, "id", "_id", "tagId", "tag_id"),
			Name: firstString(v, "name", "tagName", "tag_name"),
		}
		return ref, ref.ID != "" || ref.Name != ""
	default:
		return TagRef{}, false
	}
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if raw, ok := m[key]; ok && raw != nil {
			if s := strings.TrimSpace(fmt.Sprintf("%v", raw)); s != "" {
				return s
			}
		}
	}
	return ""
}

// TagIDsFromRefs returns the ids of refs in order, skipping name-only references.
func TagIDsFromRefs(refs []TagRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.ID != "" {
			ids = append(ids, ref.ID)
		}
	}
	return ids
}
