package model

// Item represents a single lost or found report.
type Item struct {
	ID          string `json:"id"`
	Collection  string `json:"-"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	ImageMime   string `json:"image_mime,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

// Item types.
const (
	ItemTypeLost  = "lost"
	ItemTypeFound = "found"
)

// Collections an item can belong to. An item is in exactly one at a time.
const (
	CollectionActive  = "active"
	CollectionClaimed = "claimed"
	CollectionDeleted = "deleted"
)

// Field defaults applied at creation.
const (
	DefaultCategory = "Misc"
	DefaultLocation = "Unknown"
)

// ValidItemType reports whether t is a known item type.
func ValidItemType(t string) bool {
	return t == ItemTypeLost || t == ItemTypeFound
}

// ValidCollection reports whether c is a known collection.
func ValidCollection(c string) bool {
	return c == CollectionActive || c == CollectionClaimed || c == CollectionDeleted
}
