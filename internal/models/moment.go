package models

// MomentType classifies a moment's media kind.
type MomentType string

const (
	MomentTypeImage MomentType = "image"
	MomentTypeVideo MomentType = "video"
	MomentTypeAudio MomentType = "audio"
)

// Moment is a single witnessable unit of content. Immutable once constructed;
// sourced from a static collaborator in this version.
type Moment struct {
	ID          string     `json:"id"`
	Author      string     `json:"author"`
	Avatar      string     `json:"avatar"`
	Location    string     `json:"location"`
	ContentURL  string     `json:"contentUrl"`
	Description string     `json:"description"`
	Timestamp   string     `json:"timestamp"`
	Type        MomentType `json:"type"`
}

// ComicEntry is the AI-generated illustrated scenario shown on the comic tab.
// Ephemeral: recomputed when the tab is activated, cached only for the
// lifetime of the feed screen instance, never persisted.
type ComicEntry struct {
	// Image is a displayable image reference (data URI).
	Image string
	Text  string
}
