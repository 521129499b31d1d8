package reviews

import "time"

// Review is a single customer review as supplied by the upstream store.
//
// Two schema generations are in circulation: the current export format
// (publishedAt, ownerResponse, staffMentions, themes) and the legacy one
// (date, responseText, staff, tags). Both sets of fields are carried here
// and resolved to one logical attribute by the insights field accessors;
// downstream code must never read the raw legacy fields directly.
type Review struct {
	ID         string `json:"id"`
	BusinessID string `json:"businessId"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`

	// Current schema fields.
	PublishedAt   string `json:"publishedAt,omitempty"`
	OwnerResponse string `json:"ownerResponse,omitempty"`
	Sentiment     string `json:"sentiment,omitempty"`
	StaffMentions string `json:"staffMentions,omitempty"`
	Themes        string `json:"themes,omitempty"`
	Language      string `json:"language,omitempty"`

	// Legacy schema fields, still present in older exports.
	LegacyDate     string `json:"date,omitempty"`
	LegacyResponse string `json:"responseText,omitempty"`
	LegacyStaff    string `json:"staff,omitempty"`
	LegacyTags     string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
