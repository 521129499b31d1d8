package businesses

import "time"

// Business is a merchant profile that owns a set of reviews.
type Business struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry,omitempty"`
	Timezone  string    `json:"timezone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
