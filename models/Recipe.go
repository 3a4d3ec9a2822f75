package models

// Recipe is the primary persisted record. Whole collections of recipes are
// serialized as a single JSON array under one store key, so the field names
// here are the wire format of the stored blob.
//
// Favorite status is intentionally not a field: it is membership in the
// favorites collection, which stores duplicated copies of favorited recipes.
type Recipe struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions string       `json:"instructions"`
	Tags         string       `json:"tags,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	Rating       *float64     `json:"rating,omitempty"`
}

// RatingValue returns the rating with nil treated as zero, which is the
// ordering rule used when sorting unrated recipes.
func (r Recipe) RatingValue() float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}
