package models

// Ingredient is an embedded sub-record of a Recipe. Quantity is free-form
// text rather than a number ("2", "1/2", "a pinch" are all valid), and
// Measurement holds a unit code from the measurement catalog.
type Ingredient struct {
	Name        string `json:"name"`
	Quantity    string `json:"quantity"`
	Measurement string `json:"measurement"`
}
