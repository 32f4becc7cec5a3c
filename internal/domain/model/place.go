package model

// PlaceResult holds provider place details and its photo references in
// provider order.
//
// @Description Place details with photo references
type PlaceResult struct {
	Details map[string]interface{} `json:"details" swaggertype:"object"`
	Photos  []string               `json:"photos"`
}
