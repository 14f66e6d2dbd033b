package domain

// Item is a single pantry entry. Expiration travels as a YYYY-MM-DD
// string on the wire and in the database; only its shape is enforced,
// not calendar validity.
type Item struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
	Expiration string `json:"expiration"`
}
