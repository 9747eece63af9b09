package entity

// Carrier is a read-only reference entry resolving an airline code to its
// display name.
type Carrier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
