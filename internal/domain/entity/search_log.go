package entity

import (
	"time"
)

// SearchLog archives one raw fetch from the search provider.
type SearchLog struct {
	ID         string    `bson:"_id,omitempty"`
	FetchedAt  time.Time `bson:"fetchedAt"`
	RequestURL string    `bson:"requestUrl"`
	StatusCode int       `bson:"statusCode"`
	OfferCount int       `bson:"offerCount"`
	RawBody    string    `bson:"rawBody"`
}
