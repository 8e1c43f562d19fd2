package models

import "time"

// Location is the Locations collection document, keyed by the
// coordinate-derived location id supplied by the client.
type Location struct {
	ID        string    `bson:"_id" json:"locationid"`
	Owner     string    `bson:"owner" json:"owner"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// LocationSummary is the projection returned when a location is saved.
type LocationSummary struct {
	ID    string `json:"locationid"`
	Owner string `json:"owner"`
}

func (l *Location) Summary() LocationSummary {
	return LocationSummary{ID: l.ID, Owner: l.Owner}
}
