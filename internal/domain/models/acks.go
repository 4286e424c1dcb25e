// internal/domain/models/acks.go
package models

// Write acknowledgments mirror the MongoDB driver result shapes the API
// has always returned to clients, so existing frontends keep working.

// InsertAck acknowledges a single-document insert.
type InsertAck struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
}

// UpdateAck acknowledges a single-document update.
type UpdateAck struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteAck acknowledges a single-document delete. DeletedCount is zero
// when no document matched; that is still a success.
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// NewInsertAck builds an InsertAck for the given hex ObjectID.
func NewInsertAck(idHex string) InsertAck {
	return InsertAck{Acknowledged: true, InsertedID: &idHex}
}
