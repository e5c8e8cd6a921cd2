package models

// Write results mirror the acknowledgement documents returned by the store so
// clients see the same shapes for every collection.

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged      bool  `json:"acknowledged"`
	DeletedCount      int64 `json:"deletedCount"`
	AdvertisedDeleted int64 `json:"advertisedDeleted"`
}
