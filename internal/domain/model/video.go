package model

import "time"

// Video is the metadata record kept for every uploaded blob. A record is
// created exactly once at ingestion and never updated; Seq is assigned by
// the metadata store and orders records by insertion.
type Video struct {
	ID             string    `json:"id" bson:"_id"`
	Title          string    `json:"title" bson:"title"`
	StoredFilename string    `json:"filename" bson:"filename"`
	OwnerID        string    `json:"owner_id" bson:"owner_id"`
	UploadedAt     time.Time `json:"uploaded_at" bson:"uploaded_at"`
	SizeBytes      int64     `json:"size_bytes" bson:"size_bytes"`
	Format         string    `json:"format" bson:"format"`
	ContentType    string    `json:"content_type" bson:"content_type"`
	Seq            int64     `json:"seq" bson:"seq"`
}
