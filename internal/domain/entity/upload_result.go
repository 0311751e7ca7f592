package entity

// UploadResult reports a successful ingestion back to the handler.
type UploadResult struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	SizeBytes int64  `json:"size_bytes"`
	Format    string `json:"format"`
}
