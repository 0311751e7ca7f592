package dto

// VideoView is the catalog payload for one video, as rendered to a viewer.
type VideoView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	OwnerName string `json:"owner_name"`
	IsOwner   bool   `json:"is_owner"`
	Uploaded  string `json:"uploaded"`
	Size      string `json:"size"`
	Format    string `json:"format"`
}
