package models

// VideoModel backs both the trending and celebrity video collections;
// the two differ only in which collection they live in. Video bytes stay
// entirely in external storage, referenced by URL.
type VideoModel struct {
	Base  `bson:",inline"`
	Title string `json:"title" bson:"title"`
	URL   string `json:"url"   bson:"url"`
}
