package model

// PostDetailed is the public shape of a post aggregate: the post row with
// media sorted for presentation and its categories attached. It is built by
// the post service, never returned straight from storage.
type PostDetailed struct {
	Post       *Post       `json:"post"`
	Media      []*Media    `json:"media"`
	Categories []*Category `json:"categories"`
}
