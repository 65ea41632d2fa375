package domain

// GeneratedContent is the ephemeral output of the generation gateway. It is
// never persisted directly; the caller decides whether to save it as a Post.
type GeneratedContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
