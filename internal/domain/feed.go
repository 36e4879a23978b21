package domain

// Feed is a thread with its posts, newest first.
type Feed struct {
	Thread Thread
	Posts  []RenderedPost
}
