package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	ThreadId ThreadId
	Author   PostAuthor
	Content  PostContent
}

type Post struct {
	Id        PostId
	ThreadId  ThreadId
	Author    PostAuthor
	Content   PostContent
	CreatedAt time.Time
}

// RenderedPost is a Post with its content converted to html.
// ContentHTML is never persisted.
type RenderedPost struct {
	Post
	ContentHTML string
}
