package domain

type (
	ThreadId    = uint64
	ThreadTitle = string

	PostId      = uint64
	PostAuthor  = string
	PostContent = string
)
