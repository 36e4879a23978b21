package domain

import (
	"time"
)

type Thread struct {
	Id        ThreadId
	Title     ThreadTitle
	CreatedAt time.Time
}
