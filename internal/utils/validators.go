package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/itchan-dev/threadfeed/internal/errors"
)

const (
	MaxTitleLen   = 200
	MaxAuthorLen  = 64
	MaxContentLen = 10_000
)

type ThreadTitleValidator struct{}

func (e *ThreadTitleValidator) Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.Validation("Title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return errors.Validation("Title is too long")
	}
	return nil
}

type PostValidator struct{}

func (e *PostValidator) Author(author string) error {
	if strings.TrimSpace(author) == "" {
		return errors.Validation("Author is required")
	}
	if utf8.RuneCountInString(author) > MaxAuthorLen {
		return errors.Validation("Author is too long")
	}
	return nil
}

func (e *PostValidator) Content(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.Validation("Content is required")
	}
	if utf8.RuneCountInString(content) > MaxContentLen {
		return errors.Validation("Content is too long")
	}
	return nil
}
