package utils

import (
	"net/http"
	"strings"
	"testing"

	"github.com/itchan-dev/threadfeed/internal/errors"
	"github.com/stretchr/testify/assert"
)

func assertValidation(t *testing.T, err error) {
	t.Helper()
	assert.Equal(t, http.StatusBadRequest, errors.StatusCode(err), "expected validation error, got %v", err)
}

func TestThreadTitleValidator(t *testing.T) {
	v := &ThreadTitleValidator{}

	assert.NoError(t, v.Title("Launch Day"))
	assert.NoError(t, v.Title(strings.Repeat("я", MaxTitleLen)))
	assertValidation(t, v.Title(""))
	assertValidation(t, v.Title("   \n"))
	assertValidation(t, v.Title(strings.Repeat("a", MaxTitleLen+1)))
}

func TestPostValidator(t *testing.T) {
	v := &PostValidator{}

	assert.NoError(t, v.Author("Alice"))
	assertValidation(t, v.Author(""))
	assertValidation(t, v.Author(strings.Repeat("a", MaxAuthorLen+1)))

	assert.NoError(t, v.Content("**hello**"))
	assertValidation(t, v.Content("\t"))
	assertValidation(t, v.Content(strings.Repeat("a", MaxContentLen+1)))
}
