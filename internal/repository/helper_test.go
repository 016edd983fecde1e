package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	d := time.Date(2021, 8, 8, 14, 19, 9, 775_000_000, loc)

	assert.Equal(t, "2021-08-08T07:19:09.775Z", FormatDate(d))
}

func TestNewUUID(t *testing.T) {
	a, b := NewUUID(), NewUUID()

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
	assert.LessOrEqual(t, len(PrefixComment+a), 50)
	assert.False(t, strings.HasPrefix(a, PrefixThread))
}
