package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("plain", From("plain"))
	assert.Equal("'x' is 3", From("'%v' is %d", "x", 3))
}

func TestUse(t *testing.T) {
	table := []struct {
		name    string
		locales []string
	}{
		{"fallback", nil},
		{"en-GB", []string{"en-GB"}},
		{"unknown", []string{"xx-YY", FALLBACK_LOCALE}},
	}

	defer Use()

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			Use(entry.locales...)
			assert.Equal("cell 7 at 1:2", From("cell %d at %d:%d", 7, 1, 2))
			assert.Equal(`unexpected character 'q'`, From("unexpected character %q", 'q'))
		})
	}
}
