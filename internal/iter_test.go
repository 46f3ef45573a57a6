package internal

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(
		slices.All([]string{"a", "b"}),
		slices.All([]string{}),
		slices.All([]string{"c"}),
	)

	var keys []int
	var values []string
	for k, v := range seq {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"a", "b", "c"}, values)

	assert.Empty(maps.Collect(IterSeq2Concat[int, string]()))
}

func TestIterSeq2ConcatStop(t *testing.T) {
	assert := assert.New(t)

	var seqs []iter.Seq2[int, byte]
	for range 3 {
		seqs = append(seqs, slices.All([]byte("xyz")))
	}

	count := 0
	for range IterSeq2Concat(seqs...) {
		count++
		if count == 4 {
			break
		}
	}
	assert.Equal(4, count)
}
