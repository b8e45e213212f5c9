package parserpool_test

import (
	"sync"
	"testing"

	"github.com/avherb/herbdb/pkg/parserpool"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBotanical(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	tests := []struct {
		msg       string
		name      string
		canonical string
	}{
		{
			msg:       "binomial with author",
			name:      "Mangifera indica L.",
			canonical: "Mangifera indica",
		},
		{
			msg:       "bare binomial",
			name:      "Ixora coccinea",
			canonical: "Ixora coccinea",
		},
		{
			msg:       "infraspecific",
			name:      "Rosa acicularis var. acicularis",
			canonical: "Rosa acicularis acicularis",
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res, err := pool.Parse(v.name, nomcode.Botanical)
			require.NoError(t, err)
			assert.True(t, res.Parsed)
			assert.Equal(t, v.canonical, res.Canonical.Simple)
		})
	}
}

func TestParseUnsupportedCode(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	_, err := pool.Parse("Mangifera indica", nomcode.Bacterial)
	assert.Error(t, err)
}

func TestParseConcurrent(t *testing.T) {
	pool := parserpool.NewPool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := nomcode.Botanical
			name := "Mangifera indica L."
			if i%2 == 0 {
				code = nomcode.Zoological
				name = "Apis mellifera Linnaeus, 1758"
			}
			for j := 0; j < 10; j++ {
				res, err := pool.Parse(name, code)
				assert.NoError(t, err)
				assert.True(t, res.Parsed)
			}
		}(i)
	}
	wg.Wait()
}
