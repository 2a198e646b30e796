package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnradial/pkg/parserpool"
	"github.com/stretchr/testify/assert"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		msg      string
		jobsNum  int
		wantSize int
	}{
		{"custom size 4", 4, 4},
		{"custom size 1", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			pool := parserpool.NewPool(tt.jobsNum, nomcode.Botanical)
			defer pool.Close()
			assert.Equal(t, tt.wantSize, pool.Size())
		})
	}

	pool := parserpool.NewPool(0, nomcode.Botanical)
	defer pool.Close()
	assert.Positive(t, pool.Size(), "0 means NumCPU")
}

func TestCanonical(t *testing.T) {
	pool := parserpool.NewPool(2, nomcode.Botanical)
	defer pool.Close()

	tests := []struct {
		msg, name, want string
		ok              bool
	}{
		{"uninomial", "Chordata", "Chordata", true},
		{"uninomial with author", "Mammalia Linnaeus, 1758", "Mammalia", true},
		{"binomial", "Homo sapiens", "Homo sapiens", true},
		{"binomial with author", "Homo sapiens Linnaeus, 1758", "Homo sapiens", true},
		{"spaces", "  Felis catus  ", "Felis catus", true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			res, ok := pool.Canonical(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, res)
		})
	}
}

// "Aus (Bus)" is genus Aus for botanists and subgenus Bus for zoologists.
func TestCanonicalCode(t *testing.T) {
	bot := parserpool.NewPool(1, nomcode.Botanical)
	defer bot.Close()
	zoo := parserpool.NewPool(1, nomcode.Zoological)
	defer zoo.Close()

	res, ok := bot.Canonical("Aus (Bus)")
	assert.True(t, ok)
	assert.Equal(t, "Aus", res)

	res, ok = zoo.Canonical("Aus (Bus)")
	assert.True(t, ok)
	assert.Equal(t, "Bus", res)
}

func TestCanonicalConcurrent(t *testing.T) {
	pool := parserpool.NewPool(4, nomcode.Botanical)
	defer pool.Close()

	names := []string{"Homo sapiens L.", "Pan paniscus Schwarz, 1929", "Felis catus"}
	want := []string{"Homo sapiens", "Pan paniscus", "Felis catus"}

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			for i := range names {
				res, ok := pool.Canonical(names[i])
				assert.True(t, ok)
				assert.Equal(t, want[i], res)
			}
		})
	}
	wg.Wait()
}
