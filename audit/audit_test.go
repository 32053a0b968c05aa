package audit_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/prequal-engine/audit"
)

func TestLog_RecordsInOrder(t *testing.T) {
	log := audit.NewLog()
	log.Record("lo-1", "purchase_price", "400000", "425000")
	log.Record("lo-1", "rate_pct", "6.5", "6.375")

	entries := log.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "purchase_price", entries[0].Field)
	assert.Equal(t, "rate_pct", entries[1].Field)
	assert.Equal(t, "425000", entries[0].NewValue)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestLog_EntriesReturnsCopy(t *testing.T) {
	log := audit.NewLog()
	log.Record("lo-1", "rate_pct", "6.5", "6.375")

	entries := log.Entries()
	entries[0].Field = "mutated"

	assert.Equal(t, "rate_pct", log.Entries()[0].Field)
}

func TestLog_ConcurrentRecords(t *testing.T) {
	log := audit.NewLog()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Record("lo-1", "hoa_monthly", "0", "50")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, log.Len())
}
