package consumer

import (
	"testing"
	"time"
)

func SetStoreRetryBackoff(t *testing.T, d time.Duration) {
	prev := storeRetryBackoff
	storeRetryBackoff = d
	t.Cleanup(func() { storeRetryBackoff = prev })
}
