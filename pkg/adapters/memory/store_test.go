package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/dectab/pkg/adapters/memory"
	"github.com/aretw0/dectab/pkg/domain"
	contract "github.com/aretw0/dectab/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	contract.TableStoreContractTest(t, memory.NewStore())
}

func TestMemoryStore_ConcurrentSaves(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Save(ctx, &domain.StoredTable{
				ID:    fmt.Sprintf("t%02d", i),
				Table: &domain.DecisionTable{HitPolicy: domain.HitPolicyFirst},
			})
			_, _ = store.List(ctx)
		}(i)
	}
	wg.Wait()

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 20)
	assert.Equal(t, "t00", ids[0])
}
