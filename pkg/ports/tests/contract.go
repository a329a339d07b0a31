package tests

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/dectab/pkg/domain"
	"github.com/aretw0/dectab/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TableStoreContractTest is a reusable test suite that verifies if an adapter complies with ports.TableStore.
func TableStoreContractTest(t *testing.T, store ports.TableStore) {
	t.Helper()
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405")

	newTable := func(id string) *domain.StoredTable {
		return &domain.StoredTable{
			ID:     id,
			Source: "┌─┐\n│ │\n└─┘",
			Table: &domain.DecisionTable{
				InformationItemName: "Discount",
				HitPolicy:           domain.HitPolicyCollectSum,
				Aggregation:         domain.AggregatorSum,
				Orientation:         domain.OrientationRuleAsRow,
				InputClauses:        []domain.InputClause{{InputExpression: "Customer", AllowedValues: `"a","b"`}},
				OutputClauses:       []domain.OutputClause{{}},
				Rules: []domain.Rule{
					{InputEntries: []string{`"a"`}, OutputEntries: []string{"0.05"}},
				},
			},
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		id := prefix + "-save"
		table := newTable(id)
		require.NoError(t, store.Save(ctx, table))
		defer func() { _ = store.Delete(ctx, id) }()

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, table.ID, loaded.ID)
		assert.Equal(t, table.Source, loaded.Source)
		assert.True(t, table.CreatedAt.Equal(loaded.CreatedAt))
		assert.Equal(t, table.Table, loaded.Table)
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		id := prefix + "-copy"
		table := newTable(id)
		require.NoError(t, store.Save(ctx, table))
		defer func() { _ = store.Delete(ctx, id) }()

		table.Table.Rules[0].OutputEntries[0] = "mutated"
		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		loaded.Table.InformationItemName = "mutated"

		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "0.05", again.Table.Rules[0].OutputEntries[0])
		assert.Equal(t, "Discount", again.Table.InformationItemName)
	})

	t.Run("Save overwrites", func(t *testing.T) {
		id := prefix + "-overwrite"
		require.NoError(t, store.Save(ctx, newTable(id)))
		defer func() { _ = store.Delete(ctx, id) }()

		updated := newTable(id)
		updated.Table.HitPolicy = domain.HitPolicyFirst
		updated.Table.Aggregation = ""
		require.NoError(t, store.Save(ctx, updated))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.HitPolicyFirst, loaded.Table.HitPolicy)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, prefix+"-missing")
		assert.ErrorIs(t, err, domain.ErrTableNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		id := prefix + "-delete"
		require.NoError(t, store.Save(ctx, newTable(id)))

		require.NoError(t, store.Delete(ctx, id))
		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrTableNotFound, "Load after Delete should return ErrTableNotFound")

		assert.ErrorIs(t, store.Delete(ctx, id), domain.ErrTableNotFound)
	})

	t.Run("List", func(t *testing.T) {
		id1 := prefix + "-list-1"
		id2 := prefix + "-list-2"
		require.NoError(t, store.Save(ctx, newTable(id2)))
		require.NoError(t, store.Save(ctx, newTable(id1)))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
		assert.IsNonDecreasing(t, ids)
	})

	t.Run("Rejects invalid", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, nil), domain.ErrInvalidTable)
		assert.ErrorIs(t, store.Save(ctx, &domain.StoredTable{Table: &domain.DecisionTable{}}), domain.ErrInvalidTable)
		assert.ErrorIs(t, store.Save(ctx, &domain.StoredTable{ID: prefix + "-no-table"}), domain.ErrInvalidTable)
	})
}
