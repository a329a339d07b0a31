package ports_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"testing"

	"github.com/aretw0/dectab/pkg/domain"
	contract "github.com/aretw0/dectab/pkg/ports/tests"
)

// MockStore is a map-backed TableStore that round-trips tables through JSON.
type MockStore struct {
	data map[string][]byte
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string][]byte)}
}

func (m *MockStore) Save(ctx context.Context, table *domain.StoredTable) error {
	if table == nil || table.ID == "" || table.Table == nil {
		return fmt.Errorf("%w: id and table are required", domain.ErrInvalidTable)
	}
	raw, err := json.Marshal(table)
	if err != nil {
		return err
	}
	m.data[table.ID] = raw
	return nil
}

func (m *MockStore) Load(ctx context.Context, id string) (*domain.StoredTable, error) {
	raw, ok := m.data[id]
	if !ok {
		return nil, domain.ErrTableNotFound
	}
	var table domain.StoredTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	if _, ok := m.data[id]; !ok {
		return domain.ErrTableNotFound
	}
	delete(m.data, id)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func TestTableStore_Contract(t *testing.T) {
	contract.TableStoreContractTest(t, NewMockStore())
}
