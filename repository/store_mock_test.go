// file: repository/store_mock_test.go

package repository

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) Get(ctx context.Context, path string) (json.RawMessage, bool, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(json.RawMessage), args.Bool(1), args.Error(2)
}

func (m *mockStore) Set(ctx context.Context, path string, value interface{}) error {
	args := m.Called(ctx, path, value)
	return args.Error(0)
}

func (m *mockStore) Update(ctx context.Context, path string, partial map[string]interface{}) error {
	args := m.Called(ctx, path, partial)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *mockStore) List(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]json.RawMessage), args.Error(1)
}

func (m *mockStore) QueryByField(ctx context.Context, collection, field string, value interface{}) (map[string]json.RawMessage, error) {
	args := m.Called(ctx, collection, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]json.RawMessage), args.Error(1)
}

func (m *mockStore) GenerateUniqueKey(collection string) string {
	args := m.Called(collection)
	return args.String(0)
}
