package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStoreRepo struct {
	stores     []Store
	firstErr   error
	createErr  error
	firstCalls int
}

func (f *fakeStoreRepo) First(context.Context) (*Store, error) {
	f.firstCalls++
	if f.firstErr != nil {
		return nil, f.firstErr
	}
	if len(f.stores) == 0 {
		return nil, ErrNotFound
	}
	return &f.stores[0], nil
}

func (f *fakeStoreRepo) Create(_ context.Context, id uuid.UUID, name string) (*Store, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s := Store{ID: id, Name: name}
	f.stores = append(f.stores, s)
	return &s, nil
}

var testDefaultID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveReturnsExistingStore(t *testing.T) {
	existing := Store{ID: uuid.New(), Name: "本店"}
	repo := &fakeStoreRepo{stores: []Store{existing}}
	r := NewResolver(discardLogger(), repo, testDefaultID)

	assert.Equal(t, existing.ID, r.Resolve(context.Background()))
}

func TestResolveCreatesLazily(t *testing.T) {
	repo := &fakeStoreRepo{}
	r := NewResolver(discardLogger(), repo, testDefaultID)

	id := r.Resolve(context.Background())
	assert.Equal(t, testDefaultID, id)
	require.Len(t, repo.stores, 1)
	assert.Equal(t, DefaultName, repo.stores[0].Name)
}

func TestResolveIsIdempotent(t *testing.T) {
	existing := Store{ID: uuid.New()}
	repo := &fakeStoreRepo{stores: []Store{existing}}
	r := NewResolver(discardLogger(), repo, testDefaultID)

	first := r.Resolve(context.Background())
	second := r.Resolve(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.firstCalls, "successful lookups are cached")
}

func TestResolveAbsorbsLookupFailure(t *testing.T) {
	repo := &fakeStoreRepo{firstErr: errors.New("connection refused")}
	r := NewResolver(discardLogger(), repo, testDefaultID)

	assert.Equal(t, testDefaultID, r.Resolve(context.Background()))
}

func TestResolveAbsorbsCreateFailure(t *testing.T) {
	repo := &fakeStoreRepo{createErr: errors.New("permission denied")}
	r := NewResolver(discardLogger(), repo, testDefaultID)

	assert.Equal(t, testDefaultID, r.Resolve(context.Background()))
}
