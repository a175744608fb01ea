package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/types"
)

func TestStore_PutGet(t *testing.T) {
	store := NewStore(time.Minute)
	defer store.Stop()

	result := &types.AnalysisResult{
		SuggestedCareerPaths: []types.CareerPath{{Name: "X"}},
	}

	id := store.Put(result)
	assert.Same(t, result, store.Get(id))
}

func TestStore_UnknownID(t *testing.T) {
	store := NewStore(time.Minute)
	defer store.Stop()

	assert.Nil(t, store.Get(uuid.New()))
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	defer store.Stop()

	id := store.Put(&types.AnalysisResult{})
	require.NotNil(t, store.Get(id))

	time.Sleep(25 * time.Millisecond)
	assert.Nil(t, store.Get(id), "expired entries are not returned")
}

func TestStore_DistinctIDs(t *testing.T) {
	store := NewStore(time.Minute)
	defer store.Stop()

	a := store.Put(&types.AnalysisResult{})
	b := store.Put(&types.AnalysisResult{})
	assert.NotEqual(t, a, b)
}
