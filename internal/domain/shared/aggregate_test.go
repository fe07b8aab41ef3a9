package shared

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseAggregateRoot(t *testing.T) {
	root := NewBaseAggregateRoot()
	assert.NotEqual(t, uuid.Nil, root.ID)
	assert.Equal(t, 1, root.GetVersion())

	created := root.UpdatedAt
	root.IncrementVersion()
	assert.Equal(t, 2, root.Version)
	assert.False(t, root.UpdatedAt.Before(created))

	evt := NewBaseDomainEvent("EntryLogged", "Entry", root.ID, uuid.New())
	root.AddDomainEvent(&evt)
	require.Len(t, root.GetDomainEvents(), 1)

	pulled := root.PullDomainEvents()
	require.Len(t, pulled, 1)
	assert.Equal(t, "EntryLogged", pulled[0].EventType())
	assert.Empty(t, root.GetDomainEvents())
	assert.Empty(t, root.PullDomainEvents())
}
