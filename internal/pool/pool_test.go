package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Parallel()
	p := New()

	require.NoError(t, p.Add("synergy"))
	require.NoError(t, p.Add("  deep dive  "))
	assert.Equal(t, []string{"synergy", "deep dive"}, p.Labels())
}

func TestAddRejectsEmptyLabels(t *testing.T) {
	t.Parallel()
	p := New()

	assert.ErrorIs(t, p.Add(""), ErrEmptyLabel)
	assert.ErrorIs(t, p.Add("   "), ErrEmptyLabel)
	assert.ErrorIs(t, p.Add("\t\n"), ErrEmptyLabel)
	assert.Equal(t, 0, p.Len())
}

func TestRemove(t *testing.T) {
	t.Parallel()
	p, err := FromLabels("a", "b", "c")
	require.NoError(t, err)

	require.NoError(t, p.Remove(1))
	assert.Equal(t, []string{"a", "c"}, p.Labels())

	assert.ErrorIs(t, p.Remove(2), ErrOutOfRange)
	assert.ErrorIs(t, p.Remove(-1), ErrOutOfRange)
}

func TestRemoveClearsFreeDesignation(t *testing.T) {
	t.Parallel()
	p, err := FromLabels("a", "b", "c")
	require.NoError(t, err)
	require.NoError(t, p.SetFree(1))

	require.NoError(t, p.Remove(1))
	_, ok := p.FreeIndex()
	assert.False(t, ok, "removing the designated label should clear the designation")
}

func TestRemoveShiftsFreeDesignation(t *testing.T) {
	t.Parallel()
	p, err := FromLabels("a", "b", "c")
	require.NoError(t, err)
	require.NoError(t, p.SetFree(2))

	require.NoError(t, p.Remove(0))
	label, ok := p.FreeLabel()
	require.True(t, ok)
	assert.Equal(t, "c", label, "designation should follow the label, not the index")
}

func TestSetFree(t *testing.T) {
	t.Parallel()
	p, err := FromLabels("a", "b")
	require.NoError(t, err)

	assert.ErrorIs(t, p.SetFree(5), ErrOutOfRange)
	require.NoError(t, p.SetFree(1))

	label, ok := p.FreeLabel()
	require.True(t, ok)
	assert.Equal(t, "b", label)

	p.ClearFree()
	_, ok = p.FreeLabel()
	assert.False(t, ok)
}

func TestBodyLabels(t *testing.T) {
	t.Parallel()
	p, err := FromLabels("a", "b", "c")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, p.BodyLabels(), "no designation deals everything")

	require.NoError(t, p.SetFree(1))
	assert.Equal(t, []string{"a", "c"}, p.BodyLabels())

	// only the designated occurrence is excluded, duplicates stay
	require.NoError(t, p.Add("c"))
	assert.Equal(t, []string{"a", "c", "c"}, p.BodyLabels())
}

func TestLabelsReturnsCopy(t *testing.T) {
	t.Parallel()
	p, err := FromLabels("a", "b")
	require.NoError(t, err)

	labels := p.Labels()
	labels[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, p.Labels())
}
