package multisplit

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleLayout(t *testing.T) (*Item, map[string]Guest) {
	t.Helper()
	root := newTestRoot(t, 800, 600)
	guests := map[string]Guest{}
	var prev *Item
	for _, spec := range []struct {
		id  string
		loc Location
	}{
		{"a", LocationOnLeft},
		{"b", LocationOnRight},
		{"c", LocationOnBottom},
		{"d", LocationOnRight},
	} {
		g := newGuest(spec.id)
		guests[spec.id] = g
		item := NewItem(g)
		if prev == nil {
			root.InsertItem(item, spec.loc, DefaultSizeFair, AddingOptionNone)
		} else {
			prev.InsertItem(item, spec.loc, DefaultSizeFair, AddingOptionNone)
		}
		prev = item
	}
	root.Separators()[0].Move(37)
	requireSane(t, root)
	return root, guests
}

func TestSerialize_RoundTrip(t *testing.T) {
	root, guests := buildSampleLayout(t)

	data, err := root.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(data, guests)
	require.NoError(t, err)
	requireSane(t, restored)

	// Geometry, visibility, nesting and child order all survive.
	assert.Empty(t, cmp.Diff(root.DumpLayout(), restored.DumpLayout()))

	again, err := restored.Serialize()
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestSerialize_PlaceholdersSurvive(t *testing.T) {
	root, guests := buildSampleLayout(t)
	b := root.ItemForGuest("b")
	require.NotNil(t, b)
	root.RemoveItem(b, false)
	delete(guests, "b")

	data, err := root.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(data, guests)
	require.NoError(t, err)
	requireSane(t, restored)

	assert.Equal(t, root.CountRecursive(), restored.CountRecursive())
	assert.Equal(t, root.VisibleCountRecursive(), restored.VisibleCountRecursive())
	assert.Empty(t, cmp.Diff(root.DumpLayout(), restored.DumpLayout()))
}

func TestSerialize_MissingGuestBecomesPlaceholder(t *testing.T) {
	root, guests := buildSampleLayout(t)
	data, err := root.Serialize()
	require.NoError(t, err)

	delete(guests, "d")
	restored, err := Deserialize(data, guests)
	require.NoError(t, err)

	d := restored.ItemForGuest("d")
	assert.Nil(t, d, "unresolved guest id has no guest attached")
	assert.Equal(t, root.CountRecursive(), restored.CountRecursive(), "the item itself is kept")
}

func TestSerialize_GuestsRelinked(t *testing.T) {
	root, guests := buildSampleLayout(t)
	data, err := root.Serialize()
	require.NoError(t, err)

	fresh := map[string]Guest{}
	for id := range guests {
		fresh[id] = newGuest(id)
	}
	restored, err := Deserialize(data, fresh)
	require.NoError(t, err)

	for id, g := range fresh {
		item := restored.ItemForGuest(id)
		require.NotNil(t, item, "guest %s", id)
		assert.Equal(t, item.MapRectToRoot(item.Rect()), g.(*testGuest).geo,
			"guest %s notified of its restored geometry", id)
	}
}

func TestSerialize_SeparatorsRebuiltNotStored(t *testing.T) {
	root, guests := buildSampleLayout(t)
	data, err := root.Serialize()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	_, hasSeparators := raw["separators"]
	assert.False(t, hasSeparators)

	restored, err := Deserialize(data, guests)
	require.NoError(t, err)
	require.Len(t, restored.SeparatorsRecursive(), len(root.SeparatorsRecursive()))
	for i, sep := range restored.SeparatorsRecursive() {
		assert.Equal(t, root.SeparatorsRecursive()[i].Geometry(), sep.Geometry())
	}
}

func TestDeserialize_RejectsLeafRoot(t *testing.T) {
	_, err := Deserialize([]byte(`{"isContainer": false, "isVisible": true}`), nil)
	assert.Error(t, err)
}

func TestDeserialize_RejectsGarbage(t *testing.T) {
	_, err := Deserialize([]byte(`{"isContainer": [`), nil)
	assert.Error(t, err)
}
