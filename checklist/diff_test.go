package checklist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_DoublesOccurrenceAccounting(t *testing.T) {
	original := Lists{Doubles: []Item{3, 3, 7}}
	current := Lists{Doubles: []Item{3, 7, 7}}

	got := Render(original, current, "ts").Doubles()

	want := []Element{
		{List: ListDoubles, Value: 3, Status: StatusUnchanged},
		{List: ListDoubles, Value: 3, Status: StatusRemoved},
		{List: ListDoubles, Value: 7, Status: StatusUnchanged},
		{List: ListDoubles, Value: 7, Status: StatusAdded},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render() doubles mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_MissingPresence(t *testing.T) {
	original := Lists{Missing: []Item{1, 2, 3}}
	current := Lists{Missing: []Item{1, 3, 10}}

	got := Render(original, current, "ts").Missing()

	want := []Element{
		{List: ListMissing, Value: 1, Status: StatusUnchanged},
		{List: ListMissing, Value: 2, Status: StatusRemoved},
		{List: ListMissing, Value: 3, Status: StatusUnchanged},
		{List: ListMissing, Value: 10, Status: StatusAdded},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render() missing mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_MissingBeforeDoubles(t *testing.T) {
	preview := Render(
		Lists{Missing: []Item{4}, Doubles: []Item{8}},
		Lists{Missing: []Item{}, Doubles: []Item{8, 9}},
		"18/10/2026, 12:00:00",
	)

	want := Preview{
		Elements: []Element{
			{List: ListMissing, Value: 4, Status: StatusRemoved},
			{List: ListDoubles, Value: 8, Status: StatusUnchanged},
			{List: ListDoubles, Value: 9, Status: StatusAdded},
		},
		Timestamp: "18/10/2026, 12:00:00",
	}
	if diff := cmp.Diff(want, preview); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Summary{Unchanged: 1, Removed: 1, Added: 1}, preview.Summary())
}

func TestRender_AllRemovedDoubles(t *testing.T) {
	got := Render(Lists{Doubles: []Item{5, 5, 5}}, Lists{Doubles: []Item{5}}, "").Doubles()

	require.Len(t, got, 3)
	assert.Equal(t, StatusUnchanged, got[0].Status)
	assert.Equal(t, StatusRemoved, got[1].Status)
	assert.Equal(t, StatusRemoved, got[2].Status)
}

func TestRender_UnchangedStore(t *testing.T) {
	lists := Lists{Missing: []Item{1, 2}, Doubles: []Item{6, 6}}

	preview := Render(lists, lists.Clone(), "")

	assert.Equal(t, Summary{Unchanged: 4}, preview.Summary())
}

func TestStore_PreviewTracksOperations(t *testing.T) {
	s := newLoadedStore(t, Lists{Missing: []Item{1, 2}, Doubles: []Item{3, 3, 7}})

	s.RemoveMissing(2)
	require.NoError(t, s.RemoveDoubles([]Item{3}))
	require.NoError(t, s.AddDoubles([]Item{7}))

	preview := s.Preview()
	want := []Element{
		{List: ListMissing, Value: 1, Status: StatusUnchanged},
		{List: ListMissing, Value: 2, Status: StatusRemoved},
		{List: ListDoubles, Value: 3, Status: StatusUnchanged},
		{List: ListDoubles, Value: 3, Status: StatusRemoved},
		{List: ListDoubles, Value: 7, Status: StatusUnchanged},
		{List: ListDoubles, Value: 7, Status: StatusAdded},
	}
	if diff := cmp.Diff(want, preview.Elements); diff != "" {
		t.Errorf("Preview() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "18/10/2026, 12:30:00", preview.Timestamp)
}

func TestRender_AddedDoublesAscending(t *testing.T) {
	original := Lists{Doubles: []Item{5}}
	current := Lists{Doubles: []Item{9, 2, 9, 5}}

	got := Render(original, current, "ts").Doubles()

	want := []Element{
		{List: ListDoubles, Value: 5, Status: StatusUnchanged},
		{List: ListDoubles, Value: 2, Status: StatusAdded},
		{List: ListDoubles, Value: 9, Status: StatusAdded},
		{List: ListDoubles, Value: 9, Status: StatusAdded},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render() doubles mismatch (-want +got):\n%s", diff)
	}
}
