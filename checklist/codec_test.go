package checklist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CanonicalText(t *testing.T) {
	text := "Carte mancanti:\n1 -- 2 -- 3\n\nCarte doppie:\n5 -- 5 -- 8\n\nUltima modifica: 18/10/2026, 10:00:00"

	lists := Parse(text)

	assert.Equal(t, []Item{1, 2, 3}, lists.Missing)
	assert.Equal(t, []Item{5, 5, 8}, lists.Doubles)
}

func TestParse_MixedSeparators(t *testing.T) {
	text := "carte MANCANTI :  4,5; 6  7--8 -- 9\n\n  CARTE doppie:\n10;11 , 12\n"

	lists := Parse(text)

	assert.Equal(t, []Item{4, 5, 6, 7, 8, 9}, lists.Missing)
	assert.Equal(t, []Item{10, 11, 12}, lists.Doubles)
}

func TestParse_DropsMalformedTokens(t *testing.T) {
	text := "Carte mancanti:\n1 -- abc -- 0 -- 2x -- 3\n\nCarte doppie:\n-4 -- 7 -- ,, -- \n"

	lists := Parse(text)

	assert.Equal(t, []Item{1, 3}, lists.Missing)
	assert.Equal(t, []Item{7}, lists.Doubles)
}

func TestParse_MissingHeaders(t *testing.T) {
	t.Run("no headers at all", func(t *testing.T) {
		lists := Parse("1 2 3")
		assert.Empty(t, lists.Missing)
		assert.Empty(t, lists.Doubles)
	})

	t.Run("only doubles header", func(t *testing.T) {
		lists := Parse("Carte doppie:\n4 -- 4")
		assert.Empty(t, lists.Missing)
		assert.Equal(t, []Item{4, 4}, lists.Doubles)
	})

	t.Run("only missing header", func(t *testing.T) {
		lists := Parse("Carte mancanti:\n1 -- 2\n\nUltima modifica: 01/01/2026, 00:00:00")
		assert.Equal(t, []Item{1, 2}, lists.Missing)
		assert.Empty(t, lists.Doubles)
	})

	t.Run("only missing header without timestamp", func(t *testing.T) {
		lists := Parse("Carte mancanti: 4 -- 8")
		assert.Equal(t, []Item{4, 8}, lists.Missing)
		assert.Empty(t, lists.Doubles)
	})
}

func TestParse_TimestampIsNotParsedAsItems(t *testing.T) {
	text := Serialize(Lists{Missing: []Item{1}, Doubles: []Item{2}}, "18/10/2026, 14:05:09")

	lists := Parse(text)

	assert.Equal(t, []Item{1}, lists.Missing)
	assert.Equal(t, []Item{2}, lists.Doubles)
}

func TestSerialize_CanonicalLayout(t *testing.T) {
	text := Serialize(Lists{Missing: []Item{1, 2, 3}, Doubles: []Item{5}}, "18/10/2026, 14:05:09")

	expected := "Carte mancanti:\n1 -- 2 -- 3\n\nCarte doppie:\n5\n\nUltima modifica: 18/10/2026, 14:05:09"
	assert.Equal(t, expected, text)
}

func TestSerialize_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		lists Lists
	}{
		{"empty", Lists{Missing: []Item{}, Doubles: []Item{}}},
		{"missing only", Lists{Missing: []Item{3, 1, 2}, Doubles: []Item{}}},
		{"doubles with repeats", Lists{Missing: []Item{9}, Doubles: []Item{1, 1, 4, 4, 4}}},
		{"large numbers", Lists{Missing: []Item{1000, 25000}, Doubles: []Item{123456}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(Serialize(tt.lists, "01/02/2026, 03:04:05"))
			assert.True(t, tt.lists.Equal(parsed), "round trip mismatch: %v != %v", tt.lists, parsed)
		})
	}
}

func TestSerialize_RoundTripMissingSequences(t *testing.T) {
	for n := 1; n <= 50; n++ {
		missing := make([]Item, n)
		for i := range missing {
			missing[i] = Item((i*7)%53 + 1)
		}

		parsed := Parse(Serialize(Lists{Missing: missing}, ""))
		require.Equal(t, missing, parsed.Missing, "sequence of length %d", n)
	}
}

func TestParseItems(t *testing.T) {
	assert.Equal(t, []Item{2, 9}, ParseItems("2, 9"))
	assert.Equal(t, []Item{1, 2, 3}, ParseItems(" 1--2 ;3 "))
	assert.Empty(t, ParseItems(""))
	assert.Empty(t, ParseItems("  -- ,, ; "))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, time.October, 18, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "18/10/2026, 09:05:07", FormatTimestamp(ts))
}

func TestGenerate(t *testing.T) {
	lists, err := Generate(5)
	require.NoError(t, err)
	assert.Equal(t, []Item{1, 2, 3, 4, 5}, lists.Missing)
	assert.Empty(t, lists.Doubles)

	_, err = Generate(0)
	assert.ErrorIs(t, err, ErrInvalidCount)
}
