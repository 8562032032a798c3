package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTradeWith(t *testing.T) {
	mine := Lists{Missing: []Item{1, 2, 3}, Doubles: []Item{7, 7, 9}}
	theirs := Lists{Missing: []Item{7, 8}, Doubles: []Item{3, 3, 1, 5}}

	trade := TradeWith(mine, theirs)
	assert.Equal(t, []Item{1, 3}, trade.Receive)
	assert.Equal(t, []Item{7}, trade.Give)
	assert.Equal(t, 1, trade.Swaps())
}

func TestTradeWith_Nothing(t *testing.T) {
	trade := TradeWith(Lists{Missing: []Item{1}}, Lists{Doubles: []Item{2}})
	assert.Empty(t, trade.Receive)
	assert.Empty(t, trade.Give)
	assert.Equal(t, 0, trade.Swaps())
}
