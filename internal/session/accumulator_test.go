package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDate = "2025-06-01"
	testHall = int64(1)
)

var allFree = []int64{1, 2, 3, 4}

func TestAddSelection(t *testing.T) {
	acc := NewAccumulator()

	require.NoError(t, acc.AddSelection(testDate, testHall, []int64{1, 2}, false))

	entries := acc.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, []int64{1, 2}, entries[0].SlotIDs)
	assert.False(t, entries[0].IsFullDay)

	// Повторный выбор по той же дате заменяет, а не дублирует
	require.NoError(t, acc.AddSelection(testDate, testHall, []int64{3}, false))
	entries = acc.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, []int64{3}, entries[0].SlotIDs)
}

func TestAddSelectionEmptyIsError(t *testing.T) {
	acc := NewAccumulator()
	assert.ErrorIs(t, acc.AddSelection(testDate, testHall, nil, false), ErrEmptySelection)
}

func TestToggleSlotInvolution(t *testing.T) {
	// Двойное переключение свободного слота возвращает исходное состояние
	acc := NewAccumulator()

	acc.ToggleSlot(testDate, testHall, 2, allFree)
	entries := acc.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, []int64{2}, entries[0].SlotIDs)

	acc.ToggleSlot(testDate, testHall, 2, allFree)
	assert.Empty(t, acc.Entries())
}

func TestToggleSlotOccupiedIsNoOp(t *testing.T) {
	acc := NewAccumulator()

	acc.ToggleSlot(testDate, testHall, 9, allFree)
	assert.Empty(t, acc.Entries())
}

func TestToggleSlotAutoPromotesToFullDay(t *testing.T) {
	free := []int64{1, 2}
	acc := NewAccumulator()

	acc.ToggleSlot(testDate, testHall, 1, free)
	entries := acc.Entries()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsFullDay)

	// Выбраны все свободные - выбор повышается до "весь день"
	acc.ToggleSlot(testDate, testHall, 2, free)
	entries = acc.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsFullDay)
}

func TestToggleSlotOccupiedKeepsFullDay(t *testing.T) {
	free := []int64{1, 2}
	acc := NewAccumulator()
	acc.ToggleFullDay(testDate, testHall, true, free)

	// Занятый слот не переключается и в режиме "весь день":
	// режим и набор слотов остаются без изменений
	acc.ToggleSlot(testDate, testHall, 9, free)

	entries := acc.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsFullDay)
	assert.Equal(t, []int64{1, 2}, entries[0].SlotIDs)
	assert.Equal(t, SelectionPartial, acc.State(testDate, testHall, 4))
}

func TestToggleSlotDemotesFullDay(t *testing.T) {
	acc := NewAccumulator()
	acc.ToggleFullDay(testDate, testHall, true, allFree)

	// Снятие одного слота: "все свободные, кроме этого", а не чистый лист
	acc.ToggleSlot(testDate, testHall, 2, allFree)

	entries := acc.Entries()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsFullDay)
	assert.Equal(t, []int64{1, 3, 4}, entries[0].SlotIDs)
}

func TestToggleFullDaySnapshotsFreeSlots(t *testing.T) {
	free := []int64{1, 3}
	acc := NewAccumulator()

	acc.ToggleFullDay(testDate, testHall, true, free)

	entries := acc.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsFullDay)
	// Снимок на момент вызова, не живая привязка
	assert.Equal(t, []int64{1, 3}, entries[0].SlotIDs)

	acc.ToggleFullDay(testDate, testHall, false, free)
	assert.Empty(t, acc.Entries())
}

func TestStateIndeterminate(t *testing.T) {
	acc := NewAccumulator()

	// Ничего не выбрано
	assert.Equal(t, SelectionNone, acc.State(testDate, testHall, 4))

	// Часть слотов
	acc.ToggleSlot(testDate, testHall, 1, allFree)
	assert.Equal(t, SelectionPartial, acc.State(testDate, testHall, 4))

	// "Весь день" при частично занятом дне: выбраны все свободные,
	// но не все слоты каталога - indeterminate, не full
	acc.Clear()
	acc.ToggleFullDay(testDate, testHall, true, []int64{1, 2})
	assert.Equal(t, SelectionPartial, acc.State(testDate, testHall, 4))

	// "Весь день" при полностью свободном дне
	acc.Clear()
	acc.ToggleFullDay(testDate, testHall, true, allFree)
	assert.Equal(t, SelectionFull, acc.State(testDate, testHall, 4))
}

func TestEntriesReturnsCopy(t *testing.T) {
	acc := NewAccumulator()
	acc.ToggleSlot(testDate, testHall, 1, allFree)

	entries := acc.Entries()
	entries[0].SlotIDs[0] = 99

	fresh := acc.Entries()
	assert.Equal(t, []int64{1}, fresh[0].SlotIDs)
}

func TestFinalize(t *testing.T) {
	acc := NewAccumulator()
	require.NoError(t, acc.AddSelection("2025-06-01", testHall, []int64{1, 2}, false))
	require.NoError(t, acc.AddSelection("2025-06-02", testHall, nil, true))

	sub, err := acc.Finalize()
	require.NoError(t, err)
	assert.Equal(t, testHall, sub.HallID)
	require.Len(t, sub.Dates, 2)
	assert.True(t, sub.IsMultiDate())
	assert.Equal(t, "1,2", sub.Dates[0].SlotList())
	assert.True(t, sub.Dates[1].IsFullDay)

	// Аккумулятор очищен после отправки
	assert.Empty(t, acc.Entries())
	_, err = acc.Finalize()
	assert.ErrorIs(t, err, ErrNothingStaged)
}

func TestFinalizeMixedHalls(t *testing.T) {
	acc := NewAccumulator()
	require.NoError(t, acc.AddSelection("2025-06-01", 1, []int64{1}, false))
	require.NoError(t, acc.AddSelection("2025-06-02", 2, []int64{1}, false))

	_, err := acc.Finalize()
	assert.ErrorIs(t, err, ErrMixedHalls)
}
