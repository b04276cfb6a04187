package fieldalias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	row := Row{
		"hall_id":  "7",
		"name":     "",
		"title":    "Большой зал",
		"location": "null",
		"address":  "ул. Ленина, 1",
	}

	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{name: "first present", candidates: []string{"hall_id", "id"}, want: "7"},
		{name: "skips empty", candidates: []string{"name", "title"}, want: "Большой зал"},
		{name: "skips null literal", candidates: []string{"location", "address"}, want: "ул. Ленина, 1"},
		{name: "nothing matches", candidates: []string{"missing", "absent"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, First(row, tt.candidates...))
		})
	}
}

func TestFirstInt64(t *testing.T) {
	row := Row{"slot_id": "3", "bad": "abc"}

	id, ok := FirstInt64(row, "slot_id")
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)

	_, ok = FirstInt64(row, "bad")
	assert.False(t, ok)

	_, ok = FirstInt64(row, "missing")
	assert.False(t, ok)
}
