//go:build unit

package search_test

import (
	"testing"

	"hotel-booking/internal/domain/search"

	"github.com/stretchr/testify/assert"
)

func TestTextSearch(t *testing.T) {
	docs := []search.Document{
		{ID: 1, GuestName: "Alice Martin", BookingReference: "HRS_20250310093000_0001", SearchableText: "Alice Martin HRS_20250310093000_0001 sea view"},
		{ID: 2, GuestName: "Bob Stone", BookingReference: "HRS_20250311093000_0002", SearchableText: "Bob Stone HRS_20250311093000_0002"},
		{ID: 3, GuestName: "Alice Stone", BookingReference: "HRS_20250312093000_0003", SearchableText: "Alice Stone HRS_20250312093000_0003"},
	}

	t.Run("tokenize", func(t *testing.T) {
		assert.Equal(t, []string{"hrs", "20250310093000", "0001"}, search.Tokenize("HRS_20250310093000_0001"))
		assert.Empty(t, search.Tokenize("  -- "))
	})

	t.Run("any term matches", func(t *testing.T) {
		got := search.RankByText(docs, "stone")
		assert.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("more terms rank higher", func(t *testing.T) {
		got := search.RankByText(docs, "alice stone")
		assert.Equal(t, int64(3), got[0].ID)
		assert.Len(t, got, 3)
	})

	t.Run("reference lookup", func(t *testing.T) {
		got := search.RankByText(docs, "HRS_20250311093000_0002")
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("blank query matches nothing", func(t *testing.T) {
		assert.Empty(t, search.RankByText(docs, "   "))
	})
}
