package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipshelf/internal/domain/dto"
	"clipshelf/internal/domain/model"
)

func catalogItems(n int) []dto.ContentView {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	items := make([]dto.ContentView, n)
	for i := range items {
		items[i] = dto.ContentView{
			ContentItem: model.ContentItem{
				ID:        fmt.Sprintf("item-%d", i),
				Title:     fmt.Sprintf("Video %d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			},
		}
	}

	return items
}

func TestPageSizeForWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width    int
		expected int
	}{
		{0, 1},
		{639, 1},
		{640, 2},
		{1023, 2},
		{1024, 4},
		{2560, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PageSizeForWidth(tt.width), "width %d", tt.width)
	}
}

func TestRefreshSortsNewestFirst(t *testing.T) {
	t.Parallel()

	view := NewCatalogView(4)
	view.Refresh(catalogItems(5))

	window := view.Window()
	require.Len(t, window, 4)
	assert.Equal(t, "item-4", window[0].ID)
	assert.Equal(t, "item-1", window[3].ID)
}

func TestAdvanceWrapsAround(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   int
		pageSize int
	}{
		{"even split", 8, 2},
		{"partial final page", 5, 2},
		{"single page", 3, 4},
		{"page size one", 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			view := NewCatalogView(tt.pageSize)
			view.Refresh(catalogItems(tt.length))

			// Advancing once per page returns to offset 0 (full wraparound).
			steps := (tt.length + tt.pageSize - 1) / tt.pageSize
			for i := 0; i < steps; i++ {
				view.Advance()
			}
			assert.Equal(t, 0, view.Offset())
		})
	}
}

func TestRetreatFromStartWrapsToLastWindow(t *testing.T) {
	t.Parallel()

	view := NewCatalogView(2)
	view.Refresh(catalogItems(5))

	view.Retreat()
	assert.Equal(t, 3, view.Offset())
	assert.Len(t, view.Window(), 2)
}

func TestRetreatOnShortCollection(t *testing.T) {
	t.Parallel()

	view := NewCatalogView(4)
	view.Refresh(catalogItems(3))

	view.Retreat()
	assert.Equal(t, 0, view.Offset())
	assert.Len(t, view.Window(), 3)
}

func TestJumpToClamps(t *testing.T) {
	t.Parallel()

	view := NewCatalogView(2)
	view.Refresh(catalogItems(5))

	view.JumpTo(1)
	assert.Equal(t, 2, view.Offset())

	// Past the end: clamped to the final partial window, never negative.
	view.JumpTo(99)
	assert.Equal(t, 3, view.Offset())

	view.JumpTo(-1)
	assert.Equal(t, 0, view.Offset())
}

func TestResizeReclampsOffset(t *testing.T) {
	t.Parallel()

	view := NewCatalogView(4)
	view.Refresh(catalogItems(10))
	view.Advance()
	view.Advance()
	require.Equal(t, 8, view.Offset())

	// Narrower viewport: page size drops to 1, offset stays a valid start.
	view.Resize(320)
	assert.Equal(t, 1, view.PageSize())
	assert.Equal(t, 8, view.Offset())
	assert.Len(t, view.Window(), 1)

	// Wider viewport: offset snaps back onto a page boundary.
	view.Resize(1920)
	assert.Equal(t, 4, view.PageSize())
	assert.Equal(t, 8, view.Offset())
}

func TestRefreshAfterShrinkReclamps(t *testing.T) {
	t.Parallel()

	view := NewCatalogView(2)
	view.Refresh(catalogItems(10))
	view.JumpTo(4)
	require.Equal(t, 8, view.Offset())

	view.Refresh(catalogItems(3))
	assert.Equal(t, 2, view.Offset())
	assert.Len(t, view.Window(), 1)
}

func TestWindowNeverOutOfRange(t *testing.T) {
	t.Parallel()

	for _, length := range []int{0, 1, 2, 3, 5, 8, 13} {
		for _, pageSize := range []int{1, 2, 4} {
			view := NewCatalogView(pageSize)
			view.Refresh(catalogItems(length))

			for step := 0; step < length+3; step++ {
				window := view.Window()
				if length == 0 {
					assert.Empty(t, window)
				} else {
					assert.NotEmpty(t, window, "L=%d P=%d step=%d", length, pageSize, step)
					assert.LessOrEqual(t, len(window), pageSize)
				}
				assert.GreaterOrEqual(t, view.Offset(), 0)

				view.Advance()
			}
		}
	}
}

func TestEmptyCollection(t *testing.T) {
	t.Parallel()

	view := NewCatalogView(4)
	view.Refresh(nil)

	view.Advance()
	view.Retreat()
	view.JumpTo(3)

	assert.Equal(t, 0, view.Offset())
	assert.Empty(t, view.Window())
}
