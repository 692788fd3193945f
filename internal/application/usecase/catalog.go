package usecase

import (
	"sort"

	"clipshelf/internal/domain/dto"
)

// Viewport width tiers and the page sizes they map to.
const (
	breakpointNarrow = 640
	breakpointMedium = 1024

	pageSizeNarrow = 1
	pageSizeMedium = 2
	pageSizeWide   = 4
)

// PageSizeForWidth maps a viewport width to its page size tier.
func PageSizeForWidth(width int) int {
	switch {
	case width < breakpointNarrow:
		return pageSizeNarrow
	case width < breakpointMedium:
		return pageSizeMedium
	default:
		return pageSizeWide
	}
}

// CatalogView is a windowed pagination view over an ordered collection of
// hydrated content items. It is a pure synchronous state machine over
// {orderedItems, pageSize, currentOffset}: the visible window is always
// items[offset : offset+pageSize) clamped to bounds, and never empty while
// items exist. A view belongs to one session and must not be shared.
type CatalogView struct {
	items    []dto.ContentView
	pageSize int
	offset   int
}

func NewCatalogView(pageSize int) *CatalogView {
	if pageSize < 1 {
		pageSize = 1
	}

	return &CatalogView{pageSize: pageSize}
}

// Refresh re-derives the ordered collection from scratch: sort by creation
// time descending, keep the numeric offset, reclamp. The window may visibly
// shift when the collection shrank.
func (v *CatalogView) Refresh(items []dto.ContentView) {
	v.items = make([]dto.ContentView, len(items))
	copy(v.items, items)

	sort.Slice(v.items, func(i, j int) bool {
		return v.items[i].CreatedAt.After(v.items[j].CreatedAt)
	})

	v.clampOffset()
}

// Resize recomputes the page size for the viewport width and clamps the
// offset back onto a valid window start.
func (v *CatalogView) Resize(width int) {
	v.pageSize = PageSizeForWidth(width)
	v.snapOffset()
	v.clampOffset()
}

// Advance moves one page forward, wrapping to the start past the end.
// Carousel semantics: there is no terminal last page.
func (v *CatalogView) Advance() {
	v.offset += v.pageSize
	if v.offset >= len(v.items) {
		v.offset = 0
	}
}

// Retreat moves one page back, wrapping to the last window before the start.
func (v *CatalogView) Retreat() {
	v.offset -= v.pageSize
	if v.offset < 0 {
		v.offset = max(0, len(v.items)-v.pageSize)
	}
}

// JumpTo selects page n, clamped to the final partial window and never
// negative.
func (v *CatalogView) JumpTo(n int) {
	if n < 0 {
		n = 0
	}

	v.offset = min(n*v.pageSize, max(0, len(v.items)-v.pageSize))
}

// Window returns the currently visible slice.
func (v *CatalogView) Window() []dto.ContentView {
	if len(v.items) == 0 {
		return nil
	}

	end := min(v.offset+v.pageSize, len(v.items))

	return v.items[v.offset:end]
}

func (v *CatalogView) PageSize() int {
	return v.pageSize
}

func (v *CatalogView) Offset() int {
	return v.offset
}

func (v *CatalogView) Len() int {
	return len(v.items)
}

// snapOffset realigns the offset to a multiple of the page size after the
// page size changed.
func (v *CatalogView) snapOffset() {
	v.offset = (v.offset / v.pageSize) * v.pageSize
}

func (v *CatalogView) clampOffset() {
	if v.offset < 0 {
		v.offset = 0
	}
	if v.offset >= len(v.items) {
		v.offset = max(0, len(v.items)-v.pageSize)
		v.snapOffset()
	}
}
