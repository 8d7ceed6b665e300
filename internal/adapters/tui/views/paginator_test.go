package views

import "testing"

func TestPaginator_CursorMovement(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if p.CursorUp() {
		t.Error("CursorUp() at top = true, expected false")
	}
	for i := 0; i < 3; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 3 {
		t.Errorf("Cursor() = %d, expected 3", p.Cursor())
	}
	if p.CurrentPage() != 2 {
		t.Errorf("CurrentPage() = %d, expected 2", p.CurrentPage())
	}
	start, end := p.VisibleRange()
	if start != 3 || end != 6 {
		t.Errorf("VisibleRange() = %d, %d, expected 3, 6", start, end)
	}
}

func TestPaginator_Pages(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		total    int
		expected int
	}{
		{"empty", 5, 0, 1},
		{"exact", 5, 10, 2},
		{"remainder", 5, 11, 3},
		{"invalid size", 0, 25, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginator(tt.pageSize)
			p.SetTotal(tt.total)
			if got := p.TotalPages(); got != tt.expected {
				t.Errorf("TotalPages() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestPaginator_NextPrevPage(t *testing.T) {
	p := NewPaginator(4)
	p.SetTotal(9)

	if !p.NextPage() || !p.NextPage() {
		t.Fatal("NextPage() failed before the last page")
	}
	if p.NextPage() {
		t.Error("NextPage() on last page = true, expected false")
	}
	start, end := p.VisibleRange()
	if start != 8 || end != 9 {
		t.Errorf("VisibleRange() = %d, %d, expected 8, 9", start, end)
	}

	p.PrevPage()
	if p.Cursor() != 4 {
		t.Errorf("Cursor() after PrevPage = %d, expected 4", p.Cursor())
	}
}

func TestPaginator_ShrinkKeepsCursorVisible(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(20)
	for i := 0; i < 12; i++ {
		p.CursorDown()
	}

	p.SetPageSize(5)
	start, end := p.VisibleRange()
	if p.Cursor() < start || p.Cursor() >= end {
		t.Errorf("cursor %d outside [%d, %d)", p.Cursor(), start, end)
	}

	p.SetTotal(3)
	if p.Cursor() != 2 {
		t.Errorf("Cursor() after shrinking total = %d, expected 2", p.Cursor())
	}
}
