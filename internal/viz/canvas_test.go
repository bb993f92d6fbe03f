package viz

import "testing"

func litCells(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				n++
			}
		}
	}
	return n
}

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(5, 5)
	if litCells(c) != 1 {
		t.Errorf("expected 1 lit cell, got %d", litCells(c))
	}

	c.Clear()
	if litCells(c) != 0 {
		t.Errorf("expected empty canvas after clear, got %d lit cells", litCells(c))
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(-1, 5)
	c.Set(5, -1)
	c.Set(1000, 5)
	c.Set(5, 1000)

	if litCells(c) != 0 {
		t.Errorf("out-of-bounds set lit %d cells", litCells(c))
	}
}

func TestCanvasDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(40, 20)

	c.DrawLine(0, 0, 30, 50)

	if c.Grid[0][0] == 0x2800 {
		t.Error("line start not lit")
	}
	// (30, 50) is cell (15, 12)
	if c.Grid[12][15] == 0x2800 {
		t.Error("line end not lit")
	}
}

func TestCanvasDrawCircle(t *testing.T) {
	c := NewCanvas(40, 20)

	c.DrawCircle(40, 40, 10)

	// center stays dark, points near the radius are lit
	if c.Grid[10][20] != 0x2800 {
		t.Error("circle center should not be lit")
	}
	if litCells(c) == 0 {
		t.Error("circle drew nothing")
	}
	// rightmost point (50, 40) lands in cell (25, 10)
	if c.Grid[10][25] == 0x2800 {
		t.Error("rightmost circle point not lit")
	}
}
