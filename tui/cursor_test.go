package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_Down(t *testing.T) {
	c := Cursor{Pos: 2, ItemCount: 10}
	c.Down()
	assert.Equal(t, 3, c.Pos)
}

func TestCursor_Up(t *testing.T) {
	c := Cursor{Pos: 3, ItemCount: 10}
	c.Up()
	assert.Equal(t, 2, c.Pos)
}

func TestCursor_BoundsDown(t *testing.T) {
	c := Cursor{Pos: 9, ItemCount: 10}
	c.Down()
	assert.Equal(t, 9, c.Pos)
}

func TestCursor_BoundsUp(t *testing.T) {
	c := Cursor{Pos: 0, ItemCount: 10}
	c.Up()
	assert.Equal(t, 0, c.Pos)
}

func TestCursor_SingleItem(t *testing.T) {
	c := Cursor{ItemCount: 1}
	c.Down()
	c.Up()
	assert.Equal(t, 0, c.Pos)
}

func TestCursor_EnsureVisible(t *testing.T) {
	c := Cursor{Pos: 12, Offset: 0, VpHeight: 5, ItemCount: 20}
	c.EnsureVisible()
	assert.Equal(t, 8, c.Offset)

	c.Pos = 3
	c.EnsureVisible()
	assert.Equal(t, 3, c.Offset)
}

func TestCursor_EnsureVisible_Grow(t *testing.T) {
	c := Cursor{Pos: 9, Offset: 7, VpHeight: 3, ItemCount: 10}
	c.VpHeight = 8
	c.EnsureVisible()
	assert.Equal(t, 2, c.Offset)
}

func TestCursor_Window(t *testing.T) {
	t.Run("unknown height shows everything", func(t *testing.T) {
		c := Cursor{ItemCount: 4}
		start, end := c.Window()
		assert.Equal(t, 0, start)
		assert.Equal(t, 4, end)
	})

	t.Run("follows the cursor", func(t *testing.T) {
		c := Cursor{VpHeight: 3, ItemCount: 10}
		for range 5 {
			c.Down()
		}
		start, end := c.Window()
		assert.Equal(t, 3, start)
		assert.Equal(t, 6, end)
	})
}
