package core

import (
	"testing"
)

func TestScreenSetColored(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want ScreenCell
	}{
		{"inside", 3, 2, ScreenCell{Rune: '8', Color: ColorYellow}},
		{"top left", 0, 0, ScreenCell{Rune: '8', Color: ColorYellow}},
		{"bottom right", 9, 4, ScreenCell{Rune: '8', Color: ColorYellow}},
		{"left of screen", -1, 0, ScreenCell{Rune: ' '}},
		{"right of screen", 10, 0, ScreenCell{Rune: ' '}},
		{"below screen", 0, 5, ScreenCell{Rune: ' '}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 5)
			s.SetColored(tt.x, tt.y, '8', ColorYellow)
			if got := s.GetCell(tt.x, tt.y); got != tt.want {
				t.Errorf("GetCell(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestScreenOverwriteResetsColor(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(2, 1, "512", ColorGreen)

	// Overlays blank tiles with DrawRect and must not inherit their color
	s.DrawRect(NewRect(0, 0, 10, 3), ' ')
	for x := range 10 {
		if cell := s.GetCell(x, 1); cell != (ScreenCell{Rune: ' ', Color: ColorDefault}) {
			t.Fatalf("GetCell(%d, 1) = %+v after DrawRect, want uncolored space", x, cell)
		}
	}

	s.DrawTextColored(0, 0, "2048", ColorCyan)
	s.Clear()
	if cell := s.GetCell(0, 0); cell.Color != ColorDefault || cell.Rune != ' ' {
		t.Errorf("after Clear GetCell(0, 0) = %+v", cell)
	}
}

func TestScreenDrawTextColoredClips(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColored(3, 0, "1024", ColorBrightCyan)

	want := "   102"
	if got := s.Row(0); got != want {
		t.Errorf("Row(0) = %q, want %q", got, want)
	}
	for x := 3; x < 6; x++ {
		if c := s.GetCell(x, 0).Color; c != ColorBrightCyan {
			t.Errorf("GetCell(%d, 0).Color = %v, want %v", x, c, ColorBrightCyan)
		}
	}
	if c := s.GetCell(2, 0).Color; c != ColorDefault {
		t.Errorf("cell before the text colored %v", c)
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "┌─┐")

	if got, want := s.Row(0), "    ┌─┐    "; got != want {
		t.Errorf("Row(0) = %q, want %q", got, want)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	want := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestScreenResizeKeepsColors(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawTextColored(0, 0, "16", ColorOrange)
	s.DrawTextColored(0, 3, "32", ColorBrightRed)

	s.Resize(5, 2)
	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("after Resize dims = %dx%d, want 5x2", s.Width(), s.Height())
	}
	if cell := s.GetCell(1, 0); cell != (ScreenCell{Rune: '6', Color: ColorOrange}) {
		t.Errorf("GetCell(1, 0) = %+v, want orange 6", cell)
	}

	s.Resize(10, 4)
	if cell := s.GetCell(0, 3); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("row dropped by shrinking came back: %+v", cell)
	}
	if s.Row(0)[:2] != "16" {
		t.Errorf("Row(0) = %q, want prefix 16", s.Row(0))
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		c      Color
		name   string
		bright bool
	}{
		{ColorDefault, "default", false},
		{ColorGray, "gray", false},
		{ColorOrange, "orange", false},
		{ColorBrightRed, "bright-red", true},
		{ColorBrightWhite, "bright-white", true},
		{Color(99), "Color(99)", false},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.name {
			t.Errorf("Color(%d).String() = %q, want %q", uint8(tt.c), got, tt.name)
		}
		if got := tt.c.Bright(); got != tt.bright {
			t.Errorf("%s.Bright() = %v, want %v", tt.name, got, tt.bright)
		}
	}
}
