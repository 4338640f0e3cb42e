package monitor

import (
	"image/color"

	"tinygo.org/x/drivers"

	"corekernel/hal"
)

// surface adapts a hal.Framebuffer to tinygo.org/x/drivers.Displayer so
// both tinyfont glyphs and a tinyterm.Terminal can draw onto the same
// pixels the monitor also paints priority bars on directly. Adapted from
// the teacher's terminal-service framebuffer adapter; unlike that
// version this one is used for two purposes at once (scrolling text and
// direct rectangle bars), not just a VT100 console.
type surface struct {
	fb hal.Framebuffer
}

func newSurface(fb hal.Framebuffer) *surface {
	return &surface{fb: fb}
}

func (s *surface) Size() (x, y int16) {
	if s.fb == nil {
		return 0, 0
	}
	return int16(s.fb.Width()), int16(s.fb.Height())
}

func (s *surface) SetPixel(x, y int16, c color.RGBA) {
	if s.fb == nil || s.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := s.fb.Buffer()
	if buf == nil {
		return
	}
	w, h := s.fb.Width(), s.fb.Height()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}
	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*s.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (s *surface) Display() error {
	if s.fb == nil {
		return nil
	}
	return s.fb.Present()
}

func (s *surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if s.fb == nil || s.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := s.fb.Buffer()
	if buf == nil {
		return nil
	}
	w, h := s.fb.Width(), s.fb.Height()
	x0, y0 := clampInt(int(x), 0, w), clampInt(int(y), 0, h)
	x1, y1 := clampInt(int(x)+int(width), 0, w), clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	pixel := rgb565From888(c.R, c.G, c.B)
	lo, hi := byte(pixel), byte(pixel>>8)
	stride := s.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off], buf[off+1] = lo, hi
		}
	}
	return nil
}

func (s *surface) ScrollUp(lines int16, bg color.RGBA) error {
	if s.fb == nil || s.fb.Format() != hal.PixelFormatRGB565 || lines <= 0 {
		return nil
	}
	buf := s.fb.Buffer()
	if buf == nil {
		return nil
	}
	w, h := s.fb.Width(), s.fb.Height()
	if w <= 0 || h <= 0 {
		return nil
	}
	n := int(lines)
	if n >= h {
		return s.FillRectangle(0, 0, int16(w), int16(h), bg)
	}
	stride := s.fb.StrideBytes()
	dstLen := (h - n) * stride
	srcStart := n * stride
	if dstLen > len(buf) {
		dstLen = len(buf)
	}
	if srcStart > len(buf) {
		return s.FillRectangle(0, 0, int16(w), int16(h), bg)
	}
	srcEnd := srcStart + dstLen
	if srcEnd > len(buf) {
		srcEnd = len(buf)
		dstLen = srcEnd - srcStart
	}
	copy(buf[:dstLen], buf[srcStart:srcEnd])
	return s.FillRectangle(0, int16(h-n), int16(w), int16(n), bg)
}

func (s *surface) SetScroll(line int16) {}

func (s *surface) SetRotation(rotation drivers.Rotation) error { return nil }

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
