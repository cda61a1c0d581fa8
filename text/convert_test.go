package text

import "testing"

func TestText_PosFromOffset(t *testing.T) {
	tx := New("ab\ncd")

	cases := []struct {
		name string
		off  int
		mode OffsetClampMode
		want Pos
		ok   bool
	}{
		{name: "bof", off: 0, mode: OffsetError, want: Pos{Row: 0, Col: 0}, ok: true},
		{name: "line-0-middle", off: 1, mode: OffsetError, want: Pos{Row: 0, Col: 1}, ok: true},
		{name: "line-0-end", off: 2, mode: OffsetError, want: Pos{Row: 0, Col: 2}, ok: true},
		{name: "newline-after", off: 3, mode: OffsetError, want: Pos{Row: 1, Col: 0}, ok: true},
		{name: "eof", off: 5, mode: OffsetError, want: Pos{Row: 1, Col: 2}, ok: true},
		{name: "below-range-error", off: -1, mode: OffsetError, ok: false},
		{name: "above-range-error", off: 6, mode: OffsetError, ok: false},
		{name: "below-range-clamp", off: -1, mode: OffsetClamp, want: Pos{Row: 0, Col: 0}, ok: true},
		{name: "above-range-clamp", off: 6, mode: OffsetClamp, want: Pos{Row: 1, Col: 2}, ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tx.PosFromOffset(tc.off, tc.mode)
			if ok != tc.ok {
				t.Fatalf("ok=%v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("pos=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestText_OffsetFromPos(t *testing.T) {
	tx := New("πb\n\ncd")

	cases := []struct {
		name string
		pos  Pos
		mode OffsetClampMode
		want int
		ok   bool
	}{
		{name: "bof", pos: Pos{Row: 0, Col: 0}, mode: OffsetError, want: 0, ok: true},
		{name: "multibyte-rune-counts-once", pos: Pos{Row: 0, Col: 1}, mode: OffsetError, want: 1, ok: true},
		{name: "empty-line", pos: Pos{Row: 1, Col: 0}, mode: OffsetError, want: 3, ok: true},
		{name: "eof", pos: Pos{Row: 2, Col: 2}, mode: OffsetError, want: 6, ok: true},
		{name: "col-past-end-error", pos: Pos{Row: 1, Col: 1}, mode: OffsetError, ok: false},
		{name: "col-past-end-clamp", pos: Pos{Row: 1, Col: 1}, mode: OffsetClamp, want: 3, ok: true},
		{name: "row-past-end-clamp", pos: Pos{Row: 9, Col: 0}, mode: OffsetClamp, want: 4, ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tx.OffsetFromPos(tc.pos, tc.mode)
			if ok != tc.ok {
				t.Fatalf("ok=%v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("offset=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestText_OffsetPosRoundTrip(t *testing.T) {
	tx := New("héllo\nwörld\n\n!")
	for off := 0; off <= tx.Len(); off++ {
		p, ok := tx.PosFromOffset(off, OffsetError)
		if !ok {
			t.Fatalf("PosFromOffset(%d) failed", off)
		}
		back, ok := tx.OffsetFromPos(p, OffsetError)
		if !ok || back != off {
			t.Fatalf("round trip %d -> %v -> %d (ok=%v)", off, p, back, ok)
		}
	}
}
