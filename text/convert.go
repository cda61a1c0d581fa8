package text

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromOffset converts a rune offset into a document position.
func (t *Text) PosFromOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, t.Len(), mode)
	if !ok {
		return Pos{}, false
	}
	row := t.rowForOffset(off)
	return Pos{Row: row, Col: off - t.lineStarts()[row]}, true
}

// OffsetFromPos converts a document position into a rune offset.
func (t *Text) OffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if t.ClampPos(pos) != pos {
			return 0, false
		}
	case OffsetClamp:
		pos = t.ClampPos(pos)
	default:
		return 0, false
	}
	return t.LineStart(pos.Row) + pos.Col, true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}
