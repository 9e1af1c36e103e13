package system

import "encoding/binary"

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyF4 = 62

	keyPressed = 1
)

// eventLayout describes a struct input_event for a given timeval size.
type eventLayout struct {
	tvSize    int
	eventSize int
}

func newEventLayout(tvSize int) eventLayout {
	if tvSize <= 0 {
		tvSize = 16
	}
	return eventLayout{tvSize: tvSize, eventSize: tvSize + 2 + 2 + 4}
}

// containsKeyDown reports whether buf holds a key-press record for code.
// Trailing partial records are ignored.
func (l eventLayout) containsKeyDown(buf []byte, code uint16) bool {
	for off := 0; off+l.eventSize <= len(buf); off += l.eventSize {
		rec := buf[off : off+l.eventSize]
		typ := binary.LittleEndian.Uint16(rec[l.tvSize : l.tvSize+2])
		got := binary.LittleEndian.Uint16(rec[l.tvSize+2 : l.tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[l.tvSize+4 : l.tvSize+8]))
		if typ == evKey && got == code && value == keyPressed {
			return true
		}
	}
	return false
}
