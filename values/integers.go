package values

import (
	"encoding/binary"
	"fmt"

	"github.com/tlvkit/docsis"
)

func uintWidth(kind docsis.ValueKind) int {
	switch kind {
	case docsis.KindUint8:
		return 1
	case docsis.KindUint16:
		return 2
	case docsis.KindUint32:
		return 4
	case docsis.KindUint64:
		return 8
	default:
		return 0
	}
}

func intWidth(kind docsis.ValueKind) int {
	switch kind {
	case docsis.KindInt8:
		return 1
	case docsis.KindInt16:
		return 2
	case docsis.KindInt32:
		return 4
	default:
		return 0
	}
}

func readUint(raw []byte) uint64 {
	var buf [8]byte
	copy(buf[8-len(raw):], raw)
	return binary.BigEndian.Uint64(buf[:])
}

func writeUint(v uint64, width int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append([]byte(nil), buf[8-width:]...)
}

func uintToHuman(kind docsis.ValueKind, raw []byte) (any, error) {
	width := uintWidth(kind)
	if len(raw) != width {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: width, ActualWidth: len(raw)}
	}
	v := readUint(raw)
	switch kind {
	case docsis.KindUint8:
		return uint8(v), nil
	case docsis.KindUint16:
		return uint16(v), nil
	case docsis.KindUint32:
		return uint32(v), nil
	default:
		return v, nil
	}
}

func uintFromHuman(kind docsis.ValueKind, human any) ([]byte, error) {
	width := uintWidth(kind)
	v, err := toUint64(human)
	if err != nil {
		return nil, &docsis.HumanFormParseError{Kind: kind, Input: fmt.Sprint(human)}
	}
	return writeUint(v, width), nil
}

func intToHuman(kind docsis.ValueKind, raw []byte) (any, error) {
	width := intWidth(kind)
	if len(raw) != width {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: width, ActualWidth: len(raw)}
	}
	u := readUint(raw)
	shift := uint(64 - 8*width)
	signed := int64(u<<shift) >> shift
	switch kind {
	case docsis.KindInt8:
		return int8(signed), nil
	case docsis.KindInt16:
		return int16(signed), nil
	default:
		return int32(signed), nil
	}
}

func intFromHuman(kind docsis.ValueKind, human any) ([]byte, error) {
	width := intWidth(kind)
	v, err := toInt64(human)
	if err != nil {
		return nil, &docsis.HumanFormParseError{Kind: kind, Input: fmt.Sprint(human)}
	}
	return writeUint(uint64(v)&widthMask(width), width), nil
}

func widthMask(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return (uint64(1) << (8 * width)) - 1
}
