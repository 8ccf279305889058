package utils

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxVarBytes bounds the length prefix accepted by ReadVarBytes.
const MaxVarBytes = 1 << 20

// ErrVarBytesTooLong is returned when a length prefix is negative or exceeds MaxVarBytes.
var ErrVarBytesTooLong = errors.New("varbytes length out of range")

type readByte struct {
	in   io.Reader
	read int
}

func (s *readByte) ReadByte() (byte, error) {
	var data [1]byte
	if _, err := io.ReadFull(s.in, data[:]); err != nil {
		return 0, err
	}
	s.read++
	return data[0], nil
}

// ReadVarInt reads a zig-zag varint and reports how many bytes it consumed.
func ReadVarInt(sr io.Reader) (num int64, n int64, err error) {
	rb := &readByte{in: sr}
	num, err = binary.ReadVarint(rb)
	return num, int64(rb.read), err
}

// ReadVarBytes reads a varint length followed by that many bytes.
func ReadVarBytes(r io.Reader) (data []byte, varIntLen int, err error) {
	num, n, err := ReadVarInt(r)
	if err != nil {
		return nil, 0, err
	}
	varIntLen = int(n)
	if num < 0 || num > MaxVarBytes {
		return nil, varIntLen, fmt.Errorf("%w: %d", ErrVarBytesTooLong, num)
	}
	data = make([]byte, num)
	if _, err = io.ReadFull(r, data); err != nil {
		return nil, varIntLen, err
	}
	return data, varIntLen, nil
}

// WriteVarBytes writes len(data) as a varint followed by data.
func WriteVarBytes(w io.Writer, data []byte) error {
	if len(data) > MaxVarBytes {
		return fmt.Errorf("%w: %d", ErrVarBytesTooLong, len(data))
	}
	if err := WriteVarInt(w, int64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

func WriteVarInt(w io.Writer, num int64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutVarint(buf[:], num)
	_, err := w.Write(buf[:n])
	return err
}
