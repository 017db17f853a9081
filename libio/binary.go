package libio

import (
	"encoding/binary"
	"io"
)

// BinaryReader keeps the first error and turns every later read into a no-op,
// so a decoder can check Err once at the end.
type BinaryReader struct {
	Order binary.ByteOrder
	Src   io.Reader
	// Offset of the next byte
	Index int
	// Offset at which the last read started
	LastIndex int
	Err       error
	buf       []byte
}

func NewBinaryReader(src io.Reader) *BinaryReader {
	return &BinaryReader{Order: binary.LittleEndian, Src: src}
}

func (br *BinaryReader) Read(p []byte) (n int, err error) {
	n, err = br.Src.Read(p)
	br.LastIndex = br.Index
	br.Index += n
	return
}

func (br *BinaryReader) ReadBytes(n int) (b []byte, ok bool) {
	if br.Err != nil {
		return nil, false
	}

	if cap(br.buf) < n {
		br.buf = make([]byte, n)
	} else {
		br.buf = br.buf[:n]
	}

	nread, err := io.ReadFull(br.Src, br.buf)
	br.LastIndex = br.Index
	br.Index += nread
	if err != nil {
		br.Err = err
		return nil, false
	}
	return br.buf, true
}

// Skip discards n bytes, used for alignment padding
func (br *BinaryReader) Skip(n int) (ok bool) {
	_, ok = br.ReadBytes(n)
	return
}

func (br *BinaryReader) ReadUInt16(i *uint16) (ok bool) {
	b, ok := br.ReadBytes(2)
	if ok {
		*i = br.Order.Uint16(b)
	}
	return
}

func (br *BinaryReader) ReadUInt32(i *uint32) (ok bool) {
	b, ok := br.ReadBytes(4)
	if ok {
		*i = br.Order.Uint32(b)
	}
	return
}

func (br *BinaryReader) ReadRef(data any) (ok bool) {
	if br.Err != nil {
		return false
	}
	err := binary.Read(br.Src, br.Order, data)
	br.LastIndex = br.Index
	if err != nil {
		br.Err = err
		return false
	}
	br.Index += binary.Size(data)
	return true
}

// BinaryWriter mirrors BinaryReader: the first error sticks and is kept in Err.
type BinaryWriter struct {
	Order binary.ByteOrder
	Dst   io.Writer
	// Bytes written so far
	Index int
	Err   error
	buf   [4]byte
}

func NewBinaryWriter(dst io.Writer) *BinaryWriter {
	return &BinaryWriter{Order: binary.LittleEndian, Dst: dst}
}

func (bw *BinaryWriter) Write(p []byte) (n int, err error) {
	n, err = bw.Dst.Write(p)
	bw.Index += n
	return
}

func (bw *BinaryWriter) WriteBytes(p []byte) (ok bool) {
	if bw.Err != nil {
		return false
	}
	if _, err := bw.Write(p); err != nil {
		bw.Err = err
		return false
	}
	return true
}

func (bw *BinaryWriter) WriteUInt16(i uint16) (ok bool) {
	bw.Order.PutUint16(bw.buf[:2], i)
	return bw.WriteBytes(bw.buf[:2])
}

func (bw *BinaryWriter) WriteUInt32(i uint32) (ok bool) {
	bw.Order.PutUint32(bw.buf[:4], i)
	return bw.WriteBytes(bw.buf[:4])
}

// Pad writes n zero bytes
func (bw *BinaryWriter) Pad(n int) (ok bool) {
	for ; n > 0 && bw.Err == nil; n-- {
		bw.WriteBytes([]byte{0})
	}
	return bw.Err == nil
}

func (bw *BinaryWriter) WriteRef(data any) (ok bool) {
	if bw.Err != nil {
		return false
	}
	if err := binary.Write(bw.Dst, bw.Order, data); err != nil {
		bw.Err = err
		return false
	}
	bw.Index += binary.Size(data)
	return true
}
