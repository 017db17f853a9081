package libio_test

import (
	"bytes"
	"io"
	"testing"

	"shading-gl/libio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryWriterReader(t *testing.T) {
	buf := &bytes.Buffer{}
	bw := libio.NewBinaryWriter(buf)
	bw.WriteUInt32(0xc9dae18c)
	bw.WriteUInt16(7)
	bw.Pad(2)
	bw.WriteRef([]float32{1, 2, 3})
	require.NoError(t, bw.Err)
	assert.Equal(t, 4+2+2+12, bw.Index)
	assert.Equal(t, bw.Index, buf.Len())

	br := libio.NewBinaryReader(buf)
	var magic uint32
	var short uint16
	floats := make([]float32, 3)
	assert.True(t, br.ReadUInt32(&magic))
	assert.True(t, br.ReadUInt16(&short))
	assert.True(t, br.Skip(2))
	assert.True(t, br.ReadRef(floats))
	require.NoError(t, br.Err)

	assert.Equal(t, uint32(0xc9dae18c), magic)
	assert.Equal(t, uint16(7), short)
	assert.Equal(t, []float32{1, 2, 3}, floats)
	assert.Equal(t, 20, br.Index)
	assert.Equal(t, 8, br.LastIndex)
}

func TestBinaryReaderStickyError(t *testing.T) {
	br := libio.NewBinaryReader(bytes.NewReader([]byte{1, 2}))
	var v uint32
	assert.False(t, br.ReadUInt32(&v))
	assert.ErrorIs(t, br.Err, io.ErrUnexpectedEOF)

	var s uint16
	assert.False(t, br.ReadUInt16(&s), "reads after an error should fail")
	assert.Equal(t, uint16(0), s)
}
