// Copyright (c) 2020 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package framing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/thriftgen/wire"
)

func sampleMessage() Message {
	return Message{
		Envelope: wire.ThriftMessage{Name: "hello_name", Type: wire.Call, Seq: 1},
		Body: wire.NewValueStruct(wire.Struct{Fields: []wire.Field{
			{ID: 1, Value: wire.NewValueString("keen")},
		}}),
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	msg := sampleMessage()
	raw, err := Encode(msg)
	require.NoError(t, err)

	got, consumed, ready, err := Decode(raw)
	require.NoError(t, err)
	require.True(t, ready)
	assert.Equal(t, len(raw), consumed)
	assert.Equal(t, msg.Envelope, got.Envelope)
	assert.Equal(t, msg.Body, got.Body)
}

func TestEncodeRejectsEmptyName(t *testing.T) {
	_, err := Encode(Message{})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

// Scenario 5 of spec.md §8: framing on fragment.
func TestReassemblyBufferFragmentThenComplete(t *testing.T) {
	msg := sampleMessage()
	raw, err := Encode(msg)
	require.NoError(t, err)
	require.Greater(t, len(raw), 3)

	var b ReassemblyBuffer
	b.Append(raw[:3])
	_, ready, err := b.Next()
	require.NoError(t, err)
	assert.False(t, ready)
	assert.Equal(t, 3, b.Len())

	b.Append(raw[3:])
	got, ready, err := b.Next()
	require.NoError(t, err)
	require.True(t, ready)
	assert.Equal(t, msg.Envelope, got.Envelope)
	assert.Equal(t, 0, b.Len())
}

func TestReassemblyBufferHandlesBackToBackMessages(t *testing.T) {
	msg := sampleMessage()
	raw, err := Encode(msg)
	require.NoError(t, err)

	var b ReassemblyBuffer
	b.Append(raw)
	b.Append(raw)

	first, ready, err := b.Next()
	require.NoError(t, err)
	require.True(t, ready)
	assert.Equal(t, msg.Envelope, first.Envelope)
	assert.Equal(t, len(raw), b.Len())

	second, ready, err := b.Next()
	require.NoError(t, err)
	require.True(t, ready)
	assert.Equal(t, msg.Envelope, second.Envelope)
	assert.Equal(t, 0, b.Len())
}
