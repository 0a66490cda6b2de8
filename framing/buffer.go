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

// ReassemblyBuffer accumulates bytes appended by the network layer and
// hands complete messages to its owning connection task. Per spec.md §5,
// it is owned by exactly one per-connection task; nothing here is safe
// for concurrent use from multiple goroutines.
type ReassemblyBuffer struct {
	data []byte
}

// Append appends newly received bytes to the buffer.
func (b *ReassemblyBuffer) Append(p []byte) {
	b.data = append(b.data, p...)
}

// Len reports how many bytes are currently buffered.
func (b *ReassemblyBuffer) Len() int { return len(b.data) }

// Next attempts to decode and drain one complete message from the front
// of the buffer. If no complete message is yet available, ready is false
// and the buffer is left untouched.
func (b *ReassemblyBuffer) Next() (msg Message, ready bool, err error) {
	msg, consumed, ready, err := Decode(b.data)
	if err != nil || !ready {
		return Message{}, false, err
	}

	remaining := len(b.data) - consumed
	copy(b.data, b.data[consumed:])
	b.data = b.data[:remaining]

	return msg, true, nil
}
