/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package sasl

import (
	"encoding/binary"
	"io"

	"github.com/tim-impulsescreen/amqpnetlite/amqp"
	"github.com/tim-impulsescreen/amqpnetlite/internal/trace"
)

// Security-layer frame layout constants.
const (
	frameHeaderSize = 8
	frameDoff       = 2
	frameTypeSASL   = 1
)

// writer serializes outgoing negotiation traffic and buffers it until
// flushed. Write errors are held and reported through flush, so transport
// faults during negotiation surface through the pump's own result instead
// of a connection-level fault channel.
type writer struct {
	w   io.Writer
	buf []byte
	err amqp.ErrorHolder
}

func newWriter(w io.Writer) *writer { return &writer{w: w} }

func (w *writer) writeHeader(h ProtocolHeader) {
	b := h.Bytes()
	w.buf = append(w.buf, b[:]...)
	trace.Logger().Debug().Stringer("header", h).Msg("sasl header queued")
}

func (w *writer) writeCommand(c Command) {
	body := marshalCommand(nil, c)
	var hdr [frameHeaderSize]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(frameHeaderSize+len(body)))
	hdr[4] = frameDoff
	hdr[5] = frameTypeSASL
	w.buf = append(w.buf, hdr[:]...)
	w.buf = append(w.buf, body...)
	trace.Logger().Debug().Str("command", c.name()).Msg("sasl command queued")
}

// flush writes all buffered bytes. The first write error is sticky: once
// the transport faults no further bytes are written and every later flush
// reports the same error.
func (w *writer) flush() error {
	if err := w.err.Get(); err != nil {
		return err
	}
	for len(w.buf) > 0 {
		n, err := w.w.Write(w.buf)
		w.buf = w.buf[n:]
		if err != nil {
			w.err.Set(err)
			return err
		}
	}
	return nil
}
