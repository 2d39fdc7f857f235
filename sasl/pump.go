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

// maxFrameSize bounds negotiation frames. The protocol guarantees
// security-layer frames fit the 512-byte minimum maximum frame size; the
// limit here is generous to tolerate lax peers.
const maxFrameSize = 4096

// FramePump reads discrete protocol units off a transport and dispatches
// them through callbacks, one exchange at a time. It is the read half of
// a negotiation; it performs no writes.
type FramePump interface {
	// Pump reads the peer's protocol header and then frames, invoking
	// onHeader for the header and onFrame for each non-empty frame. It
	// returns when done() reports true after a dispatch, or with the
	// first read, decode or callback error.
	Pump(done func() bool, onHeader func(ProtocolHeader) error, onFrame func(Command) error) error
}

// NewFramePump returns a FramePump over r, expecting an 8-byte protocol
// header followed by security-layer frames.
func NewFramePump(r io.Reader) FramePump { return &framePump{r: r} }

type framePump struct {
	r         io.Reader
	gotHeader bool
}

func (p *framePump) Pump(done func() bool, onHeader func(ProtocolHeader) error, onFrame func(Command) error) error {
	for !done() {
		if !p.gotHeader {
			var b [8]byte
			if _, err := io.ReadFull(p.r, b[:]); err != nil {
				return err
			}
			h, err := ParseHeader(b[:])
			if err != nil {
				return err
			}
			trace.Logger().Debug().Stringer("header", h).Msg("sasl header received")
			p.gotHeader = true
			if err := onHeader(h); err != nil {
				return err
			}
			continue
		}
		c, err := p.readFrame()
		if err != nil {
			return err
		}
		if c == nil { // Empty (heartbeat) frame
			continue
		}
		trace.Logger().Debug().Str("command", c.name()).Msg("sasl command received")
		if err := onFrame(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *framePump) readFrame() (Command, error) {
	var sz [4]byte
	if _, err := io.ReadFull(p.r, sz[:]); err != nil {
		return nil, err
	}
	size := binary.BigEndian.Uint32(sz[:])
	if size < frameHeaderSize || size > maxFrameSize {
		return nil, amqp.Errorf(amqp.FrameSizeTooSmall, "invalid frame size %d", size)
	}
	rest := make([]byte, size-4)
	if _, err := io.ReadFull(p.r, rest); err != nil {
		return nil, err
	}
	doff, ftype := rest[0], rest[1]
	if ftype != frameTypeSASL {
		return nil, amqp.Errorf(amqp.DecodeError, "unexpected frame type %d during negotiation", ftype)
	}
	bodyStart := int(doff)*4 - 4
	if bodyStart < 4 || bodyStart > len(rest) {
		return nil, amqp.Errorf(amqp.DecodeError, "invalid frame data offset %d", doff)
	}
	body := rest[bodyStart:]
	if len(body) == 0 {
		return nil, nil
	}
	return unmarshalCommand(body)
}
