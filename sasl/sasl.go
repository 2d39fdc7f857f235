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
	"net"

	"github.com/tim-impulsescreen/amqpnetlite/amqp"
	"github.com/tim-impulsescreen/amqpnetlite/future"
	"github.com/tim-impulsescreen/amqpnetlite/internal/trace"
)

// Negotiate authenticates conn with m before any application traffic is
// permitted on it, and returns a future for the authenticated, possibly
// re-wrapped transport.
//
// The pump owns conn exclusively until the future resolves: it is not
// reentrant and must not be driven by two concurrent callers over the
// same transport. Any failure, including a rejected outcome, leaves the
// transport unusable; ownership of a successful transport transfers to
// the caller.
func Negotiate(hostname string, conn net.Conn, m Mechanism) *future.Future[net.Conn] {
	f := future.New[net.Conn]()
	go func() {
		upgraded, err := negotiate(hostname, conn, m, NewFramePump(conn))
		if err != nil {
			f.Fail(err)
		} else {
			f.Complete(upgraded)
		}
	}()
	return f
}

func negotiate(hostname string, conn net.Conn, m Mechanism, pump FramePump) (net.Conn, error) {
	w := newWriter(conn)
	expected, initial, err := m.Start(hostname)
	if err != nil {
		return nil, err
	}
	w.writeHeader(expected)
	if initial != nil {
		w.writeCommand(initial)
	}
	if err := w.flush(); err != nil {
		return nil, err
	}

	var (
		complete bool
		outcome  Outcome
	)
	err = pump.Pump(
		func() bool { return complete },
		func(h ProtocolHeader) error { return m.OnHeader(expected, h) },
		func(c Command) error {
			reply, oc, done, err := m.OnCommand(hostname, c)
			if err != nil {
				return err
			}
			if reply != nil {
				w.writeCommand(reply)
				if err := w.flush(); err != nil {
					return err
				}
			}
			if done {
				outcome, complete = oc, true
			}
			return nil
		})
	// Drain anything still buffered; a flush fault outranks a clean pump.
	if ferr := w.flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return nil, err
	}
	trace.Logger().Debug().Stringer("outcome", outcome).Msg("sasl negotiation complete")
	if outcome != OutcomeOk {
		return nil, amqp.Errorf(amqp.UnauthorizedAccess, "authentication failed: %s", outcome)
	}
	return m.UpgradeTransport(conn)
}
