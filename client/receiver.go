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

package client

import (
	"time"

	"github.com/tim-impulsescreen/amqpnetlite/amqp"
	"github.com/tim-impulsescreen/amqpnetlite/future"
)

// MessageCallback is invoked by a receiving link when a delivery arrives
// for an outstanding receive request. m is nil if the link's timeout
// elapsed before a message arrived.
type MessageCallback func(m *amqp.Message)

// ReceiverLink is the receive primitive of a receiving link, implemented
// by the protocol engine.
type ReceiverLink interface {
	// Receive registers onMessage for the next delivery. If a message is
	// already buffered it is returned synchronously; the callback may
	// still fire for the same request, both paths are legitimate.
	// timeoutMillis is forwarded to the link, which signals expiry by
	// invoking onMessage with nil.
	Receive(onMessage MessageCallback, timeoutMillis int64) (*amqp.Message, error)

	// NotifyError registers f to be called if the link enters an errored
	// attached state. The engine may invoke it while receive requests are
	// outstanding and without rejecting any of them explicitly.
	NotifyError(f func(err *amqp.Error))
}

// ReceiveAsync returns a future for the next message on l. The future
// resolves with nil if no message arrives before the timeout.
//
// The synchronous fast path and the arrival callback can legitimately
// race when a message arrives between initiation and return, so the
// future resolves under a first-writer-wins policy and the losing path is
// a no-op. A link error while the request is outstanding also resolves
// the future, as a failure.
func ReceiveAsync(l ReceiverLink, timeout time.Duration) *future.Future[*amqp.Message] {
	f := future.New[*amqp.Message]()
	l.NotifyError(func(err *amqp.Error) {
		f.TryFail(err)
	})
	m, err := l.Receive(func(m *amqp.Message) {
		f.TryComplete(m)
	}, millis(orDefault(timeout)))
	switch {
	case err != nil:
		f.TryFail(amqp.MakeError(err))
	case m != nil:
		f.TryComplete(m)
	}
	return f
}
