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
	"github.com/tim-impulsescreen/amqpnetlite/internal/trace"
)

// Closer is the close primitive of an endpoint (connection, session or
// link). It is implemented by the protocol engine, which invokes the
// close-notification callback on its own goroutine.
type Closer interface {
	// CloseRequested reports whether a close has already been initiated
	// locally on this endpoint.
	CloseRequested() bool

	// NotifyClosed registers f to be called exactly once when the close
	// handshake completes. err is nil on a clean close, otherwise it
	// carries the peer's or transport's error condition.
	NotifyClosed(f func(err *amqp.Error))

	// Close initiates the close handshake. A non-nil return means the
	// close could not even be started, e.g. the transport has already
	// faulted; completion is otherwise reported via NotifyClosed.
	Close(timeout time.Duration) error
}

// CloseAsync closes obj and returns a future that resolves when the close
// handshake completes.
//
// If obj has already recorded a close request the returned future is
// immediately successful and the close primitive is not re-invoked, so no
// duplicate close frames are emitted. The notification callback is
// registered before Close is invoked: closure may complete on the engine
// goroutine before Close even returns.
func CloseAsync(obj Closer, timeout time.Duration) *future.Future[struct{}] {
	if obj.CloseRequested() {
		return future.Immediate(struct{}{})
	}
	f := future.New[struct{}]()
	obj.NotifyClosed(func(err *amqp.Error) {
		if err == nil {
			f.Complete(struct{}{})
		} else {
			f.Fail(err)
		}
	})
	if err := obj.Close(orDefault(timeout)); err != nil {
		// The close signal may already have fired for the same fault, so
		// the redirect is lenient.
		if f.TryFail(amqp.MakeError(err)) {
			trace.Logger().Debug().Err(err).Msg("close failed synchronously")
		}
	}
	return f
}
