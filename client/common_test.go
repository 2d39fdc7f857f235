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
)

// fakeEndpoint scripts the close primitive. The recorded call order
// verifies the bridge subscribes before it triggers.
type fakeEndpoint struct {
	closeRequested bool
	closeErr       error
	closeCalls     int
	closeTimeout   time.Duration
	notify         func(*amqp.Error)
	inClose        func() // fires mid-Close, simulating the engine racing ahead
	calls          []string
}

func (e *fakeEndpoint) CloseRequested() bool { return e.closeRequested }

func (e *fakeEndpoint) NotifyClosed(f func(*amqp.Error)) {
	e.notify = f
	e.calls = append(e.calls, "notify")
}

func (e *fakeEndpoint) Close(timeout time.Duration) error {
	e.closeCalls++
	e.closeTimeout = timeout
	e.calls = append(e.calls, "close")
	if e.inClose != nil {
		e.inClose()
	}
	return e.closeErr
}

// fakeSender scripts the send primitive and captures what the bridge
// forwards.
type fakeSender struct {
	err           error
	done          DispositionFunc
	state         amqp.DeliveryState
	timeoutMillis int64
	sent          []*amqp.Message
}

func (s *fakeSender) Send(m *amqp.Message, state amqp.DeliveryState, done DispositionFunc, timeoutMillis int64) error {
	s.sent = append(s.sent, m)
	s.state = state
	s.timeoutMillis = timeoutMillis
	if s.err != nil {
		return s.err
	}
	s.done = done
	return nil
}

// fakeReceiver scripts the receive primitive's dual completion paths.
type fakeReceiver struct {
	buffered  *amqp.Message
	err       error
	inReceive func(cb MessageCallback) // fires mid-call, simulating the engine racing ahead
	onMsg     MessageCallback
	onErr     func(*amqp.Error)
	timeout   int64
}

func (r *fakeReceiver) Receive(onMessage MessageCallback, timeoutMillis int64) (*amqp.Message, error) {
	r.onMsg = onMessage
	r.timeout = timeoutMillis
	if r.inReceive != nil {
		r.inReceive(onMessage)
	}
	return r.buffered, r.err
}

func (r *fakeReceiver) NotifyError(f func(*amqp.Error)) { r.onErr = f }
