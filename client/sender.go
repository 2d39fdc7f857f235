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

// DispositionFunc receives the peer's settlement for one delivery
// attempt. detail is the peer's error condition for a rejection, nil for
// every other outcome.
type DispositionFunc func(code amqp.OutcomeCode, detail *amqp.Error)

// SenderLink is the send primitive of a sending link. It is implemented
// by the protocol engine; the disposition callback fires on the engine
// goroutine once the peer settles the delivery.
type SenderLink interface {
	// Send submits m for delivery with an optional delivery state (a
	// transactional token from a transaction resource, nil otherwise).
	// done is invoked once per attempt with the peer's outcome.
	// timeoutMillis bounds how long the link keeps the delivery alive;
	// enforcement, retry and drop are the link's concern. A non-nil
	// return means the submission itself failed.
	Send(m *amqp.Message, state amqp.DeliveryState, done DispositionFunc, timeoutMillis int64) error
}

// SendAsync sends m on l and returns a future resolved by the peer's
// settlement of this delivery.
func SendAsync(l SenderLink, m *amqp.Message, timeout time.Duration) *future.Future[struct{}] {
	return SendAsyncTxn(l, m, nil, timeout)
}

// SendAsyncTxn is SendAsync with a transactional state token supplied by
// a transaction-resource collaborator.
//
// The outcome maps onto the future as follows: accepted is success;
// rejected fails with the peer's error detail; released fails with the
// fixed amqp:message-released condition; any other outcome fails with
// amqp:internal-error naming the outcome's descriptor.
func SendAsyncTxn(l SenderLink, m *amqp.Message, state amqp.DeliveryState, timeout time.Duration) *future.Future[struct{}] {
	f := future.New[struct{}]()
	done := func(code amqp.OutcomeCode, detail *amqp.Error) {
		trace.Logger().Debug().Stringer("outcome", code).Msg("delivery settled")
		switch code {
		case amqp.Accepted:
			f.Complete(struct{}{})
		case amqp.Rejected:
			if detail == nil {
				detail = amqp.Errorf(amqp.InternalError, "message rejected without error detail")
			}
			f.Fail(detail)
		case amqp.Released:
			f.Fail(amqp.Errorf(amqp.MessageReleased, "message released by peer"))
		default:
			f.Fail(amqp.Errorf(amqp.InternalError, "unexpected delivery outcome %s", code))
		}
	}
	if err := l.Send(m, state, done, millis(orDefault(timeout))); err != nil {
		f.TryFail(amqp.MakeError(err))
	}
	return f
}
