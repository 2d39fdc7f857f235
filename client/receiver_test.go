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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tim-impulsescreen/amqpnetlite/amqp"
)

func TestReceiveSynchronousFastPath(t *testing.T) {
	m := amqp.NewMessageWith("buffered")
	l := &fakeReceiver{buffered: m}
	f := ReceiveAsync(l, time.Second)
	got, err := f.Result()
	require.NoError(t, err)
	assert.Same(t, m, got)

	// A late-firing asynchronous callback for the same request is a no-op.
	l.onMsg(amqp.NewMessageWith("late"))
	got, err = f.Result()
	require.NoError(t, err)
	assert.Same(t, m, got)
}

func TestReceiveAsynchronousArrival(t *testing.T) {
	l := &fakeReceiver{}
	f := ReceiveAsync(l, time.Second)
	m := amqp.NewMessageWith("arrived")
	l.onMsg(m)
	got, err := f.Result()
	require.NoError(t, err)
	assert.Same(t, m, got)
}

// No message and no error before the timeout resolves with the absent
// value.
func TestReceiveTimeoutSentinel(t *testing.T) {
	l := &fakeReceiver{}
	f := ReceiveAsync(l, time.Second)
	l.onMsg(nil)
	got, err := f.Result()
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Both paths can legitimately race when a message arrives between
// initiation and return; the first writer wins.
func TestReceiveDualPathRace(t *testing.T) {
	first := amqp.NewMessageWith("from-callback")
	second := amqp.NewMessageWith("from-fast-path")
	l := &fakeReceiver{buffered: second}
	l.inReceive = func(cb MessageCallback) { cb(first) }
	f := ReceiveAsync(l, time.Second)
	got, err := f.Result()
	require.NoError(t, err)
	assert.Same(t, first, got)
}

// A link transitioning to an errored attached state must fail the
// outstanding receive even though the request itself was never rejected.
func TestReceiveLinkError(t *testing.T) {
	want := amqp.Errorf(amqp.ResourceDeleted, "link detached by peer")
	l := &fakeReceiver{}
	f := ReceiveAsync(l, time.Second)
	require.NotNil(t, l.onErr, "error observer must be attached before the receive is triggered")
	l.onErr(want)
	_, err := f.Result()
	assert.Equal(t, want, err)
}

func TestReceiveSynchronousFailure(t *testing.T) {
	l := &fakeReceiver{err: errors.New("link not attached")}
	f := ReceiveAsync(l, time.Second)
	_, err := f.Result()
	require.Error(t, err)
	assert.Equal(t, amqp.InternalError, err.(*amqp.Error).Name)
}

func TestReceiveTimeoutForwarded(t *testing.T) {
	l := &fakeReceiver{}
	ReceiveAsync(l, 250*time.Millisecond)
	assert.Equal(t, int64(250), l.timeout)

	l = &fakeReceiver{}
	ReceiveAsync(l, 0)
	assert.Equal(t, int64(60000), l.timeout)
}
