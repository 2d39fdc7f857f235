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

func TestSendAccepted(t *testing.T) {
	l := &fakeSender{}
	f := SendAsync(l, amqp.NewMessageWith("hi"), time.Second)
	l.done(amqp.Accepted, nil)
	_, err := f.Result()
	require.NoError(t, err)
	require.Len(t, l.sent, 1)
	assert.Equal(t, "hi", l.sent[0].Body)
}

func TestSendRejectedCarriesDetail(t *testing.T) {
	want := amqp.Errorf(amqp.DecodeError, "bad body")
	l := &fakeSender{}
	f := SendAsync(l, amqp.NewMessage(), time.Second)
	l.done(amqp.Rejected, want)
	_, err := f.Result()
	assert.Equal(t, want, err)
}

func TestSendRejectedWithoutDetail(t *testing.T) {
	l := &fakeSender{}
	f := SendAsync(l, amqp.NewMessage(), time.Second)
	l.done(amqp.Rejected, nil)
	_, err := f.Result()
	require.Error(t, err)
	assert.Equal(t, amqp.InternalError, err.(*amqp.Error).Name)
}

func TestSendReleased(t *testing.T) {
	l := &fakeSender{}
	f := SendAsync(l, amqp.NewMessage(), time.Second)
	l.done(amqp.Released, nil)
	_, err := f.Result()
	require.Error(t, err)
	assert.Equal(t, amqp.MessageReleased, err.(*amqp.Error).Name)
}

func TestSendUnrecognizedOutcome(t *testing.T) {
	l := &fakeSender{}
	f := SendAsync(l, amqp.NewMessage(), time.Second)
	l.done(amqp.OutcomeCode(0x99), nil)
	_, err := f.Result()
	require.Error(t, err)
	e := err.(*amqp.Error)
	assert.Equal(t, amqp.InternalError, e.Name)
	assert.Contains(t, e.Description, "unknown-outcome(0x99)")
}

func TestSendSynchronousFailure(t *testing.T) {
	l := &fakeSender{err: errors.New("link detached")}
	f := SendAsync(l, amqp.NewMessage(), time.Second)
	_, err := f.Result()
	require.Error(t, err)
	assert.Equal(t, amqp.InternalError, err.(*amqp.Error).Name)
}

// The caller-supplied timeout reaches the link in milliseconds; the zero
// value means the default.
func TestSendTimeoutForwarded(t *testing.T) {
	l := &fakeSender{}
	SendAsync(l, amqp.NewMessage(), 5*time.Second)
	assert.Equal(t, int64(5000), l.timeoutMillis)

	l = &fakeSender{}
	SendAsync(l, amqp.NewMessage(), 0)
	assert.Equal(t, int64(60000), l.timeoutMillis)
}

func TestSendTransactionalState(t *testing.T) {
	state := amqp.TransactionalState{TxnID: []byte{1, 2, 3}}
	l := &fakeSender{}
	f := SendAsyncTxn(l, amqp.NewMessage(), state, time.Second)
	assert.Equal(t, state, l.state)
	l.done(amqp.Accepted, nil)
	_, err := f.Result()
	assert.NoError(t, err)
}
