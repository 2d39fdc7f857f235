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
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tim-impulsescreen/amqpnetlite/amqp"
)

// readInit consumes the client's protocol header and sasl-init off conn.
// Negotiate runs its own goroutine, so the scripted peer can run on the
// test goroutine.
func readInit(t *testing.T, conn net.Conn) *Init {
	t.Helper()
	var init *Init
	err := NewFramePump(conn).Pump(
		func() bool { return init != nil },
		func(h ProtocolHeader) error {
			if h != SASLHeader() {
				return fmt.Errorf("client sent %s, want %s", h, SASLHeader())
			}
			return nil
		},
		func(c Command) error {
			i, ok := c.(*Init)
			if !ok {
				return fmt.Errorf("expected sasl-init, got %s", c.name())
			}
			init = i
			return nil
		})
	require.NoError(t, err)
	return init
}

func reply(t *testing.T, conn net.Conn, h ProtocolHeader, cmds ...Command) {
	t.Helper()
	w := newWriter(conn)
	w.writeHeader(h)
	for _, c := range cmds {
		w.writeCommand(c)
	}
	require.NoError(t, w.flush())
}

func TestNegotiatePlainOk(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	f := Negotiate("broker.example.com", client, NewPlain("user", "secret"))

	init := readInit(t, server)
	assert.Equal(t, amqp.Symbol("PLAIN"), init.Mechanism)
	assert.Equal(t, []byte("\x00user\x00secret"), init.InitialResponse)
	assert.Equal(t, "broker.example.com", init.Hostname)
	reply(t, server, SASLHeader(),
		&Mechanisms{Mechanisms: []amqp.Symbol{"PLAIN", "ANONYMOUS"}},
		&OutcomeCommand{Code: OutcomeOk})

	conn, err := f.Result()
	require.NoError(t, err)
	assert.Same(t, client, conn, "without transport security the original connection passes through")
}

func TestNegotiateDenied(t *testing.T) {
	for _, outcome := range []Outcome{OutcomeAuth, OutcomeSys, OutcomeSysPerm, OutcomeSysTemp} {
		t.Run(outcome.String(), func(t *testing.T) {
			client, server := net.Pipe()
			defer client.Close()
			defer server.Close()

			f := Negotiate("host", client, NewAnonymous())
			readInit(t, server)
			reply(t, server, SASLHeader(), &OutcomeCommand{Code: outcome})

			_, err := f.Result()
			require.Error(t, err)
			amqpErr := err.(*amqp.Error)
			assert.Equal(t, amqp.UnauthorizedAccess, amqpErr.Name)
			assert.Contains(t, amqpErr.Description, outcome.String())
		})
	}
}

func TestNegotiateHeaderMismatch(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	f := Negotiate("host", client, NewPlain("u", "p"))
	readInit(t, server)
	// Peer skips the security layer and answers with the plain AMQP
	// header.
	reply(t, server, AMQPHeader())

	_, err := f.Result()
	require.Error(t, err)
	assert.Equal(t, amqp.NotImplemented, err.(*amqp.Error).Name)
	assert.Contains(t, err.(*amqp.Error).Description, "protocol mismatch")
}

func TestNegotiateMechanismNotOffered(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	f := Negotiate("host", client, NewPlain("u", "p"))
	readInit(t, server)
	reply(t, server, SASLHeader(), &Mechanisms{Mechanisms: []amqp.Symbol{"EXTERNAL"}})

	_, err := f.Result()
	require.Error(t, err)
	assert.Equal(t, amqp.NotImplemented, err.(*amqp.Error).Name)
	assert.Contains(t, err.(*amqp.Error).Description, "PLAIN")
}

func TestNegotiateUnexpectedCommand(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	f := Negotiate("host", client, NewPlain("u", "p"))
	readInit(t, server)
	// PLAIN is a single-exchange mechanism; a challenge is a protocol
	// violation.
	reply(t, server, SASLHeader(), &Challenge{Challenge: []byte("more")})

	_, err := f.Result()
	require.Error(t, err)
	assert.Equal(t, amqp.NotAllowed, err.(*amqp.Error).Name)
	assert.Contains(t, err.(*amqp.Error).Description, "sasl-challenge")
}

type fakeSecurity struct {
	wrapped net.Conn
	got     net.Conn
}

func (s *fakeSecurity) Upgrade(conn net.Conn) (net.Conn, error) {
	s.got = conn
	return s.wrapped, nil
}

func TestNegotiateTransportUpgrade(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()
	wrapped, other := net.Pipe()
	defer wrapped.Close()
	defer other.Close()

	sec := &fakeSecurity{wrapped: wrapped}
	f := Negotiate("host", client, NewExternal(WithSecurity(sec)))

	init := readInit(t, server)
	assert.Equal(t, amqp.Symbol("EXTERNAL"), init.Mechanism)
	reply(t, server, SASLHeader(), &OutcomeCommand{Code: OutcomeOk})

	conn, err := f.Result()
	require.NoError(t, err)
	assert.Same(t, client, sec.got, "the authenticated connection is handed to the security provider")
	assert.Same(t, wrapped, conn)
}

func TestAnonymousTraceResponse(t *testing.T) {
	m := NewAnonymousTrace("ops@example.com")
	h, c, err := m.Start("host")
	require.NoError(t, err)
	assert.Equal(t, SASLHeader(), h)
	assert.Equal(t, []byte("ops@example.com"), c.(*Init).InitialResponse)
}

func TestCommandRoundTrip(t *testing.T) {
	for _, c := range []Command{
		&Mechanisms{Mechanisms: []amqp.Symbol{"PLAIN", "EXTERNAL"}},
		&Mechanisms{Mechanisms: []amqp.Symbol{"ANONYMOUS"}},
		&Init{Mechanism: "PLAIN", InitialResponse: []byte("\x00u\x00p"), Hostname: "h"},
		&Challenge{Challenge: []byte("nonce")},
		&Response{Response: []byte("proof")},
		&OutcomeCommand{Code: OutcomeSysTemp, AdditionalData: []byte("retry")},
	} {
		got, err := unmarshalCommand(marshalCommand(nil, c))
		require.NoError(t, err, c.name())
		assert.Equal(t, c, got, c.name())
	}
}

// A garbled sasl-outcome must fail decoding; the zero outcome code means
// success, so a missing, mistyped or out-of-range code can never be
// allowed to default.
func TestOutcomeCodeValidated(t *testing.T) {
	for name, fields := range map[string][]interface{}{
		"out of range":      {byte(9)},
		"wide out of range": {uint64(300)},
		"missing":           {},
		"mistyped":          {"ok"},
	} {
		wire := amqp.Marshal(nil, amqp.Described{Descriptor: codeOutcome, Value: fields})
		_, err := unmarshalCommand(wire)
		require.Error(t, err, name)
		assert.Equal(t, amqp.DecodeError, err.(*amqp.Error).Name, name)
	}
}

type faultWriter struct{ err error }

func (f *faultWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestWriterStickyError(t *testing.T) {
	fault := fmt.Errorf("broken pipe")
	w := newWriter(&faultWriter{err: fault})
	w.writeHeader(SASLHeader())
	assert.Equal(t, fault, w.flush())

	// The fault is sticky: later queued traffic is discarded and the
	// original error keeps being reported.
	w.writeCommand(&Response{Response: []byte("x")})
	assert.Equal(t, fault, w.flush())
}
