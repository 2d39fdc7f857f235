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
)

// Mechanism drives one authentication exchange over a fresh transport.
//
// Negotiate calls Start once, then feeds the mechanism the peer's header
// and each arriving command until OnCommand reports the exchange
// complete. Header comparison belongs to the mechanism, not the pump.
type Mechanism interface {
	// Name is the mechanism name announced in sasl-init.
	Name() amqp.Symbol

	// Start produces the initial command to send, if any, and the
	// protocol header expected from the peer.
	Start(hostname string) (ProtocolHeader, Command, error)

	// OnHeader compares the peer's header against the expected one.
	OnHeader(expected, received ProtocolHeader) error

	// OnCommand handles one peer command. A non-nil reply is sent back.
	// done reports whether the exchange is complete; outcome is
	// authoritative only when done is true.
	OnCommand(hostname string, c Command) (reply Command, outcome Outcome, done bool, err error)

	// UpgradeTransport passes through or re-wraps the authenticated
	// transport once negotiation succeeds.
	UpgradeTransport(conn net.Conn) (net.Conn, error)
}

// Option configures a built-in mechanism.
type Option func(*profile)

// WithSecurity returns an Option that installs a transport-security
// provider, applied during the transport upgrade of a successful
// negotiation.
func WithSecurity(s TransportSecurity) Option {
	return func(p *profile) { p.security = s }
}

// profile carries the behavior shared by the built-in mechanisms: header
// comparison, handling of the mechanisms and outcome commands, and the
// transport upgrade.
type profile struct {
	mechName amqp.Symbol
	security TransportSecurity
}

func makeProfile(name amqp.Symbol, opts []Option) profile {
	p := profile{mechName: name}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func (p *profile) Name() amqp.Symbol { return p.mechName }

func (p *profile) OnHeader(expected, received ProtocolHeader) error {
	if expected != received {
		return amqp.Errorf(amqp.NotImplemented, "protocol mismatch: expected %s, got %s", expected, received)
	}
	return nil
}

// onCommon handles the commands every built-in mechanism treats the same
// way: the peer's mechanism list and the final outcome. handled is false
// for anything else.
func (p *profile) onCommon(c Command) (outcome Outcome, done bool, handled bool, err error) {
	switch c := c.(type) {
	case *Mechanisms:
		for _, m := range c.Mechanisms {
			if m == p.mechName {
				return 0, false, true, nil
			}
		}
		return 0, false, true, amqp.Errorf(amqp.NotImplemented, "peer does not offer mechanism %s", p.mechName)
	case *OutcomeCommand:
		return c.Code, true, true, nil
	default:
		return 0, false, false, nil
	}
}

func (p *profile) unexpected(c Command) error {
	return amqp.Errorf(amqp.NotAllowed, "mechanism %s: unexpected %s", p.mechName, c.name())
}

func (p *profile) UpgradeTransport(conn net.Conn) (net.Conn, error) {
	if p.security == nil {
		return conn, nil
	}
	return p.security.Upgrade(conn)
}
