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
	"crypto/tls"
	"net"
)

// TransportSecurity upgrades a successfully negotiated transport in
// place, e.g. by wrapping it in TLS. Injecting a provider selects the
// runtime's security capability where other implementations branch at
// build time.
type TransportSecurity interface {
	Upgrade(conn net.Conn) (net.Conn, error)
}

// TLSSecurity wraps the transport in a client-side TLS session.
type TLSSecurity struct {
	Config *tls.Config
}

func (s TLSSecurity) Upgrade(conn net.Conn) (net.Conn, error) {
	tc := tls.Client(conn, s.Config)
	if err := tc.Handshake(); err != nil {
		return nil, err
	}
	return tc, nil
}
