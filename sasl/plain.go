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

// Plain is the PLAIN mechanism: user name and password in the initial
// response. Use it only over a transport that is already secured, the
// credentials are not protected by the mechanism itself.
type Plain struct {
	profile
	user, password string
}

// NewPlain creates a PLAIN mechanism with the given credentials.
func NewPlain(user, password string, opts ...Option) *Plain {
	return &Plain{profile: makeProfile("PLAIN", opts), user: user, password: password}
}

func (m *Plain) Start(hostname string) (ProtocolHeader, Command, error) {
	// authzid is left empty; the authenticated identity is the authcid.
	resp := make([]byte, 0, len(m.user)+len(m.password)+2)
	resp = append(resp, 0)
	resp = append(resp, m.user...)
	resp = append(resp, 0)
	resp = append(resp, m.password...)
	init := &Init{Mechanism: m.mechName, InitialResponse: resp, Hostname: hostname}
	return SASLHeader(), init, nil
}

func (m *Plain) OnCommand(hostname string, c Command) (Command, Outcome, bool, error) {
	outcome, done, handled, err := m.onCommon(c)
	if handled || err != nil {
		return nil, outcome, done, err
	}
	return nil, 0, false, m.unexpected(c)
}
