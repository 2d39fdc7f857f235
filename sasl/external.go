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

// External is the EXTERNAL mechanism: the authentication identity is
// established outside the SASL exchange, typically by the client
// certificate of the transport security layer. Pair it with WithSecurity
// when the secured transport is established as part of negotiation.
type External struct {
	profile
	authzid string
}

// NewExternal creates an EXTERNAL mechanism.
func NewExternal(opts ...Option) *External {
	return &External{profile: makeProfile("EXTERNAL", opts)}
}

// NewExternalAuthz creates an EXTERNAL mechanism requesting to act as the
// given authorization identity.
func NewExternalAuthz(authzid string, opts ...Option) *External {
	return &External{profile: makeProfile("EXTERNAL", opts), authzid: authzid}
}

func (m *External) Start(hostname string) (ProtocolHeader, Command, error) {
	init := &Init{Mechanism: m.mechName, InitialResponse: []byte(m.authzid), Hostname: hostname}
	return SASLHeader(), init, nil
}

func (m *External) OnCommand(hostname string, c Command) (Command, Outcome, bool, error) {
	outcome, done, handled, err := m.onCommon(c)
	if handled || err != nil {
		return nil, outcome, done, err
	}
	return nil, 0, false, m.unexpected(c)
}
