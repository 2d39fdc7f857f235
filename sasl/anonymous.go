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

// Anonymous is the ANONYMOUS mechanism. The optional trace string is
// carried as the initial response.
type Anonymous struct {
	profile
	trace string
}

// NewAnonymous creates an ANONYMOUS mechanism.
func NewAnonymous(opts ...Option) *Anonymous {
	return &Anonymous{profile: makeProfile("ANONYMOUS", opts)}
}

// NewAnonymousTrace creates an ANONYMOUS mechanism carrying a trace
// string, e.g. an email address.
func NewAnonymousTrace(trace string, opts ...Option) *Anonymous {
	return &Anonymous{profile: makeProfile("ANONYMOUS", opts), trace: trace}
}

func (m *Anonymous) Start(hostname string) (ProtocolHeader, Command, error) {
	init := &Init{Mechanism: m.mechName, InitialResponse: []byte(m.trace), Hostname: hostname}
	return SASLHeader(), init, nil
}

func (m *Anonymous) OnCommand(hostname string, c Command) (Command, Outcome, bool, error) {
	outcome, done, handled, err := m.onCommon(c)
	if handled || err != nil {
		return nil, outcome, done, err
	}
	return nil, 0, false, m.unexpected(c)
}
