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

import "fmt"

// Outcome is the final result of a negotiation exchange. It is
// authoritative only once the mechanism reports the exchange complete.
type Outcome byte

const (
	// OutcomeOk means the peer accepted the authentication.
	OutcomeOk Outcome = iota
	// OutcomeAuth means authentication failed due to bad credentials.
	OutcomeAuth
	// OutcomeSys means authentication failed due to a system error.
	OutcomeSys
	// OutcomeSysPerm means authentication failed due to an unrecoverable
	// system error.
	OutcomeSysPerm
	// OutcomeSysTemp means authentication failed due to a transient
	// system error.
	OutcomeSysTemp
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOk:
		return "ok"
	case OutcomeAuth:
		return "auth"
	case OutcomeSys:
		return "sys"
	case OutcomeSysPerm:
		return "sys-perm"
	case OutcomeSysTemp:
		return "sys-temp"
	default:
		return fmt.Sprintf("invalid(%d)", byte(o))
	}
}
