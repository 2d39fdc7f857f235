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

package amqp

import "fmt"

// OutcomeCode is the descriptor of the peer's settlement decision for a
// sent message.
type OutcomeCode uint64

const (
	Received OutcomeCode = 0x23
	Accepted OutcomeCode = 0x24
	Rejected OutcomeCode = 0x25
	Released OutcomeCode = 0x26
	Modified OutcomeCode = 0x27
)

// String is the symbolic descriptor name for the outcome.
func (c OutcomeCode) String() string {
	switch c {
	case Received:
		return "amqp:received:list"
	case Accepted:
		return "amqp:accepted:list"
	case Rejected:
		return "amqp:rejected:list"
	case Released:
		return "amqp:released:list"
	case Modified:
		return "amqp:modified:list"
	default:
		return fmt.Sprintf("unknown-outcome(0x%x)", uint64(c))
	}
}

// Descriptor returns the numeric descriptor code.
func (c OutcomeCode) Descriptor() uint64 { return uint64(c) }

// DeliveryState is the state communicated for a delivery: a plain outcome
// or a transactional wrapper supplied by a transaction resource.
type DeliveryState interface {
	Descriptor() uint64
}

// TransactionalState associates a delivery with a transaction. It is
// produced by a transaction-resource collaborator, never by this library.
type TransactionalState struct {
	TxnID   []byte
	Outcome OutcomeCode
}

func (TransactionalState) Descriptor() uint64 { return 0x34 }
