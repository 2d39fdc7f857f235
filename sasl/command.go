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
	"github.com/tim-impulsescreen/amqpnetlite/amqp"
)

// Descriptor codes of the security-layer performatives.
const (
	codeMechanisms uint64 = 0x40
	codeInit       uint64 = 0x41
	codeChallenge  uint64 = 0x42
	codeResponse   uint64 = 0x43
	codeOutcome    uint64 = 0x44
)

// Command is one security-layer performative.
type Command interface {
	code() uint64
	fields() []interface{}
	name() string
}

// Mechanisms advertises the mechanisms the peer supports.
type Mechanisms struct {
	Mechanisms []amqp.Symbol
}

func (c *Mechanisms) code() uint64 { return codeMechanisms }
func (c *Mechanisms) name() string { return "sasl-mechanisms" }
func (c *Mechanisms) fields() []interface{} {
	// A single mechanism may be encoded as a plain symbol per the
	// multiple="true" convention.
	if len(c.Mechanisms) == 1 {
		return []interface{}{c.Mechanisms[0]}
	}
	return []interface{}{c.Mechanisms}
}

// Init selects a mechanism and carries its initial response.
type Init struct {
	Mechanism       amqp.Symbol
	InitialResponse []byte
	Hostname        string
}

func (c *Init) code() uint64 { return codeInit }
func (c *Init) name() string { return "sasl-init" }
func (c *Init) fields() []interface{} {
	return []interface{}{c.Mechanism, c.InitialResponse, c.Hostname}
}

// Challenge carries security mechanism challenge data from the server.
type Challenge struct {
	Challenge []byte
}

func (c *Challenge) code() uint64          { return codeChallenge }
func (c *Challenge) name() string          { return "sasl-challenge" }
func (c *Challenge) fields() []interface{} { return []interface{}{c.Challenge} }

// Response carries the answer to a challenge.
type Response struct {
	Response []byte
}

func (c *Response) code() uint64          { return codeResponse }
func (c *Response) name() string          { return "sasl-response" }
func (c *Response) fields() []interface{} { return []interface{}{c.Response} }

// OutcomeCommand reports the final result of the exchange.
type OutcomeCommand struct {
	Code           Outcome
	AdditionalData []byte
}

func (c *OutcomeCommand) code() uint64 { return codeOutcome }
func (c *OutcomeCommand) name() string { return "sasl-outcome" }
func (c *OutcomeCommand) fields() []interface{} {
	return []interface{}{byte(c.Code), c.AdditionalData}
}

func marshalCommand(buf []byte, c Command) []byte {
	return amqp.Marshal(buf, amqp.Described{Descriptor: c.code(), Value: c.fields()})
}

func unmarshalCommand(body []byte) (Command, error) {
	v, _, err := amqp.Unmarshal(body)
	if err != nil {
		return nil, err
	}
	d, ok := v.(amqp.Described)
	if !ok {
		return nil, amqp.Errorf(amqp.DecodeError, "expected described performative, got %T", v)
	}
	f, ok := d.Value.([]interface{})
	if !ok {
		return nil, amqp.Errorf(amqp.DecodeError, "performative 0x%x is not a list", d.Descriptor)
	}
	switch d.Descriptor {
	case codeMechanisms:
		return &Mechanisms{Mechanisms: symbolsField(f, 0)}, nil
	case codeInit:
		return &Init{
			Mechanism:       symbolField(f, 0),
			InitialResponse: binaryField(f, 1),
			Hostname:        stringField(f, 2),
		}, nil
	case codeChallenge:
		return &Challenge{Challenge: binaryField(f, 0)}, nil
	case codeResponse:
		return &Response{Response: binaryField(f, 0)}, nil
	case codeOutcome:
		code, err := outcomeField(f, 0)
		if err != nil {
			return nil, err
		}
		return &OutcomeCommand{
			Code:           code,
			AdditionalData: binaryField(f, 1),
		}, nil
	default:
		return nil, amqp.Errorf(amqp.DecodeError, "unknown performative 0x%x", d.Descriptor)
	}
}

// Trailing fields may be omitted and any field may be null, so the
// accessors are tolerant of both.

func field(f []interface{}, i int) interface{} {
	if i < len(f) {
		return f[i]
	}
	return nil
}

func symbolField(f []interface{}, i int) amqp.Symbol {
	s, _ := field(f, i).(amqp.Symbol)
	return s
}

func symbolsField(f []interface{}, i int) []amqp.Symbol {
	switch v := field(f, i).(type) {
	case []amqp.Symbol:
		return v
	case amqp.Symbol:
		return []amqp.Symbol{v}
	default:
		return nil
	}
}

func binaryField(f []interface{}, i int) []byte {
	b, _ := field(f, i).([]byte)
	return b
}

func stringField(f []interface{}, i int) string {
	s, _ := field(f, i).(string)
	return s
}

// The outcome code is mandatory and the zero value means success, so
// unlike the other accessors this one rejects anything absent, mistyped
// or out of range rather than defaulting.
func outcomeField(f []interface{}, i int) (Outcome, error) {
	var v uint64
	switch x := field(f, i).(type) {
	case byte:
		v = uint64(x)
	case uint64:
		v = x
	default:
		return 0, amqp.Errorf(amqp.DecodeError, "sasl-outcome code has invalid type %T", x)
	}
	if v > uint64(OutcomeSysTemp) {
		return 0, amqp.Errorf(amqp.DecodeError, "sasl-outcome code %d out of range", v)
	}
	return Outcome(v), nil
}
