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

	"github.com/tim-impulsescreen/amqpnetlite/amqp"
)

// Protocol ids carried in the header preamble.
const (
	ProtocolAMQP byte = 0
	ProtocolTLS  byte = 2
	ProtocolSASL byte = 3
)

// ProtocolHeader is the fixed 8-byte preamble exchanged at channel open,
// identifying the protocol layer and version. It lives only for the
// duration of one negotiation attempt.
type ProtocolHeader struct {
	ProtocolID             byte
	Major, Minor, Revision byte
}

// SASLHeader is the preamble announcing the SASL security layer.
func SASLHeader() ProtocolHeader {
	return ProtocolHeader{ProtocolID: ProtocolSASL, Major: 1}
}

// AMQPHeader is the preamble announcing the plain AMQP layer.
func AMQPHeader() ProtocolHeader {
	return ProtocolHeader{ProtocolID: ProtocolAMQP, Major: 1}
}

// Bytes returns the wire form of the header.
func (h ProtocolHeader) Bytes() [8]byte {
	return [8]byte{'A', 'M', 'Q', 'P', h.ProtocolID, h.Major, h.Minor, h.Revision}
}

// ParseHeader decodes an 8-byte preamble.
func ParseHeader(b []byte) (ProtocolHeader, error) {
	var h ProtocolHeader
	if len(b) < 8 || b[0] != 'A' || b[1] != 'M' || b[2] != 'Q' || b[3] != 'P' {
		return h, amqp.Errorf(amqp.DecodeError, "not an AMQP protocol header: %x", b)
	}
	h.ProtocolID, h.Major, h.Minor, h.Revision = b[4], b[5], b[6], b[7]
	return h, nil
}

func (h ProtocolHeader) String() string {
	return fmt.Sprintf("AMQP.%d.%d.%d.%d", h.ProtocolID, h.Major, h.Minor, h.Revision)
}
