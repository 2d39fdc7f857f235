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

// Symbol is a string that is encoded as an AMQP symbol
type Symbol string

func (s Symbol) String() string   { return string(s) }
func (s Symbol) GoString() string { return fmt.Sprintf("s\"%s\"", s) }

// Message is an AMQP message.
//
// Only the parts of the message needed to exercise delivery and
// acknowledgement are modeled here; the full bare-message sections
// belong to the frame codec, which this library consumes rather than
// implements.
type Message struct {
	// Body is the application payload.
	Body interface{}

	// Properties holds application-properties, nil if absent.
	Properties map[string]interface{}
}

// NewMessage creates an empty message.
func NewMessage() *Message { return &Message{} }

// NewMessageWith creates a message with the given body.
func NewMessageWith(body interface{}) *Message { return &Message{Body: body} }
