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

package client

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Container identifies a single AMQP "application". Link implementations
// use it to generate link names that are unique among links between the
// same containers in the same direction, and per-delivery tags.
//
// Each Container in a distributed AMQP application must have a unique
// container-id.
type Container struct {
	id         string
	tagCounter uint64
}

// NewContainer creates a container. If id == "" a random UUID is
// generated for it.
func NewContainer(id string) *Container {
	if id == "" {
		id = uuid.NewString()
	}
	return &Container{id: id}
}

// Id is the unique identifier of the container.
func (cont *Container) Id() string { return cont.id }

func (cont *Container) String() string { return cont.id }

// NextTag returns a delivery tag unique within the container.
func (cont *Container) NextTag() string {
	return strconv.FormatUint(atomic.AddUint64(&cont.tagCounter, 1), 32)
}

// NextLinkName returns a link name unique within the container.
func (cont *Container) NextLinkName() string {
	return cont.id + "@" + cont.NextTag()
}
