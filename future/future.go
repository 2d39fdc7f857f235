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

// Package future provides a single-assignment result cell that bridges
// callback-style completion to awaitable results.
//
// A Future is created before the underlying operation is triggered, so a
// resolver running on the protocol engine goroutine can never race ahead
// of observer attachment. It resolves exactly once, Pending to Completed
// or Pending to Faulted.
package future

import (
	"sync"
	"time"
)

// Future is a single-assignment result cell for a value of type T.
//
// Complete/Fail are the strict resolvers: resolving a second time is a
// programming defect and panics. TryComplete/TryFail are the lenient
// resolvers: the first writer wins and later attempts are discarded. Use
// the lenient form when two execution paths can legitimately race to
// resolve the same request.
type Future[T any] struct {
	mu    sync.Mutex
	done  chan struct{}
	value T
	err   error
}

// New creates a pending future.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Immediate creates an already-completed future.
func Immediate[T any](v T) *Future[T] {
	f := New[T]()
	f.value = v
	close(f.done)
	return f
}

// ImmediateErr creates an already-faulted future.
func ImmediateErr[T any](err error) *Future[T] {
	f := New[T]()
	f.err = err
	close(f.done)
	return f
}

func (f *Future[T]) resolve(v T, err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case <-f.done:
		return false
	default:
	}
	f.value, f.err = v, err
	close(f.done)
	return true
}

// TryComplete resolves the future with v. Returns false if the future was
// already resolved, in which case v is discarded.
func (f *Future[T]) TryComplete(v T) bool { return f.resolve(v, nil) }

// TryFail resolves the future with err. Returns false if the future was
// already resolved, in which case err is discarded.
func (f *Future[T]) TryFail(err error) bool {
	var zero T
	return f.resolve(zero, err)
}

// Complete resolves the future with v. Panics if the future was already
// resolved: operations with a single resolver treat that as a defect.
func (f *Future[T]) Complete(v T) {
	if !f.TryComplete(v) {
		panic("future: completed twice")
	}
}

// Fail resolves the future with err. Panics if the future was already
// resolved.
func (f *Future[T]) Fail(err error) {
	if !f.TryFail(err) {
		panic("future: failed twice")
	}
}

// Done returns a channel that closes when the future resolves.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Result blocks until the future resolves and returns its value or error.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err
}

// Wait is like Result but gives up after timeout and returns Timeout.
// See Forever and After for the timeout conventions.
func (f *Future[T]) Wait(timeout time.Duration) (T, error) {
	if timeout != 0 {
		select {
		case <-f.done:
		case <-After(timeout):
			var zero T
			return zero, Timeout
		}
	} else {
		select {
		case <-f.done:
		default:
			var zero T
			return zero, Timeout
		}
	}
	return f.Result()
}
