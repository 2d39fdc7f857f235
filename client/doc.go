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

/*
Package client bridges the callback-driven AMQP protocol engine to
future-style results.

The protocol engine (frame codec, session/link state machine, transport
I/O) runs its own event-loop goroutine and reports progress through
callbacks. The bridges in this package let a caller issue close, send and
receive operations and observe a single future per operation instead of a
raw callback: each bridge registers its observer with the engine primitive
first, then triggers it, and returns the future immediately. The engine
goroutine later resolves the future.

All outcomes of an operation, including failures raised synchronously by
the primitive itself, are observable exclusively through the returned
future. This package performs no retries and owns no timers; timeouts are
forwarded to the underlying primitives, which report expiry through their
own signals.
*/
package client

/* DEVELOPER NOTES

A single engine goroutine invokes the callbacks registered here; futures
may be observed from arbitrary caller goroutines. The bridges take no
locks of their own beyond the future's single-assignment guarantee.

Close and send have exactly one resolver each, so they use the strict
resolution discipline. Receive has two legitimate resolution paths (the
synchronous fast path and the arrival callback) plus link-error delivery,
so every receive path resolves leniently: first writer wins.
*/
