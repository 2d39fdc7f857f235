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

package future

import (
	"errors"
	"math"
	"time"
)

// Timeout is the error returned if a wait does not complete on time.
//
// If timeout > 0 and the future is unresolved at the deadline, Wait
// returns a zero value and Timeout.
//
// If timeout == 0, Wait returns the result if one is immediately
// available or zero and Timeout if not.
//
// If timeout == Forever, Wait only returns once the future resolves.
var Timeout = errors.New("timeout")

// Forever can be used as a timeout parameter to indicate wait forever.
const Forever time.Duration = math.MaxInt64

// After is like time.After but returns a nil channel if timeout == Forever
// since selecting on a nil channel will never return.
func After(timeout time.Duration) <-chan time.Time {
	if timeout == Forever {
		return nil
	}
	return time.After(timeout)
}
