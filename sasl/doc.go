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
Package sasl authenticates a freshly opened transport before any
application traffic is permitted on it.

Negotiate drives the header and frame exchange with a pluggable Mechanism
(ANONYMOUS, PLAIN and EXTERNAL are provided) and, on success, asks the
mechanism to upgrade the transport in place. All outgoing negotiation
traffic goes through a buffering writer whose faults surface only through
the negotiation result, never through a connection-level fault channel:
until negotiation finishes the transport belongs exclusively to the pump.

The package owns the SASL performative codec (mechanisms, init,
challenge, response, outcome) but no other part of the wire protocol.
*/
package sasl
