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

// Package trace provides frame-level trace logging, disabled unless the
// AMQP_TRACE environment variable is set.
package trace

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// EnvTrace enables trace logging when set to a true-ish value
// (true/1/yes/on).
const EnvTrace = "AMQP_TRACE"

var logger = newLogger()

func envBool(name string) bool {
	v := strings.ToLower(os.Getenv(name))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

func newLogger() zerolog.Logger {
	if !envBool(EnvTrace) {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// Logger returns the process-wide trace logger.
func Logger() *zerolog.Logger { return &logger }
