// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line unpacker runtime.
//
// It reads the packed payload, obtains the password from configuration or
// an interactive prompt, unpacks locally or through a remote server and
// prints the result.
package client
