// Copyright (c) 2021 Shivaram Lingamneni
// released under the MIT license

// Package sasl assembles the payloads exchanged over AUTHENTICATE
// commands. It tracks no authentication state; sequencing is the
// caller's business.
package sasl

import (
	"github.com/ergochat/irc-go/ircutils"
)

// Mechanism names and sentinels, as they appear as AUTHENTICATE parameters.
const (
	// Plain is the PLAIN mechanism: https://ircv3.net/specs/extensions/sasl-3.1
	Plain = "PLAIN"
	// External is the EXTERNAL (client certificate) mechanism.
	External = "EXTERNAL"
	// ScramSHA256 is the SCRAM-SHA-256 challenge/response mechanism.
	ScramSHA256 = "SCRAM-SHA-256"
	// Abort cancels an authentication exchange in progress.
	Abort = "*"
)

// EncodeResponse encodes a raw response as parameters to successive
// AUTHENTICATE commands: base64, split into 400-byte chunks, with a
// final `+` when the last chunk is full (or the response is empty).
func EncodeResponse(raw []byte) []string {
	return ircutils.EncodeSASLResponse(raw)
}

// PlainResponse assembles the NUL-joined PLAIN response blob.
// authzid is normally empty, delegating the authorization decision
// to the server.
func PlainResponse(authzid, authcid, password string) []byte {
	result := make([]byte, 0, len(authzid)+len(authcid)+len(password)+2)
	result = append(result, authzid...)
	result = append(result, '\x00')
	result = append(result, authcid...)
	result = append(result, '\x00')
	result = append(result, password...)
	return result
}
