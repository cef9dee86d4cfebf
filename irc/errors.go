// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package irc

import (
	"errors"
	"fmt"
)

// Command construction errors
var (
	// ErrNicknameMissing is returned by Identify when the config has no
	// nickname; the remaining registration commands are not sent.
	ErrNicknameMissing = errors.New("no nickname configured")
	// ErrEmptyCapabilityList is returned by SendCapReq when no
	// capabilities were supplied; no CAP REQ is built.
	ErrEmptyCapabilityList = errors.New("no capabilities requested")
)

// Config errors
var (
	errNoServerAddress  = errors.New("no server address configured")
	errUnknownMechanism = errors.New("unknown sasl mechanism")
)

// Socket errors
var (
	errReadQ = errors.New("ReadQ Exceeded")
)

// String errors
var (
	errCouldNotStabilize = errors.New("Could not stabilize string while casefolding")
	errStringIsEmpty     = errors.New("String is empty")
	errInvalidCharacter  = errors.New("Invalid character")
)

// PartialSendError reports a multi-command sequence (a multiline
// message, a chunked SASL response) that failed after some commands
// were already handed to the transport. Sent counts the commands that
// were delivered; Unwrap exposes the transport error.
type PartialSendError struct {
	Sent int
	Err  error
}

func (e *PartialSendError) Error() string {
	return fmt.Sprintf("send failed after %d commands: %v", e.Sent, e.Err)
}

func (e *PartialSendError) Unwrap() error {
	return e.Err
}
