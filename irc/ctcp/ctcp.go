// Copyright (c) 2021 Shivaram Lingamneni
// released under the MIT license

// Package ctcp implements the client-to-client protocol envelope, a
// sub-protocol carried inside PRIVMSG and NOTICE bodies and delimited
// by a control byte on each side.
package ctcp

import (
	"strconv"
	"strings"
	"time"
)

const delim = "\x01"

// Keyword payloads with no arguments.
const (
	Finger   = "FINGER"
	Version  = "VERSION"
	Source   = "SOURCE"
	UserInfo = "USERINFO"
	Time     = "TIME"
)

// Quote wraps a payload in exactly one pair of CTCP delimiters.
func Quote(payload string) string {
	return delim + payload + delim
}

// IsQuoted reports whether a message body is a CTCP envelope.
func IsQuoted(body string) bool {
	return len(body) >= 2 && strings.HasPrefix(body, delim) && strings.HasSuffix(body, delim)
}

// Unquote strips the delimiters from an envelope, returning the
// payload and whether the body was an envelope at all.
func Unquote(body string) (payload string, ok bool) {
	if !IsQuoted(body) {
		return body, false
	}
	return body[1 : len(body)-1], true
}

// Action builds the payload for an emote.
func Action(text string) string {
	return "ACTION " + text
}

// Ping builds a ping payload carrying the current time, so the reply
// latency can be measured. The clock is supplied by the caller.
func Ping(now time.Time) string {
	return "PING " + strconv.FormatInt(now.Unix(), 10)
}
