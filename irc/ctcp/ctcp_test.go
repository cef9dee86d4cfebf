// Copyright (c) 2021 Shivaram Lingamneni
// released under the MIT license

package ctcp

import (
	"testing"
	"time"
)

func TestQuote(t *testing.T) {
	if Quote("VERSION") != "\x01VERSION\x01" {
		t.Errorf("unexpected envelope: %q", Quote("VERSION"))
	}

	// never nested, regardless of payload content
	quoted := Quote(Quote("VERSION"))
	if quoted != "\x01\x01VERSION\x01\x01" {
		t.Errorf("unexpected envelope: %q", quoted)
	}
}

func TestUnquote(t *testing.T) {
	payload, ok := Unquote("\x01ACTION waves\x01")
	if !ok || payload != "ACTION waves" {
		t.Errorf("unexpected payload: %q, %v", payload, ok)
	}

	payload, ok = Unquote("just a message")
	if ok || payload != "just a message" {
		t.Errorf("plain message misidentified as CTCP: %q, %v", payload, ok)
	}

	if _, ok := Unquote("\x01"); ok {
		t.Error("single delimiter misidentified as CTCP")
	}
}

func TestPing(t *testing.T) {
	when := time.Unix(1257894000, 0)
	if Ping(when) != "PING 1257894000" {
		t.Errorf("unexpected ping payload: %q", Ping(when))
	}
}

func TestAction(t *testing.T) {
	if Action("tests.") != "ACTION tests." {
		t.Errorf("unexpected action payload: %q", Action("tests."))
	}
}
