// Copyright (c) 2021 Shivaram Lingamneni
// released under the MIT license

package sasl

import (
	"encoding/base64"
	"reflect"
	"strings"
	"testing"
)

func TestPlainResponse(t *testing.T) {
	blob := PlainResponse("", "shivaram", "hunter2")
	if !reflect.DeepEqual(blob, []byte("\x00shivaram\x00hunter2")) {
		t.Errorf("unexpected PLAIN blob: %q", blob)
	}

	blob = PlainResponse("admin", "shivaram", "hunter2")
	if !reflect.DeepEqual(blob, []byte("admin\x00shivaram\x00hunter2")) {
		t.Errorf("unexpected PLAIN blob: %q", blob)
	}
}

func TestEncodeResponse(t *testing.T) {
	if !reflect.DeepEqual(EncodeResponse(nil), []string{"+"}) {
		t.Errorf("empty response must encode as +")
	}

	chunks := EncodeResponse([]byte("\x00jilles\x00sesame"))
	if !reflect.DeepEqual(chunks, []string{"AGppbGxlcwBzZXNhbWU="}) {
		t.Errorf("unexpected encoding: %v", chunks)
	}

	// a response whose base64 form is exactly 400 bytes must be
	// followed by a terminating +
	raw := make([]byte, 300)
	chunks = EncodeResponse(raw)
	if len(chunks) != 2 || len(chunks[0]) != 400 || chunks[1] != "+" {
		t.Errorf("unexpected encoding of 400-byte chunk: %v", chunks)
	}

	raw = make([]byte, 600)
	chunks = EncodeResponse(raw)
	if len(chunks) != 2 || len(chunks[0]) != 400 || len(chunks[1]) != 400 {
		t.Errorf("unexpected chunking: %d chunks", len(chunks))
	}
}

func TestScramFirstMessage(t *testing.T) {
	conv, err := NewScramSHA256("", "shivaram", "hunter2")
	if err != nil {
		t.Fatalf("could not initialize conversation: %v", err)
	}

	first, err := conv.Step(nil)
	if err != nil {
		t.Fatalf("could not produce client-first message: %v", err)
	}
	if !strings.HasPrefix(string(first), "n,,n=shivaram,r=") {
		t.Errorf("unexpected client-first message: %q", first)
	}
	if conv.Done() {
		t.Error("conversation done after a single step")
	}

	// the client-first message survives the AUTHENTICATE framing
	chunks := EncodeResponse(first)
	decoded, err := base64.StdEncoding.DecodeString(strings.Join(chunks, ""))
	if err != nil || !reflect.DeepEqual(decoded, first) {
		t.Errorf("framing did not round-trip: %v %v", decoded, err)
	}
}
