// Copyright (c) 2021 Shivaram Lingamneni
// released under the MIT license

package sasl

import (
	"github.com/xdg-go/scram"
)

// ScramConversation drives the client side of a SCRAM-SHA-256
// exchange. Challenges and responses are raw bytes; the caller is
// responsible for the AUTHENTICATE base64 framing (see EncodeResponse).
type ScramConversation struct {
	conv *scram.ClientConversation
}

// NewScramSHA256 prepares a SCRAM-SHA-256 conversation for the given
// credentials. authzid is normally empty.
func NewScramSHA256(authzid, username, password string) (*ScramConversation, error) {
	client, err := scram.SHA256.NewClient(username, password, authzid)
	if err != nil {
		return nil, err
	}
	return &ScramConversation{conv: client.NewConversation()}, nil
}

// Step consumes a decoded server challenge and produces the next
// client response. The first response is produced from an empty
// challenge.
func (s *ScramConversation) Step(challenge []byte) ([]byte, error) {
	response, err := s.conv.Step(string(challenge))
	if err != nil {
		return nil, err
	}
	return []byte(response), nil
}

// Done reports whether the conversation has concluded.
func (s *ScramConversation) Done() bool {
	return s.conv.Done()
}
