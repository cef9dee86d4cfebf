// Copyright (c) 2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package caps

// Capability represents an optional feature that a client may request from the server.
type Capability string

const (
	// AccountNotify is this IRCv3 capability: https://ircv3.net/specs/extensions/account-notify
	AccountNotify Capability = "account-notify"
	// AccountTag is this IRCv3 capability: https://ircv3.net/specs/extensions/account-tag
	AccountTag Capability = "account-tag"
	// AwayNotify is this IRCv3 capability: https://ircv3.net/specs/extensions/away-notify
	AwayNotify Capability = "away-notify"
	// Batch is this IRCv3 capability: https://ircv3.net/specs/extensions/batch
	Batch Capability = "batch"
	// CapNotify is this IRCv3 capability: https://ircv3.net/specs/extensions/capability-negotiation
	CapNotify Capability = "cap-notify"
	// ChgHost is this IRCv3 capability: https://ircv3.net/specs/extensions/chghost
	ChgHost Capability = "chghost"
	// EchoMessage is this IRCv3 capability: https://ircv3.net/specs/extensions/echo-message
	EchoMessage Capability = "echo-message"
	// ExtendedJoin is this IRCv3 capability: https://ircv3.net/specs/extensions/extended-join
	ExtendedJoin Capability = "extended-join"
	// InviteNotify is this IRCv3 capability: https://ircv3.net/specs/extensions/invite-notify
	InviteNotify Capability = "invite-notify"
	// LabeledResponse is this IRCv3 capability: https://ircv3.net/specs/extensions/labeled-response
	LabeledResponse Capability = "labeled-response"
	// MessageTags is this IRCv3 capability: https://ircv3.net/specs/extensions/message-tags
	MessageTags Capability = "message-tags"
	// MultiPrefix is this IRCv3 capability: https://ircv3.net/specs/extensions/multi-prefix
	MultiPrefix Capability = "multi-prefix"
	// SASL is this IRCv3 capability: https://ircv3.net/specs/extensions/sasl-3.2
	SASL Capability = "sasl"
	// ServerTime is this IRCv3 capability: https://ircv3.net/specs/extensions/server-time
	ServerTime Capability = "server-time"
	// SetName is this IRCv3 capability: https://ircv3.net/specs/extensions/setname
	SetName Capability = "setname"
	// STS is this IRCv3 capability: https://ircv3.net/specs/extensions/sts
	STS Capability = "sts"
	// UserhostInNames is this IRCv3 capability: https://ircv3.net/specs/extensions/userhost-in-names
	UserhostInNames Capability = "userhost-in-names"
)

// Name returns the name of the given capability.
func (capability Capability) Name() string {
	return string(capability)
}
