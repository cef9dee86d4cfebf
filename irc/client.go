// Copyright (c) 2021 Shivaram Lingamneni
// released under the MIT license

package irc

import (
	"strings"
	"time"

	"github.com/ergochat/irc-go/ircmsg"

	"github.com/ergochat/gossip/irc/caps"
	"github.com/ergochat/gossip/irc/ctcp"
	"github.com/ergochat/gossip/irc/modes"
	"github.com/ergochat/gossip/irc/sasl"
)

// Sender hands one fully formed command to the transport for framing
// and delivery. Implementations must deliver commands in the order
// Send was invoked on a given connection; every multi-command sequence
// below depends on that.
type Sender interface {
	Send(msg ircmsg.Message) error
}

// Client exposes intent-level operations over a Sender. It holds no
// connection or protocol state. Calls that share a connection must be
// serialized by the caller (one owning goroutine, or an external
// mutex): interleaved sequences can corrupt the CAP and SASL
// handshakes in ways that only surface against a live server.
type Client struct {
	sender Sender
	clock  func() time.Time
}

func NewClient(sender Sender) *Client {
	return &Client{
		sender: sender,
		clock:  time.Now,
	}
}

func (client *Client) send(msg ircmsg.Message) error {
	return client.sender.Send(msg)
}

// sendAll sends a sequence of commands in order, stopping at the first
// failure. A failure after the first command is reported as a
// *PartialSendError so the caller can tell a partially delivered
// sequence from one that never started.
func (client *Client) sendAll(msgs []ircmsg.Message) error {
	for i, msg := range msgs {
		if err := client.send(msg); err != nil {
			if i > 0 {
				return &PartialSendError{Sent: i, Err: err}
			}
			return err
		}
	}
	return nil
}

// capability negotiation

// SendCapLS requests the server's capability list for the given
// negotiation version.
func (client *Client) SendCapLS(version caps.Version) error {
	return client.send(CapLS(version))
}

// SendCapReq requests the given capabilities. All capability requests
// must be issued before Identify; this is a protocol invariant the
// library documents but does not enforce.
func (client *Client) SendCapReq(capabilities ...caps.Capability) error {
	msg, err := CapReq(capabilities...)
	if err != nil {
		return err
	}
	return client.send(msg)
}

// Identify ends capability negotiation and registers the connection:
// CAP END, then PASS (only with a non-empty password), then NICK and
// USER. Username and realname fall back to the nickname when unset.
func (client *Client) Identify(config Config) error {
	// committing to non-negotiation mode happens here, before the
	// credential check, matching the wire order
	if err := client.send(CapEnd()); err != nil {
		return err
	}
	if config.Password != "" {
		if err := client.send(Pass(config.Password)); err != nil {
			return err
		}
	}
	if config.Nick == "" {
		return ErrNicknameMissing
	}
	if err := client.send(Nick(config.Nick)); err != nil {
		return err
	}
	username := config.Username
	if username == "" {
		username = config.Nick
	}
	realname := config.Realname
	if realname == "" {
		realname = config.Nick
	}
	return client.send(User(username, realname))
}

// authentication

// SendSASL sends an AUTHENTICATE command with the given payload.
func (client *Client) SendSASL(payload string) error {
	return client.send(Authenticate(payload))
}

// SendSASLPlain selects the PLAIN mechanism.
func (client *Client) SendSASLPlain() error {
	return client.SendSASL(sasl.Plain)
}

// SendSASLExternal selects the EXTERNAL mechanism.
func (client *Client) SendSASLExternal() error {
	return client.SendSASL(sasl.External)
}

// SendSASLAbort cancels authentication in progress.
func (client *Client) SendSASLAbort() error {
	return client.SendSASL(sasl.Abort)
}

// SendSASLResponse encodes a raw response and sends it as one or more
// AUTHENTICATE commands, in order, fail-fast.
func (client *Client) SendSASLResponse(raw []byte) error {
	chunks := sasl.EncodeResponse(raw)
	msgs := make([]ircmsg.Message, len(chunks))
	for i, chunk := range chunks {
		msgs[i] = Authenticate(chunk)
	}
	return client.sendAll(msgs)
}

// messages

// SendPrivmsg sends a message to the target. Bodies containing the
// literal \r\n sequence are split into one PRIVMSG per segment, sent
// in order; a mid-sequence failure stops the remaining segments and
// surfaces as *PartialSendError.
func (client *Client) SendPrivmsg(target, message string) error {
	return client.sendSplit("PRIVMSG", target, message)
}

// SendNotice sends a notice to the target, with the same splitting
// behavior as SendPrivmsg.
func (client *Client) SendNotice(target, message string) error {
	return client.sendSplit("NOTICE", target, message)
}

// splitMessage splits a body on the literal two-byte \r\n sequence
// (never a bare \n) into one command per segment.
func splitMessage(verb, target, message string) []ircmsg.Message {
	segments := strings.Split(message, "\r\n")
	msgs := make([]ircmsg.Message, len(segments))
	for i, segment := range segments {
		msgs[i] = trailing(verb, target, segment)
	}
	return msgs
}

func (client *Client) sendSplit(verb, target, message string) error {
	return client.sendAll(splitMessage(verb, target, message))
}

// channel and server operations

func (client *Client) SendPong(message string) error {
	return client.send(Pong(message))
}

func (client *Client) SendJoin(chanlist string) error {
	return client.send(Join(chanlist))
}

func (client *Client) SendJoinWithKeys(chanlist, keylist string) error {
	return client.send(JoinWithKeys(chanlist, keylist))
}

func (client *Client) SendPart(chanlist string) error {
	return client.send(Part(chanlist))
}

func (client *Client) SendOper(username, password string) error {
	return client.send(Oper(username, password))
}

func (client *Client) SendTopic(channel, topic string) error {
	return client.send(Topic(channel, topic))
}

func (client *Client) SendKill(target, message string) error {
	return client.send(Kill(target, message))
}

func (client *Client) SendKick(chanlist, nicklist, comment string) error {
	return client.send(Kick(chanlist, nicklist, comment))
}

// SendMode changes modes on a target under the given grammar.
func (client *Client) SendMode(grammar modes.Grammar, target string, changes ...modes.ModeChange) error {
	return client.send(ModeCommand(grammar, target, modes.ModeChanges(changes)))
}

// SendChannelMode changes modes on a channel.
func (client *Client) SendChannelMode(channel string, changes ...modes.ModeChange) error {
	return client.SendMode(modes.ChannelGrammar{}, channel, changes...)
}

// SendUserMode changes modes on a user.
func (client *Client) SendUserMode(nickname string, changes ...modes.ModeChange) error {
	return client.SendMode(modes.UserGrammar{}, nickname, changes...)
}

func (client *Client) SendSamode(target, mode, modeparams string) error {
	return client.send(Samode(target, mode, modeparams))
}

func (client *Client) SendSanick(oldNick, newNick string) error {
	return client.send(Sanick(oldNick, newNick))
}

func (client *Client) SendInvite(nickname, channel string) error {
	return client.send(Invite(nickname, channel))
}

func (client *Client) SendQuit(message string) error {
	return client.send(Quit(message))
}

// CTCP

// SendCTCP sends a CTCP-quoted payload to the target.
func (client *Client) SendCTCP(target, payload string) error {
	return client.SendPrivmsg(target, ctcp.Quote(payload))
}

// SendAction sends an emote to the target.
func (client *Client) SendAction(target, text string) error {
	return client.SendCTCP(target, ctcp.Action(text))
}

func (client *Client) SendFinger(target string) error {
	return client.SendCTCP(target, ctcp.Finger)
}

func (client *Client) SendVersion(target string) error {
	return client.SendCTCP(target, ctcp.Version)
}

func (client *Client) SendSource(target string) error {
	return client.SendCTCP(target, ctcp.Source)
}

func (client *Client) SendUserInfo(target string) error {
	return client.SendCTCP(target, ctcp.UserInfo)
}

func (client *Client) SendTime(target string) error {
	return client.SendCTCP(target, ctcp.Time)
}

// SendCTCPPing sends a ping stamped with the current time.
func (client *Client) SendCTCPPing(target string) error {
	return client.SendCTCP(target, ctcp.Ping(client.clock()))
}
