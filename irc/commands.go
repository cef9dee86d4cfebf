// Copyright (c) 2021 Shivaram Lingamneni
// released under the MIT license

package irc

import (
	"strings"

	"github.com/ergochat/irc-go/ircmsg"

	"github.com/ergochat/gossip/irc/caps"
	"github.com/ergochat/gossip/irc/modes"
)

// Command builders. Each builder is a pure function mapping an intent
// to exactly one wire command; none of them perform I/O. List-valued
// parameters (chanlists, nicklists, keylists) pass through verbatim.

// servers diverge on how they treat a bare QUIT, so one is never sent
const defaultQuitMessage = "https://ergo.chat/about"

func command(name string, params ...string) ircmsg.Message {
	return ircmsg.MakeMessage(nil, "", name, params...)
}

// trailing builds a command whose final parameter always carries the
// trailing sentinel, even when it contains no spaces.
func trailing(name string, params ...string) ircmsg.Message {
	msg := ircmsg.MakeMessage(nil, "", name, params...)
	msg.ForceTrailing()
	return msg
}

// CapLS requests the server's capability list. Version 302 and up is
// advertised as an argument; the base protocol revision sends none.
func CapLS(version caps.Version) ircmsg.Message {
	if version >= caps.Cap302 {
		return command("CAP", "LS", "302")
	}
	return command("CAP", "LS")
}

// CapReq requests the given capabilities, in the given order.
func CapReq(capabilities ...caps.Capability) (ircmsg.Message, error) {
	if len(capabilities) == 0 {
		return ircmsg.Message{}, ErrEmptyCapabilityList
	}
	names := make([]string, len(capabilities))
	for i, capability := range capabilities {
		names[i] = capability.Name()
	}
	return trailing("CAP", "REQ", strings.Join(names, " ")), nil
}

// CapEnd closes capability negotiation. Once sent, the connection is
// committed to completing registration.
func CapEnd() ircmsg.Message {
	return command("CAP", "END")
}

func Pass(password string) ircmsg.Message {
	return trailing("PASS", password)
}

func Nick(nickname string) ircmsg.Message {
	return trailing("NICK", nickname)
}

func User(username, realname string) ircmsg.Message {
	return trailing("USER", username, "0", "*", realname)
}

// Authenticate wraps a payload in the SASL continuation command.
func Authenticate(payload string) ircmsg.Message {
	return command("AUTHENTICATE", payload)
}

func Pong(message string) ircmsg.Message {
	return trailing("PONG", message)
}

func Join(chanlist string) ircmsg.Message {
	return command("JOIN", chanlist)
}

func JoinWithKeys(chanlist, keylist string) ircmsg.Message {
	return command("JOIN", chanlist, keylist)
}

func Part(chanlist string) ircmsg.Message {
	return command("PART", chanlist)
}

func Oper(username, password string) ircmsg.Message {
	return trailing("OPER", username, password)
}

func Privmsg(target, text string) ircmsg.Message {
	return trailing("PRIVMSG", target, text)
}

func Notice(target, text string) ircmsg.Message {
	return trailing("NOTICE", target, text)
}

// Topic sets the topic of a channel, or requests the current one: an
// empty topic is omitted entirely, not sent as an empty parameter.
func Topic(channel, topic string) ircmsg.Message {
	if topic == "" {
		return command("TOPIC", channel)
	}
	return trailing("TOPIC", channel, topic)
}

func Kill(target, message string) ircmsg.Message {
	return trailing("KILL", target, message)
}

// Kick removes the listed nicknames from the listed channels. An empty
// comment is omitted entirely.
func Kick(chanlist, nicklist, comment string) ircmsg.Message {
	if comment == "" {
		return command("KICK", chanlist, nicklist)
	}
	return trailing("KICK", chanlist, nicklist, comment)
}

// ModeCommand renders a mode change list under the given grammar. Flag
// characters are passed through uninterpreted.
func ModeCommand(grammar modes.Grammar, target string, changes modes.ModeChanges) ircmsg.Message {
	return command(grammar.Verb(), grammar.Render(target, changes)...)
}

// Samode forces a mode change as a server administrator. Empty
// modeparams are omitted entirely.
func Samode(target, mode, modeparams string) ircmsg.Message {
	if modeparams == "" {
		return command("SAMODE", target, mode)
	}
	return command("SAMODE", target, mode, modeparams)
}

// Sanick forces a user to change from the old nickname to the new one.
func Sanick(oldNick, newNick string) ircmsg.Message {
	return command("SANICK", oldNick, newNick)
}

func Invite(nickname, channel string) ircmsg.Message {
	return command("INVITE", nickname, channel)
}

// Quit leaves the network. An empty message is replaced with a fixed
// default rather than sending a bare QUIT.
func Quit(message string) ircmsg.Message {
	if message == "" {
		message = defaultQuitMessage
	}
	return trailing("QUIT", message)
}
