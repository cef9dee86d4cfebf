// Copyright (c) 2021 Shivaram Lingamneni
// released under the MIT license

package main

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/ergochat/irc-go/ircmsg"

	"github.com/ergochat/gossip/irc"
	"github.com/ergochat/gossip/irc/caps"
	"github.com/ergochat/gossip/irc/ctcp"
	"github.com/ergochat/gossip/irc/logger"
	"github.com/ergochat/gossip/irc/modes"
	"github.com/ergochat/gossip/irc/sasl"
)

// set via linker flags, either by make or by goreleaser:
var commit = ""  // git hash
var version = "" // tagged version

// session ties the command layer to one connection's incoming lines.
// All registration and authentication traffic originates in the read
// loop; the stdin loop only sends standalone messages. That keeps the
// handshake sequences single-writer.
type session struct {
	client     *irc.Client
	config     *irc.Config
	logman     *logger.Manager
	enabled    *caps.Set
	scram      *sasl.ScramConversation
	foldedNick string
}

func (s *session) handleLine(line string) {
	msg, err := ircmsg.ParseLine(line)
	if err != nil {
		s.logman.Warning("server", "received malformed line", err.Error())
		return
	}

	switch msg.Command {
	case "PING":
		param := ""
		if len(msg.Params) > 0 {
			param = msg.Params[0]
		}
		s.check(s.client.SendPong(param))
	case "CAP":
		s.handleCap(msg)
	case "AUTHENTICATE":
		s.handleAuthenticate(msg)
	case "903":
		s.logman.Info("server", "authentication successful")
		s.check(s.client.Identify(*s.config))
	case "902", "904", "905", "906":
		s.logman.Warning("server", "authentication failed, registering without it")
		s.check(s.client.SendSASLAbort())
		s.check(s.client.Identify(*s.config))
	case "001":
		if len(s.config.Channels) > 0 {
			s.check(s.client.SendJoin(strings.Join(s.config.Channels, ",")))
		}
	case "MODE":
		s.handleMode(msg)
	case "PRIVMSG":
		s.handlePrivmsg(msg)
	}
}

func (s *session) handleCap(msg ircmsg.Message) {
	if len(msg.Params) < 2 {
		return
	}
	switch msg.Params[1] {
	case "ACK":
		for _, name := range strings.Fields(msg.Params[len(msg.Params)-1]) {
			s.enabled.Enable(caps.Capability(name))
		}
		s.logman.Debug("server", "capabilities enabled", s.enabled.String())
		if s.config.SASL.Enabled && s.enabled.Has(caps.SASL) {
			s.beginSASL()
		} else {
			s.check(s.client.Identify(*s.config))
		}
	case "NAK":
		s.logman.Warning("server", "capabilities rejected", msg.Params[len(msg.Params)-1])
		s.check(s.client.Identify(*s.config))
	}
}

func (s *session) beginSASL() {
	if s.config.SASL.Mechanism == sasl.ScramSHA256 {
		conv, err := sasl.NewScramSHA256(s.config.SASL.Authzid, s.config.SASL.Username, s.config.SASL.Password)
		if err != nil {
			s.logman.Error("server", "could not initialize scram", err.Error())
			s.check(s.client.Identify(*s.config))
			return
		}
		s.scram = conv
	}
	s.check(s.client.SendSASL(s.config.SASL.Mechanism))
}

func (s *session) handleAuthenticate(msg ircmsg.Message) {
	var challenge []byte
	if len(msg.Params) > 0 && msg.Params[0] != "+" {
		var err error
		challenge, err = base64.StdEncoding.DecodeString(msg.Params[0])
		if err != nil {
			s.logman.Warning("server", "malformed sasl challenge", err.Error())
			s.check(s.client.SendSASLAbort())
			return
		}
	}

	switch s.config.SASL.Mechanism {
	case sasl.Plain:
		s.check(s.client.SendSASLResponse(
			sasl.PlainResponse(s.config.SASL.Authzid, s.config.SASL.Username, s.config.SASL.Password)))
	case sasl.External:
		s.check(s.client.SendSASLResponse(nil))
	case sasl.ScramSHA256:
		if s.scram == nil {
			s.check(s.client.SendSASLAbort())
			return
		}
		response, err := s.scram.Step(challenge)
		if err != nil {
			s.logman.Warning("server", "scram conversation failed", err.Error())
			s.check(s.client.SendSASLAbort())
			return
		}
		s.check(s.client.SendSASLResponse(response))
	}
}

func (s *session) handleMode(msg ircmsg.Message) {
	if len(msg.Params) < 2 {
		return
	}
	folded, err := irc.Casefold(msg.Params[0])
	if err != nil || folded != s.foldedNick {
		return
	}
	changes, _ := modes.ParseUserModeChanges(msg.Params[1:]...)
	if len(changes) > 0 {
		s.logman.Info("server", "user modes changed", strings.Join(changes.Strings(), " "))
	}
}

func (s *session) handlePrivmsg(msg ircmsg.Message) {
	if len(msg.Params) < 2 {
		return
	}
	target, body := msg.Params[0], msg.Params[1]
	nick := msg.Nick()

	if payload, ok := ctcp.Unquote(body); ok {
		s.handleCTCP(nick, payload)
		return
	}

	// strip any STATUSMSG prefixes before deciding where the message
	// was addressed
	_, name := modes.SplitChannelMembershipPrefixes(target)
	folded, err := irc.Casefold(name)
	if err == nil && folded == s.foldedNick {
		fmt.Printf("[%s -> you] %s\n", nick, body)
	} else {
		fmt.Printf("[%s] <%s> %s\n", name, nick, body)
	}
}

func (s *session) handleCTCP(nick, payload string) {
	keyword, args, _ := strings.Cut(payload, " ")
	switch keyword {
	case "ACTION":
		fmt.Printf("* %s %s\n", nick, args)
	case ctcp.Version:
		s.check(s.client.SendNotice(nick, ctcp.Quote("VERSION "+irc.Ver)))
	case "PING":
		// echo the payload back so the peer can compute the round trip
		s.check(s.client.SendNotice(nick, ctcp.Quote(payload)))
	case ctcp.Time:
		s.check(s.client.SendNotice(nick, ctcp.Quote("TIME "+time.Now().Format(time.RFC1123))))
	}
}

func (s *session) handleInput(line string) {
	if line == "" {
		return
	}
	if !strings.HasPrefix(line, "/") {
		if len(s.config.Channels) > 0 {
			s.check(s.client.SendPrivmsg(s.config.Channels[0], line))
		}
		return
	}

	command, rest, _ := strings.Cut(line[1:], " ")
	switch strings.ToLower(command) {
	case "join":
		s.check(s.client.SendJoin(rest))
	case "part":
		s.check(s.client.SendPart(rest))
	case "topic":
		channel, topic, _ := strings.Cut(rest, " ")
		s.check(s.client.SendTopic(channel, topic))
	case "msg":
		target, text, _ := strings.Cut(rest, " ")
		s.check(s.client.SendPrivmsg(target, text))
	case "notice":
		target, text, _ := strings.Cut(rest, " ")
		s.check(s.client.SendNotice(target, text))
	case "me":
		target, text, _ := strings.Cut(rest, " ")
		s.check(s.client.SendAction(target, text))
	case "ping":
		s.check(s.client.SendCTCPPing(rest))
	case "mode":
		args := strings.Fields(rest)
		if len(args) < 2 {
			return
		}
		changes, unknown := modes.ParseChannelModeChanges(args[1:]...)
		if len(unknown) > 0 {
			s.logman.Warning("client", "ignoring unknown mode characters", string(unknown))
		}
		if len(changes) > 0 {
			s.check(s.client.SendChannelMode(args[0], changes...))
		}
	case "quit":
		s.check(s.client.SendQuit(rest))
	default:
		s.logman.Warning("client", "unknown command", command)
	}
}

func (s *session) check(err error) {
	if err != nil {
		s.logman.Error("client", "could not send", err.Error())
	}
}

func (s *session) readStdin() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		s.handleInput(strings.TrimRight(scanner.Text(), " "))
	}
}

func run(config *irc.Config, logman *logger.Manager) error {
	conn, err := irc.Dial(config.Server, logman)
	if err != nil {
		return err
	}
	defer conn.Close()

	foldedNick, err := irc.Casefold(config.Nick)
	if err != nil {
		return err
	}

	s := &session{
		client:     irc.NewClient(conn),
		config:     config,
		logman:     logman,
		enabled:    caps.NewSet(),
		foldedNick: foldedNick,
	}

	// all capability requests must precede Identify, which the read
	// loop issues once negotiation resolves
	if err := s.client.SendCapLS(caps.Cap302); err != nil {
		return err
	}
	requested := []caps.Capability{caps.MultiPrefix, caps.ServerTime, caps.UserhostInNames}
	if config.SASL.Enabled {
		requested = append(requested, caps.SASL)
	}
	if err := s.client.SendCapReq(requested...); err != nil {
		return err
	}

	go s.readStdin()

	for {
		line, err := conn.ReadLine()
		if err != nil {
			return err
		}
		s.handleLine(line)
	}
}

func main() {
	irc.SetVersionString(version, commit)
	usage := `gossip.
Usage:
	gossip run [--conf <filename>]
	gossip -h | --help
	gossip --version
Options:
	--conf <filename>  Configuration file to use [default: gossip.yaml].
	-h --help          Show this screen.
	--version          Show version.`

	arguments, _ := docopt.ParseArgs(usage, nil, irc.Ver)

	configfile := arguments["--conf"].(string)
	config, err := irc.LoadConfig(configfile)
	if err != nil {
		log.Fatal("Config file did not load successfully: ", err.Error())
	}

	logman, err := logger.NewManager(config.Logging)
	if err != nil {
		log.Fatal("Logger did not load successfully: ", err.Error())
	}

	if arguments["run"].(bool) {
		if err := run(config, logman); err != nil {
			logman.Error("server", fmt.Sprintf("connection ended: %s", err.Error()))
			os.Exit(1)
		}
	}
}
