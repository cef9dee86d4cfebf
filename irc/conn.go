// Copyright (c) 2020 Shivaram Lingamneni
// released under the MIT license

package irc

import (
	"bufio"
	"bytes"
	"crypto/tls"
	"net"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ergochat/irc-go/ircmsg"
	"github.com/gorilla/websocket"

	"github.com/ergochat/gossip/irc/logger"
)

const (
	maxReadQBytes = ircmsg.MaxlenTags + 512 + 1024
)

var (
	crlf = []byte{'\r', '\n'}
)

// IRCConn abstracts away the distinction between a regular
// net.Conn (which includes both raw TCP and TLS) and a websocket.
// it doesn't expose Read and Write because websockets are message-oriented,
// not stream-oriented.
type IRCConn interface {
	Write([]byte) error
	ReadLine() (line []byte, err error)

	Close() error
}

// IRCStreamConn is an IRCConn over a regular stream connection.
type IRCStreamConn struct {
	conn   net.Conn
	reader *bufio.Reader
}

func NewIRCStreamConn(conn net.Conn) *IRCStreamConn {
	return &IRCStreamConn{
		conn: conn,
	}
}

func (sc *IRCStreamConn) Write(buf []byte) (err error) {
	_, err = sc.conn.Write(buf)
	return
}

func (sc *IRCStreamConn) ReadLine() (line []byte, err error) {
	if sc.reader == nil {
		sc.reader = bufio.NewReaderSize(sc.conn, maxReadQBytes)
	}

	var isPrefix bool
	line, isPrefix, err = sc.reader.ReadLine()
	if isPrefix {
		return nil, errReadQ
	}
	line = bytes.TrimSuffix(line, crlf)
	return
}

func (sc *IRCStreamConn) Close() (err error) {
	return sc.conn.Close()
}

// IRCWSConn is an IRCConn over a websocket.
type IRCWSConn struct {
	conn *websocket.Conn
}

func NewIRCWSConn(conn *websocket.Conn) IRCWSConn {
	return IRCWSConn{conn: conn}
}

func (wc IRCWSConn) Write(buf []byte) (err error) {
	buf = bytes.TrimSuffix(buf, crlf)
	// there's not much we can do about this;
	// silently drop the message
	if !utf8.Valid(buf) {
		return nil
	}
	return wc.conn.WriteMessage(websocket.TextMessage, buf)
}

func (wc IRCWSConn) ReadLine() (line []byte, err error) {
	for {
		var messageType int
		messageType, line, err = wc.conn.ReadMessage()
		// on empty message or non-text message, try again, block if necessary
		if err != nil || (messageType == websocket.TextMessage && len(line) != 0) {
			return
		}
	}
}

func (wc IRCWSConn) Close() (err error) {
	return wc.conn.Close()
}

// Conn is a Sender over a single connection: it frames each command as
// a CRLF-terminated line and writes it out. Writes are serialized, so
// each command goes out whole, but callers still own the ordering of
// multi-command sequences (see Client).
type Conn struct {
	socket IRCConn
	logger *logger.Manager

	writeMutex sync.Mutex
}

// Dial connects per the server config: a websocket when websocket-url
// is set, otherwise TCP, with TLS per the tls block.
func Dial(config ServerConfig, log *logger.Manager) (*Conn, error) {
	var socket IRCConn
	if config.WebsocketURL != "" {
		wsConn, _, err := websocket.DefaultDialer.Dial(config.WebsocketURL, nil)
		if err != nil {
			return nil, err
		}
		socket = NewIRCWSConn(wsConn)
	} else if config.TLS.Enabled {
		serverName := config.TLS.ServerName
		if serverName == "" {
			serverName, _, _ = net.SplitHostPort(config.Address)
		}
		tlsConn, err := tls.Dial("tcp", config.Address, &tls.Config{
			ServerName:         serverName,
			InsecureSkipVerify: config.TLS.InsecureSkipVerify,
		})
		if err != nil {
			return nil, err
		}
		socket = NewIRCStreamConn(tlsConn)
	} else {
		netConn, err := net.Dial("tcp", config.Address)
		if err != nil {
			return nil, err
		}
		socket = NewIRCStreamConn(netConn)
	}

	return &Conn{
		socket: socket,
		logger: log,
	}, nil
}

// Send implements Sender.
func (conn *Conn) Send(msg ircmsg.Message) error {
	line, err := msg.LineBytesStrict(true, 512)
	if err != nil {
		return err
	}
	if conn.logger.IsLoggingRawIO() {
		conn.logger.Debug("useroutput", strings.TrimSuffix(string(line), "\r\n"))
	}
	conn.writeMutex.Lock()
	defer conn.writeMutex.Unlock()
	return conn.socket.Write(line)
}

// ReadLine returns the next line from the server, without its line
// ending, blocking if necessary.
func (conn *Conn) ReadLine() (string, error) {
	line, err := conn.socket.ReadLine()
	if err != nil {
		return "", err
	}
	if conn.logger.IsLoggingRawIO() {
		conn.logger.Debug("userinput", string(line))
	}
	return string(line), nil
}

func (conn *Conn) Close() error {
	return conn.socket.Close()
}
