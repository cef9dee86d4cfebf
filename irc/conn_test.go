// Copyright (c) 2020 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the MIT license

package irc

import (
	"bufio"
	"net"
	"testing"

	"github.com/ergochat/gossip/irc/logger"
)

func newTestConn(t *testing.T) (*Conn, net.Conn) {
	t.Helper()
	clientSide, serverSide := net.Pipe()
	logman, err := logger.NewManager(nil)
	if err != nil {
		t.Fatal(err)
	}
	conn := &Conn{
		socket: NewIRCStreamConn(clientSide),
		logger: logman,
	}
	t.Cleanup(func() {
		conn.Close()
		serverSide.Close()
	})
	return conn, serverSide
}

func TestConnSend(t *testing.T) {
	conn, serverSide := newTestConn(t)

	sendErr := make(chan error, 1)
	go func() {
		sendErr <- conn.Send(Privmsg("#test", "Hi, everybody!"))
	}()

	reader := bufio.NewReader(serverSide)
	line, err := reader.ReadString('\n')
	if err != nil {
		t.Fatal(err)
	}
	if line != "PRIVMSG #test :Hi, everybody!\r\n" {
		t.Errorf("unexpected frame on the wire: %q", line)
	}
	if err := <-sendErr; err != nil {
		t.Errorf("send failed: %v", err)
	}
}

func TestConnReadLine(t *testing.T) {
	conn, serverSide := newTestConn(t)

	go func() {
		serverSide.Write([]byte("PING :irc.test.net\r\n"))
	}()

	line, err := conn.ReadLine()
	if err != nil {
		t.Fatal(err)
	}
	if line != "PING :irc.test.net" {
		t.Errorf("unexpected line: %q", line)
	}
}
