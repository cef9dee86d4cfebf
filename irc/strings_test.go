// Copyright (c) 2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package irc

import "testing"

func TestCasefoldChannel(t *testing.T) {
	type channelTest struct {
		channel string
		folded  string
		err     bool
	}
	testCases := []channelTest{
		{
			channel: "#foo",
			folded:  "#foo",
		},
		{
			channel: "#rfc1459[noncompliant]",
			folded:  "#rfc1459[noncompliant]",
		},
		{
			channel: "#{[]}",
			folded:  "#{[]}",
		},
		{
			channel: "#FUN",
			folded:  "#fun",
		},
		{
			channel: "#ergo¡sta",
			folded:  "#ergo¡sta",
		},
		{
			channel: "#无聊老板",
			folded:  "#无聊老板",
		},
	}

	for _, errCase := range []string{
		"", "#*starpower", "# NASA", "#interro?", "OOF#", "foo",
	} {
		testCases = append(testCases, channelTest{channel: errCase, err: true})
	}

	for _, tt := range testCases {
		t.Run(tt.channel, func(t *testing.T) {
			res, err := CasefoldChannel(tt.channel)
			if tt.err {
				if err == nil {
					t.Errorf("expected error when casefolding [%s], but did not receive one", tt.channel)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error while casefolding [%s]: %s", tt.channel, err.Error())
				return
			}
			if tt.folded != res {
				t.Errorf("expected [%v] to be [%v]", res, tt.folded)
			}
		})
	}
}

func TestCasefold(t *testing.T) {
	testCases := []struct {
		name   string
		folded string
		err    bool
	}{
		{name: "Shivaram", folded: "shivaram"},
		{name: "wrmsr", folded: "wrmsr"},
		{name: "ÏRCv3", folded: "ïrcv3"},
		{name: "no spaces", err: true},
	}

	for _, tt := range testCases {
		res, err := Casefold(tt.name)
		if tt.err {
			if err == nil {
				t.Errorf("expected error when casefolding [%s], but did not receive one", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("unexpected error while casefolding [%s]: %s", tt.name, err.Error())
			continue
		}
		if tt.folded != res {
			t.Errorf("expected [%v] to fold to [%v], got [%v]", tt.name, tt.folded, res)
		}
	}
}
