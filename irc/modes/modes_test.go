// Copyright (c) 2018 Shivaram Lingamneni
// released under the MIT license

package modes

import (
	"reflect"
	"testing"
)

func TestParseChannelModeChanges(t *testing.T) {
	modes, unknown := ParseChannelModeChanges("+h", "wrmsr")
	if len(unknown) > 0 {
		t.Errorf("unexpected unknown mode change: %v", unknown)
	}
	expected := ModeChange{
		Op:   Add,
		Mode: Halfop,
		Arg:  "wrmsr",
	}
	if len(modes) != 1 || modes[0] != expected {
		t.Errorf("unexpected mode change: %v", modes)
	}

	modes, unknown = ParseChannelModeChanges("-v", "shivaram")
	if len(unknown) > 0 {
		t.Errorf("unexpected unknown mode change: %v", unknown)
	}
	expected = ModeChange{
		Op:   Remove,
		Mode: Voice,
		Arg:  "shivaram",
	}
	if len(modes) != 1 || modes[0] != expected {
		t.Errorf("unexpected mode change: %v", modes)
	}

	modes, unknown = ParseChannelModeChanges("+tx")
	if len(unknown) != 1 || unknown[0] != 'x' {
		t.Errorf("expected that x is an unknown mode, instead: %v", unknown)
	}
	expected = ModeChange{
		Op:   Add,
		Mode: OpOnlyTopic,
		Arg:  "",
	}
	if len(modes) != 1 || modes[0] != expected {
		t.Errorf("unexpected mode change: %v", modes)
	}

	modes, unknown = ParseChannelModeChanges("-k")
	if len(unknown) > 0 {
		t.Errorf("unexpected unknown mode change: %v", unknown)
	}
	expected = ModeChange{
		Op:   Remove,
		Mode: Key,
		Arg:  "*",
	}
	if len(modes) != 1 || modes[0] != expected {
		t.Errorf("unexpected mode change: %v", modes)
	}
}

func TestModeChangeStrings(t *testing.T) {
	testCases := []struct {
		changes  ModeChanges
		expected []string
	}{
		{nil, nil},
		{ModeChanges{Plus(InviteOnly, "")}, []string{"+i"}},
		{ModeChanges{Plus(InviteOnly, ""), Plus(ChannelOperator, "")}, []string{"+io"}},
		{ModeChanges{Plus(ChannelOperator, "wrmsr")}, []string{"+o", "wrmsr"}},
		// the sign is emitted only when it changes; args trail in
		// declaration order
		{
			ModeChanges{Plus(ChannelOperator, "dan-"), Minus(Voice, "shivaram"), Minus(Moderated, "")},
			[]string{"+o-vm", "dan-", "shivaram"},
		},
		{
			ModeChanges{Minus(Key, "hunter2"), Plus(UserLimit, "50")},
			[]string{"-k+l", "hunter2", "50"},
		},
	}

	for _, tc := range testCases {
		actual := tc.changes.Strings()
		if !reflect.DeepEqual(actual, tc.expected) {
			t.Errorf("%v rendered as %v, expected %v", tc.changes, actual, tc.expected)
		}
	}
}

func TestGrammarRender(t *testing.T) {
	changes := ModeChanges{Plus(InviteOnly, "")}

	grammars := []Grammar{ChannelGrammar{}, UserGrammar{}}
	for _, grammar := range grammars {
		if grammar.Verb() != "MODE" {
			t.Errorf("unexpected verb: %s", grammar.Verb())
		}
	}

	params := ChannelGrammar{}.Render("#test", changes)
	if !reflect.DeepEqual(params, []string{"#test", "+i"}) {
		t.Errorf("unexpected channel render: %v", params)
	}

	params = UserGrammar{}.Render("wrmsr", ModeChanges{Plus(Invisible, "")})
	if !reflect.DeepEqual(params, []string{"wrmsr", "+i"}) {
		t.Errorf("unexpected user render: %v", params)
	}

	// malformed flags pass through uninterpreted
	params = ChannelGrammar{}.Render("#test", ModeChanges{Plus(Mode('ÿ'), "")})
	if !reflect.DeepEqual(params, []string{"#test", "+ÿ"}) {
		t.Errorf("unexpected render of unknown flag: %v", params)
	}
}

func TestSplitChannelMembershipPrefixes(t *testing.T) {
	prefixes, name := SplitChannelMembershipPrefixes("@+#test")
	if prefixes != "@+" || name != "#test" {
		t.Errorf("unexpected split: %q %q", prefixes, name)
	}

	prefixes, name = SplitChannelMembershipPrefixes("#test")
	if prefixes != "" || name != "#test" {
		t.Errorf("unexpected split: %q %q", prefixes, name)
	}
}
