// Copyright (c) 2021 Shivaram Lingamneni
// released under the MIT license

package modes

// Grammar determines how a mode change list is expressed on the wire
// for one kind of target, and which verb wraps it. Supporting a new
// target kind means adding a Grammar implementation; the command
// builders never change.
type Grammar interface {
	// Verb returns the command verb wrapping the rendered change list.
	Verb() string
	// Render returns the command's parameter list, starting with the target.
	Render(target string, changes ModeChanges) []string
}

// ChannelGrammar renders mode changes applied to a channel.
type ChannelGrammar struct{}

func (ChannelGrammar) Verb() string {
	return "MODE"
}

func (ChannelGrammar) Render(target string, changes ModeChanges) []string {
	return append([]string{target}, changes.Strings()...)
}

// UserGrammar renders mode changes applied to a user (typically the
// client's own nickname).
type UserGrammar struct{}

func (UserGrammar) Verb() string {
	return "MODE"
}

func (UserGrammar) Render(target string, changes ModeChanges) []string {
	return append([]string{target}, changes.Strings()...)
}
