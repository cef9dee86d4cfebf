// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package modes

import (
	"slices"
	"strings"
)

var (
	// SupportedUserModes are the user modes that we know how to interpret.
	SupportedUserModes = Modes{
		Bot, Invisible, Operator, RegisteredOnly, ServerNotice, WallOps,
	}

	// SupportedChannelModes are the channel modes that we know how to interpret.
	SupportedChannelModes = Modes{
		BanMask, ExceptMask, InviteMask, InviteOnly, Key, Moderated,
		NoOutside, OpOnlyTopic, RegisteredOnly, Secret, UserLimit,
	}
)

// ModeOp is an operation performed with modes
type ModeOp rune

const (
	// Add is used when adding the given key.
	Add ModeOp = '+'
	// List is used when listing modes (for instance, listing the current bans on a channel).
	List ModeOp = '='
	// Remove is used when taking away the given key.
	Remove ModeOp = '-'
)

// Mode represents a user/channel/server mode
type Mode rune

func (mode Mode) String() string {
	return string(mode)
}

// ModeChange is a single mode changing
type ModeChange struct {
	Mode Mode
	Op   ModeOp
	Arg  string
}

// ModeChanges are a collection of 'ModeChange's
type ModeChanges []ModeChange

// Strings serializes the changes as a MODE-style parameter list: one
// run of signs and flags, with the sign emitted only when it changes,
// followed by every non-empty argument in declaration order.
func (changes ModeChanges) Strings() (result []string) {
	if len(changes) == 0 {
		return
	}

	var builder strings.Builder

	op := changes[0].Op
	builder.WriteRune(rune(op))

	for _, change := range changes {
		if change.Op != op {
			op = change.Op
			builder.WriteRune(rune(op))
		}
		builder.WriteRune(rune(change.Mode))
	}

	result = append(result, builder.String())

	for _, change := range changes {
		if change.Arg == "" {
			continue
		}
		result = append(result, change.Arg)
	}
	return
}

// Plus is a shorthand for an additive mode change.
func Plus(mode Mode, arg string) ModeChange {
	return ModeChange{Op: Add, Mode: mode, Arg: arg}
}

// Minus is a shorthand for a subtractive mode change.
func Minus(mode Mode, arg string) ModeChange {
	return ModeChange{Op: Remove, Mode: mode, Arg: arg}
}

// Modes is just a raw list of modes
type Modes []Mode

func (modes Modes) String() string {
	var builder strings.Builder
	for _, m := range modes {
		builder.WriteRune(rune(m))
	}
	return builder.String()
}

// User Modes
const (
	Bot            Mode = 'B'
	Invisible      Mode = 'i'
	Operator       Mode = 'o'
	Restricted     Mode = 'r'
	RegisteredOnly Mode = 'R'
	ServerNotice   Mode = 's'
	TLS            Mode = 'Z'
	WallOps        Mode = 'w'
)

// Channel Modes
const (
	BanMask     Mode = 'b' // arg
	ExceptMask  Mode = 'e' // arg
	InviteMask  Mode = 'I' // arg
	InviteOnly  Mode = 'i' // flag
	Key         Mode = 'k' // flag arg
	Moderated   Mode = 'm' // flag
	NoOutside   Mode = 'n' // flag
	OpOnlyTopic Mode = 't' // flag
	// RegisteredOnly mode is reused here from umode definition
	Secret    Mode = 's' // flag
	UserLimit Mode = 'l' // flag arg
)

var (
	ChannelFounder  Mode = 'q' // arg
	ChannelAdmin    Mode = 'a' // arg
	ChannelOperator Mode = 'o' // arg
	Halfop          Mode = 'h' // arg
	Voice           Mode = 'v' // arg

	// ChannelUserModes holds the list of all modes that can be applied to a user in a channel,
	// including Voice, in descending order of precedence
	ChannelUserModes = Modes{
		ChannelFounder, ChannelAdmin, ChannelOperator, Halfop, Voice,
	}

	ChannelModePrefixes = map[Mode]string{
		ChannelFounder:  "~",
		ChannelAdmin:    "&",
		ChannelOperator: "@",
		Halfop:          "%",
		Voice:           "+",
	}
)

//
// channel membership prefixes
//

// SplitChannelMembershipPrefixes takes a target and returns the prefixes on it, then the name.
func SplitChannelMembershipPrefixes(target string) (prefixes string, name string) {
	name = target
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '~', '&', '@', '%', '+':
			prefixes = target[:i+1]
			name = target[i+1:]
		default:
			return
		}
	}

	return
}

//
// incoming mode lines
//

// ParseUserModeChanges returns the valid changes, and the list of unknown chars.
func ParseUserModeChanges(params ...string) (changes ModeChanges, unknown []rune) {
	op := List

	if 0 < len(params) {
		modeArg := params[0]
		skipArgs := 1

		for _, mode := range modeArg {
			if mode == '-' || mode == '+' {
				op = ModeOp(mode)
				continue
			}
			change := ModeChange{
				Mode: Mode(mode),
				Op:   op,
			}

			// put arg into modechange if needed
			switch Mode(mode) {
			case ServerNotice:
				// arg is optional for ServerNotice (we accept bare `-s`)
				if len(params) > skipArgs {
					change.Arg = params[skipArgs]
					skipArgs++
				}
			}

			if slices.Contains(SupportedUserModes, Mode(mode)) {
				changes = append(changes, change)
			} else {
				unknown = append(unknown, mode)
			}
		}
	}

	return changes, unknown
}

// ParseChannelModeChanges returns the valid changes, and the list of unknown chars.
func ParseChannelModeChanges(params ...string) (changes ModeChanges, unknown []rune) {
	op := List

	if 0 < len(params) {
		modeArg := params[0]
		skipArgs := 1

		for _, mode := range modeArg {
			if mode == '-' || mode == '+' {
				op = ModeOp(mode)
				continue
			}
			change := ModeChange{
				Mode: Mode(mode),
				Op:   op,
			}

			// put arg into modechange if needed
			switch Mode(mode) {
			case BanMask, ExceptMask, InviteMask:
				if len(params) > skipArgs {
					change.Arg = params[skipArgs]
					skipArgs++
				} else {
					change.Op = List
				}
			case ChannelFounder, ChannelAdmin, ChannelOperator, Halfop, Voice:
				if len(params) > skipArgs {
					change.Arg = params[skipArgs]
					skipArgs++
				} else {
					continue
				}
			case UserLimit:
				// don't require value when removing
				if change.Op == Add {
					if len(params) > skipArgs {
						change.Arg = params[skipArgs]
						skipArgs++
					} else {
						continue
					}
				}
			case Key:
				// +k is technically a type B mode, requiring a parameter
				// both for add and remove. so attempt to consume a parameter,
				// but allow remove (but not add) even if no parameter is available.
				// however, the remove parameter should always display as "*".
				if len(params) > skipArgs {
					if change.Op == Add {
						change.Arg = params[skipArgs]
					}
					skipArgs++
				} else if change.Op == Add {
					continue
				}
				if change.Op == Remove {
					change.Arg = "*"
				}
			}

			if slices.Contains(SupportedChannelModes, Mode(mode)) || slices.Contains(ChannelUserModes, Mode(mode)) {
				changes = append(changes, change)
			} else {
				unknown = append(unknown, mode)
			}
		}
	}

	return changes, unknown
}
