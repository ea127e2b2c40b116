package playback

import (
	"fmt"
	"sort"
	"strings"
)

// Key is a key name as reported by a surface, e.g. "q" or "B".
type Key string

const (
	// NoKey is returned when the wait elapsed without input.
	NoKey Key = ""
	// KeyClosed is returned once the surface has been closed by the user.
	KeyClosed Key = "\x00closed"
)

type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdBaseline
	CmdHold
)

func (c Command) String() string {
	switch c {
	case CmdQuit:
		return "quit"
	case CmdBaseline:
		return "baseline"
	case CmdHold:
		return "hold"
	}
	return "none"
}

// Keymap binds keys to commands. Unbound keys are ignored.
type Keymap map[Key]Command

// DefaultKeymap binds quit to q/Q and baseline selection to b. Hold is left
// unbound.
func DefaultKeymap() Keymap {
	return NewKeymap([]string{"q", "Q"}, []string{"b"}, nil)
}

func NewKeymap(quit, baseline, hold []string) Keymap {
	km := make(Keymap)
	bind := func(keys []string, cmd Command) {
		for _, k := range keys {
			if k != "" {
				km[Key(k)] = cmd
			}
		}
	}
	bind(hold, CmdHold)
	bind(baseline, CmdBaseline)
	bind(quit, CmdQuit)
	return km
}

func (km Keymap) Lookup(k Key) Command {
	if k == KeyClosed {
		return CmdQuit
	}
	return km[k]
}

// Help renders the bindings as "q/Q:quit b:baseline".
func (km Keymap) Help() string {
	var parts []string
	for _, cmd := range []Command{CmdQuit, CmdBaseline, CmdHold} {
		var keys []string
		for k, c := range km {
			if c == cmd {
				keys = append(keys, string(k))
			}
		}
		if len(keys) == 0 {
			continue
		}
		sort.Strings(keys)
		parts = append(parts, strings.Join(keys, "/")+":"+cmd.String())
	}
	return strings.Join(parts, " ")
}

// SelectionPolicy decides what an empty region-picker result does.
type SelectionPolicy int

const (
	// ClearOnEmpty replaces the region unconditionally, so an empty pick
	// returns to global normalization.
	ClearOnEmpty SelectionPolicy = iota
	// KeepOnEmpty leaves the previous region in place on an empty pick.
	KeepOnEmpty
)

func (p SelectionPolicy) String() string {
	if p == KeepOnEmpty {
		return "keep"
	}
	return "clear"
}

func ParseSelectionPolicy(s string) (SelectionPolicy, error) {
	switch strings.ToLower(s) {
	case "", "clear":
		return ClearOnEmpty, nil
	case "keep":
		return KeepOnEmpty, nil
	}
	return ClearOnEmpty, fmt.Errorf("unknown empty selection policy %q", s)
}
