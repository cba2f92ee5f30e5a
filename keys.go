package boxel

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Key is a decoded key press. Name follows the "ctrl+c", "enter", "up"
// convention; printable keys are named by their rune.
type Key struct {
	Name string
	Rune rune
}

func (k Key) String() string {
	return k.Name
}

// IsQuit reports whether the key is one of the quit keys, q or ctrl+c.
func (k Key) IsQuit() bool {
	return k.Name == "q" || k.Name == "ctrl+c"
}

var csiKeys = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
}

// ReadKeys decodes raw-mode terminal input into keys. The sequence ends
// silently at EOF; other read errors are yielded once before it ends.
func ReadKeys(r io.Reader) iter.Seq2[Key, error] {
	return func(yield func(Key, error) bool) {
		br := bufio.NewReader(r)
		for {
			k, err := decodeKey(br)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Key{}, err)
				return
			}
			if !yield(k, nil) {
				return
			}
		}
	}
}

func decodeKey(r *bufio.Reader) (Key, error) {
	ru, _, err := r.ReadRune()
	if err != nil {
		return Key{}, err
	}

	switch {
	case ru == 0x1b:
		return decodeEscape(r)
	case ru == '\r' || ru == '\n':
		return Key{Name: "enter"}, nil
	case ru == '\t':
		return Key{Name: "tab"}, nil
	case ru == 0x7f || ru == 0x08:
		return Key{Name: "backspace"}, nil
	case ru == 0:
		return Key{Name: "ctrl+@"}, nil
	case ru < 0x20:
		return Key{Name: "ctrl+" + string('a'+ru-1)}, nil
	}
	return Key{Name: string(ru), Rune: ru}, nil
}

// decodeEscape handles input after ESC. A lone ESC has nothing buffered
// behind it; a CSI or SS3 sequence arrives in the same read.
func decodeEscape(r *bufio.Reader) (Key, error) {
	if r.Buffered() == 0 {
		return Key{Name: "esc"}, nil
	}
	next, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if next != '[' && next != 'O' {
		if err := r.UnreadByte(); err != nil {
			return Key{}, err
		}
		return Key{Name: "esc"}, nil
	}

	// Parameters and intermediates run until a final byte in 0x40-0x7e.
	for {
		b, err := r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		if b >= 0x40 && b <= 0x7e {
			if name, ok := csiKeys[b]; ok {
				return Key{Name: name}, nil
			}
			return Key{Name: "unknown"}, nil
		}
	}
}
