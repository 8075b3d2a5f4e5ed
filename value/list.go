package value

import "strings"

// List is an ordered sequence of values. A list owns its elements.
type List struct {
	entries []Value
}

func NewList(entries ...Value) *List {
	return &List{entries: entries}
}

func (l *List) Append(v Value) {
	l.entries = append(l.entries, v)
}

// Get returns a borrowed reference to the i-th element, or nil when i is out
// of range.
func (l *List) Get(i int) Value {
	if i < 0 || i >= len(l.entries) {
		return nil
	}
	return l.entries[i]
}

func (l *List) Size() int {
	return len(l.entries)
}

func (l *List) Hash() uint32 {
	var h uint32 = 1
	for _, v := range l.entries {
		h = 31*h + v.Hash()
	}
	return h
}

func (l *List) Equals(other Value) bool {
	o, ok := other.(*List)
	if !ok {
		return false
	}
	if o == l {
		return true
	}
	if len(o.entries) != len(l.entries) {
		return false
	}
	for i, v := range l.entries {
		if !v.Equals(o.entries[i]) {
			return false
		}
	}
	return true
}

func (l *List) Destroy() {
	for _, v := range l.entries {
		v.Destroy()
	}
	l.entries = nil
}

func (l *List) String() string {
	s := make([]string, 0, len(l.entries))
	for _, v := range l.entries {
		s = append(s, v.String())
	}
	return "[" + strings.Join(s, ", ") + "]"
}
