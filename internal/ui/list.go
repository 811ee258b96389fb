package ui

import "strings"

// channelList is a multi-select list with extended-selection clicks:
// a plain click selects one item, ctrl toggles, shift selects a range from
// the last plain or ctrl click. Only a window of items starting at offset is
// shown; the window follows the cursor.
type channelList struct {
	title    string
	items    []string
	selected map[string]bool
	cursor   int
	anchor   int
	offset   int
}

func newChannelList(title string, items []string) *channelList {
	return &channelList{
		title:    title,
		items:    append([]string(nil), items...),
		selected: make(map[string]bool),
	}
}

// Click applies a mouse click on item i.
func (l *channelList) Click(i int, ctrl, shift bool) {
	if i < 0 || i >= len(l.items) {
		return
	}

	switch {
	case shift:
		if !ctrl {
			clear(l.selected)
		}
		lo, hi := min(l.anchor, i), max(l.anchor, i)
		for k := lo; k <= hi; k++ {
			l.selected[l.items[k]] = true
		}
	case ctrl:
		l.flip(i)
		l.anchor = i
	default:
		clear(l.selected)
		l.selected[l.items[i]] = true
		l.anchor = i
	}

	l.cursor = i
}

// Toggle flips the item under the cursor.
func (l *channelList) Toggle() {
	l.Click(l.cursor, true, false)
}

// SelectCursor selects only the item under the cursor.
func (l *channelList) SelectCursor() {
	l.Click(l.cursor, false, false)
}

// Move shifts the cursor, stopping at the ends.
func (l *channelList) Move(delta int) {
	if len(l.items) == 0 {
		return
	}

	l.cursor = min(max(l.cursor+delta, 0), len(l.items)-1)
}

// window returns the first item shown in h lines, moving the window so the
// cursor stays inside it.
func (l *channelList) window(h int) int {
	if h <= 0 {
		return l.offset
	}

	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+h {
		l.offset = l.cursor - h + 1
	}
	l.offset = min(max(l.offset, 0), max(len(l.items)-h, 0))

	return l.offset
}

// Scroll moves an h-line window by delta items and drags the cursor along
// when it would leave the window.
func (l *channelList) Scroll(delta, h int) {
	if len(l.items) == 0 || h <= 0 {
		return
	}

	l.offset = min(max(l.offset+delta, 0), max(len(l.items)-h, 0))
	l.cursor = min(max(l.cursor, l.offset), l.offset+min(h, len(l.items))-1)
}

// Selection returns the selected items in list order.
func (l *channelList) Selection() []string {
	var out []string
	for _, it := range l.items {
		if l.selected[it] {
			out = append(out, it)
		}
	}

	return out
}

func (l *channelList) flip(i int) {
	name := l.items[i]
	if l.selected[name] {
		delete(l.selected, name)
		return
	}
	l.selected[name] = true
}

// lines renders the title followed by the h items of the current window.
// Arrows in the title mark items scrolled out of view.
func (l *channelList) lines(focused bool, st styles, h int) []string {
	first := l.window(h)
	last := min(first+h, len(l.items))
	out := make([]string, 0, last-first+1)

	title := l.title
	if first > 0 {
		title += " ▲"
	}
	if last < len(l.items) {
		title += " ▼"
	}
	if focused {
		title = st.focus.Render(title)
	} else {
		title = st.heading.Render(title)
	}
	out = append(out, title)

	for i := first; i < last; i++ {
		it := l.items[i]
		var b strings.Builder
		if focused && i == l.cursor {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}

		if l.selected[it] {
			b.WriteString(st.selected.Render("● " + it))
		} else {
			b.WriteString(st.item.Render("○ " + it))
		}
		out = append(out, b.String())
	}

	return out
}
