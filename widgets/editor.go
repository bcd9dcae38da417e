package widgets

// lineEditor is the single-line edit buffer shared by the text-entry
// widgets. It works in runes so cursor motion stays correct on
// multi-byte input.
type lineEditor struct {
	runes  []rune
	cursor int
}

func (e *lineEditor) String() string {
	return string(e.runes)
}

func (e *lineEditor) Set(text string) {
	e.runes = []rune(text)
	e.cursor = len(e.runes)
}

func (e *lineEditor) Cursor() int {
	return e.cursor
}

func (e *lineEditor) Insert(r rune) {
	e.runes = append(e.runes, 0)
	copy(e.runes[e.cursor+1:], e.runes[e.cursor:])
	e.runes[e.cursor] = r
	e.cursor++
}

func (e *lineEditor) InsertString(s string) {
	for _, r := range s {
		e.Insert(r)
	}
}

func (e *lineEditor) Backspace() {
	if e.cursor == 0 {
		return
	}
	e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
	e.cursor--
}

func (e *lineEditor) Delete() {
	if e.cursor >= len(e.runes) {
		return
	}
	e.runes = append(e.runes[:e.cursor], e.runes[e.cursor+1:]...)
}

func (e *lineEditor) Left() {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *lineEditor) Right() {
	if e.cursor < len(e.runes) {
		e.cursor++
	}
}

func (e *lineEditor) Home() {
	e.cursor = 0
}

func (e *lineEditor) End() {
	e.cursor = len(e.runes)
}

func (e *lineEditor) Clear() {
	e.runes = e.runes[:0]
	e.cursor = 0
}
