package ui

// FocusManager tracks and rotates focus across named areas.
type FocusManager struct {
	Current  string   // name of the currently focused area
	Order    []string // rotation order
	OnChange func(from, to string)
}

// Next advances focus to the next area in order and returns it.
func (f *FocusManager) Next() string { return f.move(1) }

// Prev advances focus to the previous area in order and returns it.
func (f *FocusManager) Prev() string { return f.move(-1) }

func (f *FocusManager) move(step int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index(f.Current)
	next := (idx + step + len(f.Order)) % len(f.Order)
	from := f.Current
	f.Current = f.Order[next]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// SetFocus focuses the named area. Returns true if it exists in the order.
func (f *FocusManager) SetFocus(name string) bool {
	for _, o := range f.Order {
		if o == name {
			from := f.Current
			f.Current = name
			if f.OnChange != nil && from != name {
				f.OnChange(from, name)
			}
			return true
		}
	}
	return false
}

func (f *FocusManager) index(name string) int {
	for i, o := range f.Order {
		if o == name {
			return i
		}
	}
	return -1
}
