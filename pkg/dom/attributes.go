package dom

import "sort"

// Attribute is a single name/value pair. An empty Value renders as a bare
// attribute name.
type Attribute struct {
	Name  string
	Value string
}

// Attributes maps attribute names to values. Names are unique and always
// iterated in lexicographic order, so rendered output is deterministic
// whatever order the attributes were set in.
type Attributes struct {
	list []Attribute
}

// search returns the position of name, and whether it is present.
func (a *Attributes) search(name string) (int, bool) {
	i := sort.Search(len(a.list), func(i int) bool {
		return a.list[i].Name >= name
	})
	return i, i < len(a.list) && a.list[i].Name == name
}

// Set inserts or overwrites the value of name. Last write wins.
func (a *Attributes) Set(name, value string) {
	i, found := a.search(name)
	if found {
		a.list[i].Value = value
		return
	}
	a.list = append(a.list, Attribute{})
	copy(a.list[i+1:], a.list[i:])
	a.list[i] = Attribute{Name: name, Value: value}
}

// Get returns the value of name and whether it is set.
func (a *Attributes) Get(name string) (string, bool) {
	i, found := a.search(name)
	if !found {
		return "", false
	}
	return a.list[i].Value, true
}

// Has reports whether name is set.
func (a *Attributes) Has(name string) bool {
	_, found := a.search(name)
	return found
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.list)
}

// All returns a copy of the attributes, sorted by name.
func (a *Attributes) All() []Attribute {
	out := make([]Attribute, len(a.list))
	copy(out, a.list)
	return out
}

// Names returns the attribute names in lexicographic order.
func (a *Attributes) Names() []string {
	names := make([]string, len(a.list))
	for i, attr := range a.list {
		names[i] = attr.Name
	}
	return names
}
