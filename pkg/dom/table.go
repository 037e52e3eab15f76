package dom

// RowChild is a node a table row accepts: a Cell or a HeaderCell.
type RowChild interface {
	Node
	rowChild()
}

// Table is a <table> element. It only accepts rows.
type Table struct {
	el *Element
}

// NewTable creates an empty <table>.
func NewTable() *Table {
	return &Table{el: newElement(KindTable, "table", "")}
}

func (t *Table) element() *Element {
	if t == nil {
		return nil
	}
	return t.el
}

// Append moves rows into the table and returns t.
func (t *Table) Append(rows ...*Row) *Table {
	for _, r := range rows {
		t.el.attach(elementOf(r))
	}
	return t
}

// SetAttribute sets an attribute on the <table> tag.
func (t *Table) SetAttribute(name, value string) *Table {
	t.el.SetAttribute(name, value)
	return t
}

// ID sets the id attribute.
func (t *Table) ID(id string) *Table { return t.SetAttribute("id", id) }

// Class sets the class attribute.
func (t *Table) Class(classes ...string) *Table {
	t.el.Class(classes...)
	return t
}

// NonVoid keeps the closing tag when the table is empty.
func (t *Table) NonVoid() *Table {
	t.el.NonVoid()
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.el.children) }

// Kind returns KindTable.
func (t *Table) Kind() Kind { return KindTable }

// Rows returns the rows in insertion order.
func (t *Table) Rows() []*Element { return t.el.Children() }

// Render serializes the table with the default configuration.
func (t *Table) Render() string { return t.el.Render() }

// String implements fmt.Stringer.
func (t *Table) String() string { return t.Render() }

// Row is a <tr> element. It only accepts cells.
type Row struct {
	el *Element
}

// NewRow creates an empty <tr>.
func NewRow() *Row {
	return &Row{el: newElement(KindRow, "tr", "")}
}

// NewHeaderRow creates a row with one header cell per label.
func NewHeaderRow(labels ...string) *Row {
	r := NewRow()
	for _, label := range labels {
		r.Append(NewHeaderCell(label))
	}
	return r
}

// NewDataRow creates a row with one data cell per value.
func NewDataRow(values ...string) *Row {
	r := NewRow()
	for _, v := range values {
		r.Append(NewCell(v))
	}
	return r
}

func (r *Row) element() *Element {
	if r == nil {
		return nil
	}
	return r.el
}

// Append moves cells into the row and returns r.
func (r *Row) Append(cells ...RowChild) *Row {
	for _, c := range cells {
		r.el.attach(elementOf(c))
	}
	return r
}

// SetAttribute sets an attribute on the <tr> tag.
func (r *Row) SetAttribute(name, value string) *Row {
	r.el.SetAttribute(name, value)
	return r
}

// Class sets the class attribute.
func (r *Row) Class(classes ...string) *Row {
	r.el.Class(classes...)
	return r
}

// NonVoid keeps the closing tag when the row is empty.
func (r *Row) NonVoid() *Row {
	r.el.NonVoid()
	return r
}

// Len returns the number of cells.
func (r *Row) Len() int { return len(r.el.children) }

// Kind returns KindRow.
func (r *Row) Kind() Kind { return KindRow }

// Cells returns the cells in insertion order.
func (r *Row) Cells() []*Element { return r.el.Children() }

// Render serializes the row with the default configuration.
func (r *Row) Render() string { return r.el.Render() }

// Cell is a <td> data cell. It always renders a closing tag: <td></td>.
type Cell struct{ *Element }

// NewCell creates a <td> holding content.
func NewCell(content ...string) *Cell {
	c := &Cell{New("td", content...).NonVoid()}
	c.kind = KindCell
	return c
}

func (c *Cell) element() *Element {
	if c == nil {
		return nil
	}
	return c.Element
}

func (*Cell) rowChild() {}

// RowSpan sets the rowspan attribute; zero leaves it unset.
func (c *Cell) RowSpan(n uint) *Cell {
	setSpan(c.Element, "rowspan", n)
	return c
}

// ColSpan sets the colspan attribute; zero leaves it unset.
func (c *Cell) ColSpan(n uint) *Cell {
	setSpan(c.Element, "colspan", n)
	return c
}

// HeaderCell is a <th> header cell. It always renders a closing tag.
type HeaderCell struct{ *Element }

// NewHeaderCell creates a <th> holding content.
func NewHeaderCell(content ...string) *HeaderCell {
	c := &HeaderCell{New("th", content...).NonVoid()}
	c.kind = KindHeaderCell
	return c
}

func (c *HeaderCell) element() *Element {
	if c == nil {
		return nil
	}
	return c.Element
}

func (*HeaderCell) rowChild() {}

// RowSpan sets the rowspan attribute; zero leaves it unset.
func (c *HeaderCell) RowSpan(n uint) *HeaderCell {
	setSpan(c.Element, "rowspan", n)
	return c
}

// ColSpan sets the colspan attribute; zero leaves it unset.
func (c *HeaderCell) ColSpan(n uint) *HeaderCell {
	setSpan(c.Element, "colspan", n)
	return c
}

func setSpan(e *Element, name string, n uint) {
	if n > 0 {
		e.SetAttributeInt(name, int(n))
	}
}
