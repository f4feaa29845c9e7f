package deck

import (
	"fmt"
	"strconv"
)

// Cell is a literal table value, either text or an integer.
type Cell struct {
	text    string
	number  int
	numeric bool
}

func Str(s string) Cell { return Cell{text: s} }
func Num(n int) Cell    { return Cell{number: n, numeric: true} }

func (c Cell) String() string {
	if c.numeric {
		return strconv.Itoa(c.number)
	}
	return c.text
}

func (c Cell) Int() (int, bool) {
	return c.number, c.numeric
}

func (c Cell) IsNumber() bool { return c.numeric }

// Value returns the cell as a plain string or int for encoders.
func (c Cell) Value() any {
	if c.numeric {
		return c.number
	}
	return c.text
}

type Column struct {
	Name  string
	Cells []Cell
}

func strs(name string, values ...string) Column {
	c := Column{Name: name, Cells: make([]Cell, 0, len(values))}
	for _, v := range values {
		c.Cells = append(c.Cells, Str(v))
	}
	return c
}

func nums(name string, values ...int) Column {
	c := Column{Name: name, Cells: make([]Cell, 0, len(values))}
	for _, v := range values {
		c.Cells = append(c.Cells, Num(v))
	}
	return c
}

// Table is a literal grid stored column-major.
type Table struct {
	Columns []Column
}

func (t Table) Headers() []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, c.Name)
	}
	return out
}

// Len is the row count; Validate guarantees every column agrees.
func (t Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (t Table) Rows() [][]Cell {
	n := t.Len()
	rows := make([][]Cell, n)
	for r := 0; r < n; r++ {
		row := make([]Cell, len(t.Columns))
		for c, col := range t.Columns {
			if r < len(col.Cells) {
				row[c] = col.Cells[r]
			}
		}
		rows[r] = row
	}
	return rows
}

// StringRows is Rows formatted for display.
func (t Table) StringRows() [][]string {
	rows := t.Rows()
	out := make([][]string, len(rows))
	for i, row := range rows {
		line := make([]string, len(row))
		for j, cell := range row {
			line[j] = cell.String()
		}
		out[i] = line
	}
	return out
}

func (t Table) Validate() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("table has no columns")
	}
	want := len(t.Columns[0].Cells)
	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if seen[c.Name] {
			return fmt.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.Cells) != want {
			return fmt.Errorf("column %q has %d rows, want %d", c.Name, len(c.Cells), want)
		}
	}
	return nil
}
