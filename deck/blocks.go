package deck

// Block is one element of a panel. The set of block types is closed.
type Block interface {
	block()
}

type CalloutKind int

const (
	CalloutInfo CalloutKind = iota
	CalloutWarning
	CalloutSuccess
	CalloutHighlight
)

func (k CalloutKind) String() string {
	switch k {
	case CalloutInfo:
		return "info"
	case CalloutWarning:
		return "warning"
	case CalloutSuccess:
		return "success"
	case CalloutHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

type Subheading struct {
	Text string
}

// Markdown is a literal markdown source block.
type Markdown struct {
	Source string
}

type Callout struct {
	Kind  CalloutKind
	Title string
	Body  string
}

type Metric struct {
	Label string
	Value string
	Delta string
}

// Columns lays its children out side by side. Ratios may be nil for equal widths.
type Columns struct {
	Ratios []float64
	Cols   [][]Block
}

type Divider struct{}

func (Subheading) block() {}
func (Markdown) block()   {}
func (Callout) block()    {}
func (Metric) block()     {}
func (Table) block()      {}
func (Columns) block()    {}
func (Divider) block()    {}

// Walk visits blocks depth-first, descending into columns.
func Walk(blocks []Block, fn func(Block)) {
	for _, b := range blocks {
		fn(b)
		if cols, ok := b.(Columns); ok {
			for _, col := range cols.Cols {
				Walk(col, fn)
			}
		}
	}
}

func cols(c ...[]Block) Columns {
	return Columns{Cols: c}
}

func stack(b ...Block) []Block {
	return b
}
