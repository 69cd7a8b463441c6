package layout

// Kind identifies the shape of a Block.
type Kind string

const (
	// KindColumns lays its children side by side.
	KindColumns Kind = "columns"
	// KindStack places its children one under another.
	KindStack Kind = "stack"
	// KindSection is a labeled group; Text is the label, Children the body.
	KindSection Kind = "section"
	// KindList is a bulleted list; every child is one item.
	KindList Kind = "list"
	// KindItem is one list entry; Text is the first line and Children hold
	// continuation lines.
	KindItem Kind = "item"
	// KindPair is a labeled value such as "Email: ada@example.com".
	KindPair Kind = "pair"
	// KindText is a run of text.
	KindText Kind = "text"
)

// Block is one unit of a document description. Styling fields are optional;
// a zero value means "inherit".
type Block struct {
	Kind     Kind
	Text     string
	Label    string
	Style    string
	Bold     bool
	Italics  bool
	FontSize float64
	Link     string
	Children []Block
}

// Style is a named set of text attributes.
type Style struct {
	FontSize float64
	Bold     bool
	Italics  bool
	// Margin is left, top, right, bottom in points.
	Margin [4]float64
}

// Document is the ordered description handed to a PDF engine.
type Document struct {
	Title  string
	Blocks []Block
	Styles map[string]Style
}

// Items returns the list items of a section block.
func (b Block) Items() (items []Block) {
	for _, child := range b.Children {
		if child.Kind == KindList {
			items = append(items, child.Children...)
		}
	}
	return items
}

// Walk visits b and its descendants depth first.
func (b Block) Walk(fn func(Block)) {
	fn(b)
	for _, child := range b.Children {
		child.Walk(fn)
	}
}
