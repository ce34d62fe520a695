package combo

// Node is a boolean expression over per-label hand counts.
type Node interface {
	Eval(counts []int) bool
}

// Leaf asserts min ≤ counts[Index] ≤ max for one label.
type Leaf struct {
	Index int
	Min   int
	Max   int
}

// Eval reports whether the label's hand count is inside the range.
func (l Leaf) Eval(counts []int) bool {
	n := counts[l.Index]
	return n >= l.Min && n <= l.Max
}

// And is a conjunction of two subtrees.
type And struct {
	Left  Node
	Right Node
}

// Eval short-circuits on the first false branch.
func (a And) Eval(counts []int) bool {
	return a.Left.Eval(counts) && a.Right.Eval(counts)
}

// LabelTable assigns dense indices to card labels in first-appearance
// order. When the same label is interned with different deck copies,
// the pool keeps the maximum so cross-combo evaluation draws from one
// shared column per card.
type LabelTable struct {
	index  map[string]int
	labels []string
	copies []int
}

// NewLabelTable creates an empty label table.
func NewLabelTable() *LabelTable {
	return &LabelTable{index: make(map[string]int)}
}

// Intern returns the index for a predicate's label, adding it if new.
func (t *LabelTable) Intern(p CardPredicate) int {
	key := p.LabelKey()
	if i, ok := t.index[key]; ok {
		if p.CopiesInDeck > t.copies[i] {
			t.copies[i] = p.CopiesInDeck
		}
		return i
	}
	i := len(t.labels)
	t.index[key] = i
	t.labels = append(t.labels, p.Name)
	t.copies = append(t.copies, p.CopiesInDeck)
	return i
}

// Len returns the number of distinct labels.
func (t *LabelTable) Len() int {
	return len(t.labels)
}

// Copies returns the per-label deck copy counts, indexed by label id.
func (t *LabelTable) Copies() []int {
	return t.copies
}

// Label returns the display name for a label id.
func (t *LabelTable) Label(i int) string {
	return t.labels[i]
}

// BuildTree translates a combo into a left-leaning AND chain of leaf
// predicates, interning its labels into the given table. Two predicates
// with the same label share an index but keep separate leaves.
func BuildTree(c Combo, table *LabelTable) Node {
	var root Node
	for _, card := range c.Cards {
		leaf := Leaf{
			Index: table.Intern(card),
			Min:   card.MinInHand,
			Max:   card.MaxInHand,
		}
		if root == nil {
			root = leaf
		} else {
			root = And{Left: root, Right: leaf}
		}
	}
	return root
}
