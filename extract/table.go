package extract

// AttributeTable is the raw label/value mapping read from one document's
// property table, before any normalization. Iteration order follows the
// first appearance of each label; setting a label again overwrites the
// value but keeps the original position.
type AttributeTable struct {
	order  []string
	values map[string]string
}

func NewAttributeTable() *AttributeTable {
	return &AttributeTable{values: make(map[string]string)}
}

func (t *AttributeTable) Set(label, value string) {
	if _, seen := t.values[label]; !seen {
		t.order = append(t.order, label)
	}
	t.values[label] = value
}

// Get returns the value for a label, or the empty string if the label was
// never extracted.
func (t *AttributeTable) Get(label string) (string, bool) {
	value, ok := t.values[label]
	return value, ok
}

// Labels returns the extracted labels in document order.
func (t *AttributeTable) Labels() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func (t *AttributeTable) Len() int {
	return len(t.order)
}
