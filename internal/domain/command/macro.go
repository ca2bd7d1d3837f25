package command

// UndoOrder selects how a macro walks its children on undo.
type UndoOrder int

const (
	// UndoSameOrder undoes children in the order they were supplied.
	UndoSameOrder UndoOrder = iota
	// UndoReverse undoes children last-to-first, for child commands
	// with ordering dependencies between them.
	UndoReverse
)

// Macro executes an ordered list of child commands as one unit.
// Execution is best-effort sequential: children are total, so there is
// no rollback path for a partial run.
type Macro struct {
	name     string
	order    UndoOrder
	children []Command
}

// NewMacro composes children into one command. Child order is
// significant and caller-supplied.
func NewMacro(name string, order UndoOrder, children ...Command) *Macro {
	return &Macro{name: name, order: order, children: children}
}

// Execute runs every child in supplied order.
func (m *Macro) Execute() {
	for _, child := range m.children {
		child.Execute()
	}
}

// Undo runs every child's Undo, walking per the configured order.
func (m *Macro) Undo() {
	if m.order == UndoReverse {
		for i := len(m.children) - 1; i >= 0; i-- {
			m.children[i].Undo()
		}
		return
	}
	for _, child := range m.children {
		child.Undo()
	}
}

// Name returns the macro name.
func (m *Macro) Name() string { return m.name }
