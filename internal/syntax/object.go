package syntax

import (
	"github.com/vk/cligram/internal/cvar"
	"github.com/vk/cligram/internal/cvec"
)

// Kind discriminates the four node variants. Consumers switch exhaustively
// over this set; there is no open-ended dispatch.
type Kind int

const (
	// Command is a literal keyword token.
	Command Kind = iota
	// Reference includes a named sub-grammar, rendered with a leading @.
	Reference
	// Variable is a typed binding slot.
	Variable
	// Empty is the optional/terminating marker, rendered as ;.
	Empty
)

// Flags is the node bit set controlling cross-cutting display behavior.
type Flags uint32

const (
	// FlagHide hides the node from interactive help.
	FlagHide Flags = 1 << iota
	// FlagHideDatabase hides the node in the persisted view.
	FlagHideDatabase
)

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Callback is one (function name, argument vector) pair attached to a node.
// Args may be nil when the callback takes no arguments.
type Callback struct {
	Fn   string
	Args *cvec.Vec
}

// Node is one grammar alternative at one level. Command holds the literal
// token for Command and Reference nodes and the variable name for Variable
// nodes; the remaining variable fields are meaningful only when Kind is
// Variable. A node owns its Children sub-tree; siblings do not own each
// other.
type Node struct {
	Kind    Kind
	Command string

	// Variable detail. RangeLow and RangeHigh are parallel vectors of
	// constraint bounds; a low bound of type cvar.Empty means unbounded
	// below. Regex holds one string record per pattern.
	Show        string
	VType       cvar.Type
	RangeLow    *cvec.Vec
	RangeHigh   *cvec.Vec
	ExpandFn    string
	ExpandArgs  *cvec.Vec
	Regex       *cvec.Vec
	TranslateFn string

	// Choice is raw alternative-set text that, when present, overrides the
	// normal rendering of the node entirely.
	Choice string

	Help      *cvec.Vec
	Callbacks []Callback
	Flags     Flags

	Children *Tree

	// Terminal marks the node as a complete, acceptable command on its
	// own; it renders with a trailing ;.
	Terminal bool
	// Sets marks the children as a simultaneously-satisfiable set rather
	// than mutually exclusive alternatives; the child block renders with a
	// leading @.
	Sets bool
}

// NewCommand creates a literal keyword node.
func NewCommand(token string) *Node {
	return &Node{Kind: Command, Command: token}
}

// NewReference creates a sub-grammar reference node.
func NewReference(name string) *Node {
	return &Node{Kind: Reference, Command: name}
}

// NewVariable creates a typed variable node named name.
func NewVariable(name string, t cvar.Type) *Node {
	return &Node{Kind: Variable, Command: name, VType: t}
}

// NewEmpty creates the empty terminator node.
func NewEmpty() *Node {
	return &Node{Kind: Empty}
}

// AddRange appends one [low:high] constraint pair to a Variable node. An
// absent low bound is stored as an Empty-typed record; high is required.
func (n *Node) AddRange(low, high *cvar.Var) {
	if n.RangeLow == nil {
		n.RangeLow = cvec.New(0)
		n.RangeHigh = cvec.New(0)
	}
	if low != nil {
		n.RangeLow.AppendVar(low)
	} else {
		n.RangeLow.Add(cvar.Empty)
	}
	n.RangeHigh.AppendVar(high)
}

// RangeLen returns the number of constraint pairs on the node.
func (n *Node) RangeLen() int {
	return n.RangeLow.Len()
}

// AddHelp appends one help-text line.
func (n *Node) AddHelp(line string) {
	if n.Help == nil {
		n.Help = cvec.New(0)
	}
	cv := n.Help.Add(cvar.String)
	cv.SetString(line)
}

// AddCallback attaches a callback with its argument vector (may be nil).
func (n *Node) AddCallback(fn string, args *cvec.Vec) {
	n.Callbacks = append(n.Callbacks, Callback{Fn: fn, Args: args})
}

// AddRegex appends one regular-expression constraint to a Variable node.
func (n *Node) AddRegex(pattern string) {
	if n.Regex == nil {
		n.Regex = cvec.New(0)
	}
	cv := n.Regex.Add(cvar.String)
	cv.SetString(pattern)
}
