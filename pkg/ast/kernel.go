package ast

// Context is the source location attached to every constructed node,
// supplied by the lexer/preprocessor. The AST never interprets it beyond
// carrying it for diagnostics.
type Context struct {
	File   string
	Line   int
	Column int
}

// Kind is the closed enumeration over every concrete node kind. The C
// source's function-pointer vtable is replaced by Go dispatch: Delete
// calls each node's own Destroy method, and the lowering pass uses a
// type switch on the concrete type.
type Kind int

const (
	KindValue Kind = iota
	KindBinary
	KindUnary
	KindStore
	KindReturn
	KindEntField
	KindMember
	KindCall
	KindBlock
	KindIfThen
	KindTernary
	KindLoop
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "Value"
	case KindBinary:
		return "Binary"
	case KindUnary:
		return "Unary"
	case KindStore:
		return "Store"
	case KindReturn:
		return "Return"
	case KindEntField:
		return "EntField"
	case KindMember:
		return "Member"
	case KindCall:
		return "Call"
	case KindBlock:
		return "Block"
	case KindIfThen:
		return "IfThen"
	case KindTernary:
		return "Ternary"
	case KindLoop:
		return "Loop"
	case KindFunction:
		return "Function"
	default:
		return "unknown"
	}
}

// Node is the capability every concrete AST node satisfies: it carries a
// source context and a kind tag, and knows how to destroy itself
// (releasing exclusively-owned children, honoring Keep on shared ones).
type Node interface {
	Ctx() Context
	NodeKind() Kind
	Destroy()
}

// NodeBase is the common header every concrete node embeds: source
// context, kind tag and the "keep" ownership override. It has no
// exported destroy method of its own — each concrete kind supplies its
// own Destroy, since destruction must recurse into kind-specific
// children (there is no generic child list to walk).
type NodeBase struct {
	ctx       Context
	kind      Kind
	keep      bool
	destroyed bool
}

func newNodeBase(ctx Context, kind Kind) NodeBase {
	return NodeBase{ctx: ctx, kind: kind}
}

// Ctx returns the source context recorded at construction.
func (n *NodeBase) Ctx() Context { return n.ctx }

// NodeKind returns the closed kind tag for this node.
func (n *NodeBase) NodeKind() Kind { return n.kind }

// Keep reports whether this node's ownership is shared; Unref on a kept
// node is a no-op rather than a delete.
func (n *NodeBase) Keep() bool { return n.keep }

// SetKeep marks the node as shared. Value uses this at construction so
// that a parser symbol table and the tree can both reference it.
func (n *NodeBase) SetKeep(keep bool) { n.keep = keep }

// markDestroyed is called by every concrete Destroy before doing its own
// cleanup. Calling Destroy twice on the same node is a program bug — the
// kernel contract is that ast_delete must never be invoked twice on the
// same node — and is reported the same way the C source aborts on a
// node missing a destructor: by panicking rather than silently
// corrupting already-released state.
func (n *NodeBase) markDestroyed() {
	if n.destroyed {
		panic(ErrAlreadyDestroyed)
	}
	n.destroyed = true
}

// Delete is the single dispatch entry point: it calls the node's own
// Destroy, which recurses into exclusively-owned children.
func Delete(n Node) {
	if n == nil {
		return
	}
	n.Destroy()
}

// keeper is implemented by any node exposing the Keep override; Value is
// the only concrete kind that currently sets it, but Unref is defined
// generically so any future shared node kind is handled the same way.
type keeper interface {
	Keep() bool
}

// Unref honors the Keep flag: deleting a kept node is a no-op, since its
// lifetime belongs to whatever else references it (typically a parser
// symbol table); anything else is deleted normally.
func Unref(n Node) {
	if n == nil {
		return
	}
	if k, ok := n.(keeper); ok && k.Keep() {
		return
	}
	n.Destroy()
}
