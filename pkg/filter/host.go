package filter

// Names of the host display parameters the renderer consults.
const (
	ParamPrintAddress = "print address"
	ParamWidth        = "width"
)

// Params looks up named host configuration values.
type Params interface {
	// Bool reports the truthiness of a named parameter, false when unset.
	Bool(name string) bool
	// Int returns a named integer parameter. ok is false when the host
	// reports the parameter unset or unlimited.
	Int(name string) (value int, ok bool)
}

// Executor runs a host console command and captures its textual output.
type Executor interface {
	Execute(command string) (string, error)
}

// Host bundles the capabilities the renderer consumes. Implementations are
// supplied by the caller; nothing in this package reaches for an ambient
// debugger.
type Host interface {
	Params
	Executor
}

// FuncRef identifies the function a frame is executing: by symbol name when
// the host resolved one, otherwise by raw address.
type FuncRef struct {
	Name string
	Addr uint64
}

// Resolved reports whether the host supplied a symbolic name.
func (f FuncRef) Resolved() bool { return f.Name != "" }

// Frame is one call-stack entry as reported by the host debugger.
type Frame interface {
	// Address is the frame's code address.
	Address() uint64
	// Function identifies the executing function by name or address.
	Function() FuncRef
	// Filename names the source file, or the object the frame maps to.
	Filename() string
	// Line is the 1-based source line, 0 when unknown.
	Line() int
	// Block returns the frame's innermost lexical block, or an error when
	// no block information is available.
	Block() (Block, error)
}

// Block is a lexical scope chained to its enclosing scopes.
type Block interface {
	// HasFunction reports whether the block belongs to a function scope.
	HasFunction() bool
	// Superblock is the enclosing block, nil at the outermost scope.
	Superblock() Block
	// Symbols lists the symbols declared in the block.
	Symbols() []Symbol
}

// Symbol is a named entity declared in a block.
type Symbol interface {
	Name() string
	// IsArgument reports whether the symbol is a formal parameter.
	IsArgument() bool
	// Value evaluates the symbol against a specific frame.
	Value(f Frame) (string, error)
}
