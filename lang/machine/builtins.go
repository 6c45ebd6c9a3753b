package machine

// Builtins collects the built-in types constructed at startup (spec.md
// §4.7) plus the globally registered names consulted by LoadVariable
// (spec.md §4.4, currently just "print"). lang/types populates one of
// these; lang/machine only needs to read it back during dispatch.
type Builtins struct {
	ObjectType   *Type // the root type; also the type of Type values
	StrType      *Type
	ListType     *Type
	IntType      *Type
	FloatType    *Type
	BoolType     *Type
	NullType     *Type
	FunctionType *Type
	NativeType   *Type
	CodeType     *Type
	FrameType    *Type

	Globals map[string]Value
}

// LookupGlobal implements step 1 of spec.md §4.4's LoadVariable algorithm:
// registered built-in names are checked before any frame's bindings.
func (b *Builtins) LookupGlobal(name string) (Value, bool) {
	v, ok := b.Globals[name]
	return v, ok
}
