package types

import "github.com/sanscript-lang/sanscript/lang/machine"

// Bootstrap constructs the built-in type table and global registry
// (spec.md §4.7): the root object type first, then every derived type
// deriving from it, and finally the globally-visible names consulted by
// name resolution (currently just print).
func Bootstrap() *machine.Builtins {
	object := objectType()

	b := &machine.Builtins{
		ObjectType:   object,
		StrType:      stringType(object),
		ListType:     listType(object),
		IntType:      intType(object),
		FloatType:    floatType(object),
		BoolType:     boolType(object),
		NullType:     nullType(object),
		FunctionType: functionType(object),
		NativeType:   nativeType(object),
		CodeType:     codeType(object),
		FrameType:    frameType(object),
		Globals:      map[string]machine.Value{},
	}

	b.Globals["print"] = printFunc()

	return b
}
