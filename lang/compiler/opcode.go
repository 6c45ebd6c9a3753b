package compiler

import "fmt"

// Opcode identifies one bytecode instruction. The set is fixed; Instr's doc
// comment lists what each opcode's operand means.
type Opcode uint8

const ( //nolint:revive
	LoadConstant Opcode = iota
	LoadVariable
	StoreVariable
	Declare
	LoadProperty
	StoreProperty
	LoadSubscript
	StoreSubscript

	Add
	Subtract
	Multiply
	Divide
	Equals
	NotEquals
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual

	CreateList
	CreateFunction
	Call
	Return
	Pop
	Jump
	JumpFalse
	Exit

	maxOpcode
)

var opcodeNames = [...]string{
	LoadConstant:        "load_constant",
	LoadVariable:        "load_variable",
	StoreVariable:       "store_variable",
	Declare:             "declare",
	LoadProperty:        "load_property",
	StoreProperty:       "store_property",
	LoadSubscript:       "load_subscript",
	StoreSubscript:      "store_subscript",
	Add:                 "add",
	Subtract:            "subtract",
	Multiply:            "multiply",
	Divide:              "divide",
	Equals:              "equals",
	NotEquals:           "not_equals",
	LessThan:            "less_than",
	GreaterThan:         "greater_than",
	LessThanOrEqual:     "less_than_or_equal",
	GreaterThanOrEqual:  "greater_than_or_equal",
	CreateList:          "create_list",
	CreateFunction:      "create_function",
	Call:                "call",
	Return:              "return",
	Pop:                 "pop",
	Jump:                "jump",
	JumpFalse:           "jump_false",
	Exit:                "exit",
}

func (op Opcode) String() string {
	if op < maxOpcode {
		return opcodeNames[op]
	}
	return fmt.Sprintf("illegal opcode (%d)", op)
}

// IsBinaryOp reports whether op is one of the ten dispatched binary
// operators, which pop (lhs, rhs) and dispatch on rhs's type.
func (op Opcode) IsBinaryOp() bool {
	return op >= Add && op <= GreaterThanOrEqual
}

// Instr is one instruction plus its immediate operand, when it has one:
//
//	LoadConstant(i)  - an index into Code.Constants
//	LoadVariable(n)  - an index into Code.Names
//	StoreVariable(n) - an index into Code.Names
//	Declare(n)       - an index into Code.Names
//	LoadProperty(n)  - an index into Code.Names
//	StoreProperty(n) - an index into Code.Names
//	CreateList(k)    - a count of elements to pop
//	Call(k)          - a count of arguments to pop
//	Jump(a)          - an absolute instruction address
//	JumpFalse(a)     - an absolute instruction address
//	Exit(c)          - a process exit code
//
// All other opcodes ignore Arg.
type Instr struct {
	Op  Opcode
	Arg int
}
