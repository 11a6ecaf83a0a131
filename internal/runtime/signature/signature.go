package signature

// Signature is the reflected description of a mediator function's declared
// contract. It is immutable once built; the classifier only reads it.
type Signature struct {
	// Identity is an opaque "owner#name" string used in diagnostics only.
	Identity string
	// Return describes the declared result type, KindVoid when absent.
	Return Type
	// Params describes the declared parameter types, in order. Call
	// protocol parameters (a leading context.Context) are not included.
	Params []Type
}

// ParameterCount returns the number of declared data parameters.
func (s Signature) ParameterCount() int {
	return len(s.Params)
}

// Param returns the parameter type at position i, if declared.
func (s Signature) Param(i int) (Type, bool) {
	if i < 0 || i >= len(s.Params) {
		return Type{}, false
	}
	return s.Params[i], true
}
