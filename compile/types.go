package compile

// Param is an opaque box holding one literal value lifted out of the
// statement text. Its index in Result.Params equals the index of its
// `?` placeholder in Result.SQL, counted left to right.
type Param struct {
	Value any
}

// Result holds the output of compiling an AST to SQL.
// This is the canonical "single source of truth" for compilation output.
type Result struct {
	// SQL is the compiled SQL string for the statement.
	SQL string

	// Params contains the bound values in the order their placeholders
	// appear in SQL. This includes duplicates - if the same literal is
	// used twice, it appears twice.
	Params []Param
}

// Args flattens the parameter list into the argument slice expected by
// database/sql execution methods.
func (r Result) Args() []any {
	if len(r.Params) == 0 {
		return nil
	}
	args := make([]any, len(r.Params))
	for i, p := range r.Params {
		args[i] = p.Value
	}
	return args
}
