package entities

// Invocation is the program to run and its arguments, passed through verbatim.
type Invocation struct {
	Program string
	Args    []string
}

func (i *Invocation) Argv() []string {
	return append([]string{i.Program}, i.Args...)
}
