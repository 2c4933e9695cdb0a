package glint

// Handler is the function executed when a command is resolved. The return
// type flows through unchanged to the Out result of Execute.
type Handler[T any] func(CommandInput) T

// CommandInput is the immutable snapshot passed to a handler: leftover
// positional arguments, the resolved flag set, and matched named arguments.
// It is constructed fresh per invocation.
type CommandInput struct {
	// Args holds the positional arguments left after named-argument matching,
	// in the order they appeared
	Args []string
	// Flags holds the resolved global + command-local flag values
	Flags Flags
	// NamedArgs maps declared argument names to the tokens that matched them
	NamedArgs map[string]string
}

// Command is a runnable node in the command tree: a handler plus its local
// flags, description, arity rule and named-argument declarations. Command is
// a value type; every builder call returns a modified copy.
type Command[T any] struct {
	do          Handler[T]
	flags       FlagMap
	description string
	count       *ArgsCount
	named       []string
}

// NewCommand creates a command that runs the given handler
func NewCommand[T any](do Handler[T]) Command[T] {
	return Command[T]{do: do, flags: make(FlagMap)}
}

// Description attaches a help description to the command
func (c Command[T]) Description(text string) Command[T] {
	c.description = text
	return c
}

// CountArgs attaches an arity rule checked against the leftover positional
// arguments at execution time
func (c Command[T]) CountArgs(count ArgsCount) Command[T] {
	c.count = &count
	return c
}

// NamedArgs declares named arguments, consumed in order from the front of
// the leftover positional arguments. Declaring N names implies an arity of
// at least N.
func (c Command[T]) NamedArgs(names ...string) Command[T] {
	named := make([]string, len(c.named), len(c.named)+len(names))
	copy(named, c.named)
	c.named = append(named, names...)
	return c
}

// Flag adds a command-local flag. Local flags override global flags of the
// same name. The name "help" is reserved and ignored.
func (c Command[T]) Flag(name string, flag Flag) Command[T] {
	if name == helpFlagName {
		return c
	}
	flags := make(FlagMap, len(c.flags)+1)
	for n, f := range c.flags {
		flags[n] = f
	}
	flags[name] = flag
	c.flags = flags
	return c
}
