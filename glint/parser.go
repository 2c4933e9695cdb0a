package glint

import "strings"

const (
	// flagPrefix marks a token as a flag on the argument vector
	flagPrefix = "--"
	// helpFlagName is reserved; the literal token --help anywhere in the
	// vector requests help for the deepest resolvable node
	helpFlagName = "help"
)

// tokens is the partition of an argument vector. Flag tokens and positional
// tokens keep their relative order within each class; the two classes are
// independent, so flags may appear anywhere, including between positionals.
type tokens struct {
	flags         []string // flag tokens with the -- prefix stripped
	positional    []string
	helpRequested bool
}

// partition splits args into flag and positional tokens, removing and
// recording the help marker.
func partition(args []string) tokens {
	var t tokens
	for _, arg := range args {
		switch {
		case arg == flagPrefix+helpFlagName:
			t.helpRequested = true
		case strings.HasPrefix(arg, flagPrefix):
			t.flags = append(t.flags, strings.TrimPrefix(arg, flagPrefix))
		default:
			t.positional = append(t.positional, arg)
		}
	}
	return t
}

// Execute resolves args against the command tree and invokes the handler of
// the located command. It returns either the handler's value (Out), rendered
// help text (Help), or a structured error. Execute performs no I/O and does
// not mutate the tree; a built App may be executed concurrently.
//
// Resolution walks the tree greedily over positional tokens without
// backtracking: a token naming a child always descends, so a positional
// argument that happens to equal a subcommand name at that depth cannot be
// passed as a plain argument to the parent.
func (a App[T]) Execute(args []string) (Result[T], error) {
	t := partition(args)

	current := a.root
	path := make([]string, 0, len(t.positional))
	rest := t.positional

	for {
		if len(rest) == 0 {
			if t.helpRequested {
				return helpResult[T](a.renderHelp(path, current)), nil
			}
			return a.executeRoot(current, rest, t.flags)
		}
		child, ok := current.children[rest[0]]
		if ok {
			current = child
			path = append(path, rest[0])
			rest = rest[1:]
			continue
		}
		if t.helpRequested {
			return helpResult[T](a.renderHelp(path, current)), nil
		}
		// Unmatched token: the current node runs with it as the first
		// positional argument
		return a.executeRoot(current, rest, t.flags)
	}
}

// executeRoot runs the resolved node as a command: flag fold, arity check,
// named-argument reconciliation, handler invocation. The first failure
// short-circuits the rest.
func (a App[T]) executeRoot(current node[T], args, flagTokens []string) (Result[T], error) {
	var none Result[T]

	if current.cmd == nil {
		token := ""
		if len(args) > 0 {
			token = args[0]
		}
		return none, commandNotFoundError(token, current)
	}
	cmd := *current.cmd

	merged := mergeFlags(a.globalFlags, cmd.flags)
	for _, token := range flagTokens {
		if err := applyFlagToken(merged, token); err != nil {
			return none, contextualize("failed to run command", err)
		}
	}

	if cmd.count != nil && !cmd.count.satisfied(len(args)) {
		return none, contextualize("invalid number of arguments provided", arityError(*cmd.count, len(args)))
	}
	if len(args) < len(cmd.named) {
		return none, contextualize("invalid number of arguments provided", namedArgsError(cmd.named, len(args)))
	}

	named := make(map[string]string, len(cmd.named))
	for i, name := range cmd.named {
		named[name] = args[i]
	}

	input := CommandInput{
		Args:      append([]string(nil), args[len(cmd.named):]...),
		Flags:     Flags{flags: merged},
		NamedArgs: named,
	}
	return outResult(cmd.do(input)), nil
}

// applyFlagToken updates the merged flag map in place from a single
// prefix-stripped flag token (name or name=value).
func applyFlagToken(merged FlagMap, token string) error {
	name, value, hasValue := strings.Cut(token, "=")

	flag, ok := merged[name]
	if !ok {
		return unknownFlagError(name, merged)
	}

	if !hasValue {
		if flag.Kind() != FlagKindBool {
			return missingValueError(name)
		}
		// A bare boolean flag token sets the flag
		value = "true"
	}

	updated, err := flag.update(value)
	if err != nil {
		typ := ErrorTypeInvalidValue
		if _, ok := err.(constraintViolation); ok {
			typ = ErrorTypeConstraint
		}
		return invalidFlagError(typ, name, err)
	}
	merged[name] = updated
	return nil
}
