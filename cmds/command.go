package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

// Command is a named action consuming the arguments that follow it.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	// Params are placeholders shown in usage, one per function parameter.
	Params []string
	// Hidden commands are not listed in usage.
	Hidden bool
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	fnType := fnValue.Type()
	if fnType.IsVariadic() {
		panic(fmt.Errorf("variadic function not supported: %T", fn))
	}

	numRets := fnType.NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	command := &Command{
		Func: fnValue,
	}
	for i := range fnType.NumIn() {
		command.Params = append(command.Params, paramName(fnType.In(i)))
	}

	return command
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

// paramName is the usage placeholder of a parameter type. Optional parameters are bracketed.
func paramName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return "[" + paramName(t.Elem()) + "]"
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return "<" + strings.ToLower(t.Name()) + ">"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "<n>"
	case reflect.Bool:
		return "<bool>"
	case reflect.String:
		return "<string>"
	}
	return "<value>"
}
