package cmds

// Var defines name taking one argument and returns the parsed value.
// "name." resets it to the zero value.
func Var[T any](name string, desc string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Hide())

	return &value
}

// Switch defines name without arguments that turns the value on. "!name" turns it off.
func Switch(name string, desc string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(desc))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Hide())

	return &value
}

// Collect defines name that may be repeated, appending each argument.
func Collect[T any](name string, desc string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc))
	return &value
}
