package configs

import (
	"errors"
)

// Lookup returns the value at path in the first file that has it.
// ok is false when no file defines path.
func Lookup[T any](loader Loader, path string) (value T, ok bool, err error) {
	err = loader.AssignFirst(path, &value)
	if errors.Is(err, ErrValueNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, err
	}
	return value, true, nil
}

// First is Lookup with the zero value for missing paths.
// Invalid config files are a deployment error and panic.
func First[T any](loader Loader, path string) T {
	value, _, err := Lookup[T](loader, path)
	if err != nil {
		panic(err)
	}
	return value
}
