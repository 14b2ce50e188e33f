package debugs

import (
	"testing"

	"github.com/reusee/bfic/tapes"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type testStruct struct {
		Exported   string
		unexported int
	}

	ptrStruct := &testStruct{
		Exported: "hello",
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int8", int8(-1), starlark.MakeInt(-1)},
		{"int64", int64(-9223372036854775808), starlark.MakeInt64(-9223372036854775808)},
		{"uint64", uint64(18446744073709551615), starlark.MakeUint64(18446744073709551615)},
		{"float64", 1.5, starlark.Float(1.5)},
		{"stringer", tapes.DWord, starlark.String("dword")},
		{"window", []int64{0, 255, -1}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(0), starlark.MakeInt(255), starlark.MakeInt(-1),
		})},
		{"map", map[string]int{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"struct", testStruct{Exported: "hello", unexported: 42}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("Exported"), starlark.String("hello"))
			return d
		}()},
		{"pointer to pointer to struct", &ptrStruct, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("Exported"), starlark.String("hello"))
			return d
		}()},
		{"nil pointer", (*testStruct)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}

func TestToStarlarkGlobals(t *testing.T) {
	globals := toStarlarkGlobals(map[string]any{
		"cursor": 3,
		"peek": func(i int) int64 {
			return int64(i * 2)
		},
		"none": nil,
	})
	if _, ok := globals["peek"].(starlark.Callable); !ok {
		t.Fatalf("got %T", globals["peek"])
	}
	if globals["none"] != starlark.None {
		t.Fatalf("got %v", globals["none"])
	}
	thread := &starlark.Thread{Name: "test"}
	ret, err := starlark.Call(thread, globals["peek"], starlark.Tuple{starlark.MakeInt(21)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if equal, _ := starlark.Equal(ret, starlark.MakeInt(42)); !equal {
		t.Fatalf("got %v", ret)
	}
}
