package debugs

import (
	"strings"
	"testing"

	"github.com/reusee/bfic/modes"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	output := new(strings.Builder)
	dscope.New(
		new(Module),
		modes.ForTest(),
	).Fork(
		func() TapInput {
			return strings.NewReader(strings.Join([]string{
				"cursor + 1",
				"x = window[1] * 2",
				"print(x)",
				"",
				"peek(2)",
				"undefined_name",
				"None",
			}, "\n"))
		},
		func() TapOutput {
			return output
		},
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"cursor": 42,
			"window": []int64{1, 2, 3},
			"peek": func(i int) int64 {
				return int64(i) * 10
			},
		})
	})

	got := output.String()
	for _, want := range []string{
		"test> 43\n",
		"test> test> 4\n",
		"test> 20\n",
		"undefined: undefined_name",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("%q not in %q", want, got)
		}
	}
	if !strings.HasSuffix(got, "test> test> \n") {
		t.Fatalf("got %q", got)
	}
}

func TestTapSessionsShareInput(t *testing.T) {
	output := new(strings.Builder)
	dscope.New(
		new(Module),
		modes.ForTest(),
	).Fork(
		func() TapInput {
			return strings.NewReader("cursor * 10\ncontinue\ncursor * 100\ncontinue\n")
		},
		func() TapOutput {
			return output
		},
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "first", map[string]any{
			"cursor": 1,
		})
		tap(t.Context(), "second", map[string]any{
			"cursor": 2,
		})
		// input exhausted
		tap(t.Context(), "third", map[string]any{
			"cursor": 3,
		})
	})

	want := "first> 10\nfirst> second> 200\nsecond> third> \n"
	if got := output.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
