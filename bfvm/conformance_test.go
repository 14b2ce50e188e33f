package bfvm

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/reusee/bfic/tapes"
	"gopkg.in/yaml.v3"
)

type conformanceCase struct {
	Name        string             `yaml:"name"`
	Program     string             `yaml:"program"`
	TapeSize    int                `yaml:"tape_size"`
	Width       tapes.Width        `yaml:"width"`
	Overflow    tapes.OverflowMode `yaml:"overflow"`
	Debug       bool               `yaml:"debug"`
	MatchNested bool               `yaml:"match_nested"`
	EndChar     string             `yaml:"end_char"`
	Data        *string            `yaml:"data"`
	Output      string             `yaml:"output"`
	Result      string             `yaml:"result"`
	Reason      string             `yaml:"reason"`
	Iterations  *int64             `yaml:"iterations"`
}

func loadConformanceCases(t *testing.T) []conformanceCase {
	f, err := os.Open("testdata/conformance.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	var cases []conformanceCase
	if err := decoder.Decode(&cases); err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no cases")
	}
	return cases
}

func TestConformance(t *testing.T) {
	for _, c := range loadConformanceCases(t) {
		t.Run(c.Name, func(t *testing.T) {
			out := new(bytes.Buffer)
			config := Config{
				TapeSize:    16,
				Width:       tapes.Byte,
				Overflow:    c.Overflow,
				Debug:       c.Debug,
				MatchNested: c.MatchNested,
				Input:       strings.NewReader(c.Program),
				Output:      out,
			}
			if c.TapeSize != 0 {
				config.TapeSize = c.TapeSize
			}
			if c.Width != 0 {
				config.Width = c.Width
			}
			if c.EndChar != "" {
				config.EndChar = c.EndChar[0]
			}
			if c.Data != nil {
				config.Data = strings.NewReader(*c.Data)
			}

			vm := &VM{
				Config: config,
			}
			stats, err := vm.Run(t.Context())

			want := c.Result
			if want == "" {
				want = Success.String()
			}
			if got := ResultOf(err).String(); got != want {
				t.Fatalf("got %s (%v), want %s", got, err, want)
			}
			if c.Reason != "" && !strings.Contains(err.Error(), c.Reason) {
				t.Fatalf("got %v, want %q", err, c.Reason)
			}
			if out.String() != c.Output {
				t.Fatalf("got %q, want %q", out.String(), c.Output)
			}
			if c.Iterations != nil && stats.Iterations != *c.Iterations {
				t.Fatalf("got %d iterations, want %d", stats.Iterations, *c.Iterations)
			}
		})
	}
}
