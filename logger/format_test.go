package logger

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.1f°C", float64(c)) }

type explosive struct{}

func (explosive) String() string { panic("boom") }

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, ""},
		{"single string kept verbatim", []any{"100%% done %s"}, "100%% done %s"},
		{"string verb", []any{"hello %s", "world"}, "hello world"},
		{"string verb with number", []any{"%s!", 42}, "42!"},
		{"string verb with stringer", []any{"temp %s", celsius(21.5)}, "temp 21.5°C"},
		{"integer verb", []any{"%d items", 3}, "3 items"},
		{"integer verb keeps fraction", []any{"%d", 1.5}, "1.5"},
		{"integer verb parses strings", []any{"%d", "42"}, "42"},
		{"integer verb on bool", []any{"%d", true}, "1"},
		{"integer verb NaN", []any{"%d", "abc"}, "NaN"},
		{"truncating verb", []any{"%i", 42.9}, "42"},
		{"truncating verb negative", []any{"%i", "-7.8"}, "-7"},
		{"float verb", []any{"%f", 2}, "2"},
		{"float verb fraction", []any{"%f", "3.25"}, "3.25"},
		{"float verb NaN", []any{"%f", point{}}, "NaN"},
		{"float infinity", []any{"%f", math.Inf(1)}, "Infinity"},
		{"json verb", []any{"%j", map[string]int{"a": 1}}, `{"a":1}`},
		{"inspect verb", []any{"%O", point{1, 2}}, "{X:1 Y:2}"},
		{"css verb consumed", []any{"%cstyled", "color: red"}, "styled"},
		{"percent escape", []any{"%d%%", 50}, "50%"},
		{"unknown verb kept", []any{"%x %s", "a"}, "%x a"},
		{"missing argument kept", []any{"%s and %s", "a"}, "a and %s"},
		{"trailing percent", []any{"50%", 1}, "50% 1"},
		{"extra args appended", []any{"hi", "there", 7}, "hi there 7"},
		{"empty template still separates", []any{"", "x"}, " x"},
		{"non-string first", []any{point{1, 2}, "hi", 3}, "{X:1 Y:2} hi 3"},
		{"nil", []any{nil}, "<nil>"},
		{"nil pointer", []any{(*point)(nil), "after"}, "<nil> after"},
		{"pointer dereferenced", []any{&point{3, 4}}, "{X:3 Y:4}"},
		{"slice", []any{[]string{"details", "details"}}, "[details details]"},
		{"sorted map", []any{map[string]int{"b": 2, "a": 1}}, "map[a:1 b:2]"},
		{"error", []any{errors.New("bad stuff"), "ctx"}, "bad stuff ctx"},
		{"bool", []any{false}, "false"},
		{"panicking stringer", []any{explosive{}}, "%!v(PANIC=boom)"},
		{"panicking stringer in template", []any{"v=%s", explosive{}}, "v=%!v(PANIC=boom)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Format(tc.args...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Format(%#v) mismatch (-want +got):\n%s", tc.args, diff)
			}
		})
	}
}

func TestFormat_JSONFallsBackToInspect(t *testing.T) {
	// channels cannot be marshalled
	got := Format("%j", make(chan int))
	assert.NotEmpty(t, got)
	assert.NotContains(t, got, "%j")
}

func TestFormat_DetailedInspect(t *testing.T) {
	got := Format("%o", point{1, 2})
	assert.Contains(t, got, "logger.point")
	assert.Contains(t, got, "X:")

	err := errors.New("with stack")
	got = Format("%o", err)
	assert.Contains(t, got, "with stack")
	assert.Contains(t, got, "TestFormat_DetailedInspect", "pkg/errors stack trace should be rendered")
}

func TestFormat_IntegersKeepPrecision(t *testing.T) {
	assert.Equal(t, "9007199254740993", Format("%d", int64(9007199254740993)))
	assert.Equal(t, "18446744073709551615", Format("%i", uint64(math.MaxUint64)))
}

func TestFormat_MultibyteTemplate(t *testing.T) {
	assert.Equal(t, "héllo wörld ✓", Format("héllo %s ✓", "wörld"))
}
