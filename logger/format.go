package logger

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
)

var inspectConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// verbs lists the placeholders that consume an argument.
const verbs = "sdifjoOc"

// Format renders args into a message body.
//
// When the first argument is a string and more arguments follow, it is a
// template: %s, %d, %i, %f, %j, %o, %O and %c each consume one argument and
// %% prints a percent sign. Unknown verbs, and verbs left without an
// argument, are kept as written. Arguments not consumed by the template are
// appended, separated by spaces. Strings are printed as-is, everything else
// is inspected.
//
// Format never panics.
func Format(args ...any) string {
	if len(args) == 0 {
		return ""
	}

	var b strings.Builder
	rest := args
	sep := ""
	if tmpl, ok := args[0].(string); ok {
		if len(args) == 1 {
			return tmpl
		}
		rest = interpolate(&b, tmpl, args[1:])
		sep = " "
	}
	for _, arg := range rest {
		b.WriteString(sep)
		b.WriteString(plain(arg))
		sep = " "
	}
	return b.String()
}

// interpolate writes tmpl to b, substituting verbs, and returns the
// arguments left unconsumed.
func interpolate(b *strings.Builder, tmpl string, args []any) []any {
	next := 0
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '%' || i+1 == len(tmpl) {
			b.WriteByte(c)
			continue
		}
		verb := tmpl[i+1]
		if verb == '%' {
			b.WriteByte('%')
			i++
			continue
		}
		if next >= len(args) || strings.IndexByte(verbs, verb) < 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteString(formatVerb(verb, args[next]))
		next++
		i++
	}
	return args[next:]
}

func formatVerb(verb byte, arg any) string {
	switch verb {
	case 's':
		return plain(arg)
	case 'd':
		return formatNumber(arg, false)
	case 'i':
		return formatNumber(arg, true)
	case 'f':
		f, ok := toFloat(arg)
		if !ok {
			return "NaN"
		}
		return formatFloat(f)
	case 'j':
		return formatJSON(arg)
	case 'o':
		return inspectDetailed(arg)
	case 'O':
		return inspect(arg)
	default: // 'c' carries CSS in browsers; there is nothing to style here.
		return ""
	}
}

func plain(arg any) string {
	if s, ok := arg.(string); ok {
		return s
	}
	return inspect(arg)
}

func formatNumber(arg any, truncate bool) string {
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		if !truncate {
			return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
		}
	}
	f, ok := toFloat(arg)
	if !ok {
		return "NaN"
	}
	if truncate {
		f = math.Trunc(f)
	}
	return formatFloat(f)
}

func toFloat(arg any) (float64, bool) {
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		return f, err == nil
	}
	return 0, false
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatJSON(arg any) string {
	return safely(func() string {
		out, err := jsonAPI.MarshalToString(arg)
		if err != nil {
			return inspect(arg)
		}
		return out
	})
}

// inspect renders any value in a readable, deterministic form.
func inspect(arg any) string {
	return safely(func() string {
		switch v := arg.(type) {
		case nil:
			return "<nil>"
		case string:
			return v
		case error:
			return v.Error()
		case fmt.Stringer:
			return v.String()
		}

		rv := reflect.ValueOf(arg)
		for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
			if rv.IsNil() {
				return "<nil>"
			}
			rv = rv.Elem()
		}
		switch rv.Kind() {
		case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
			return inspectConfig.Sprintf("%+v", rv.Interface())
		}
		return fmt.Sprint(rv.Interface())
	})
}

// inspectDetailed adds type information, and stack traces for errors that
// carry one.
func inspectDetailed(arg any) string {
	return safely(func() string {
		switch v := arg.(type) {
		case nil:
			return "<nil>"
		case error:
			return fmt.Sprintf("%+v", v)
		}
		return inspectConfig.Sprintf("%#+v", arg)
	})
}

// safely recovers panics raised by user String or Error methods.
func safely(render func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("%%!v(PANIC=%v)", r)
		}
	}()
	return render()
}
