package arggo

import (
	"fmt"
	"reflect"
	"strconv"
)

// Parse is the extension point for custom value types: implement it on a
// pointer receiver and the conversion layer hands the raw string to
// FromString instead of the built-in scalar parsing.
type Parse interface {
	FromString(s string) error
}

// Value converts the stored payload of the mandatory, optional or
// positional argument named key to T. It returns ErrNotParsed when the
// argument was never supplied (or key is unknown at this node) and a
// ErrValueConversion wrap when the payload does not parse as T.
// Converting to string never fails.
func Value[T any](p *Parser, key string) (T, error) {
	var zero T
	arg := p.findValueArg(key)
	if arg == nil || !arg.parsed {
		return zero, fmt.Errorf("%w: %s", ErrNotParsed, key)
	}
	return convert[T](arg.value)
}

// ValueOr converts like Value, substituting fallback when the argument is
// absent or its payload does not convert.
func ValueOr[T any](p *Parser, key string, fallback T) T {
	v, err := Value[T](p, key)
	if err != nil {
		return fallback
	}
	return v
}

func (p *Parser) findValueArg(key string) *argument {
	for _, group := range [][]*argument{p.mandatories, p.optionals, p.positionals} {
		for _, a := range group {
			if a.matchesLookup(key) {
				return a
			}
		}
	}
	return nil
}

// convert parses s as T. Payloads are plain text, typing is deferred
// entirely to this accessor-time conversion.
func convert[T any](s string) (T, error) {
	var out T
	if custom, ok := any(&out).(Parse); ok {
		if err := custom.FromString(s); err != nil {
			return out, fmt.Errorf("%w: %q: %v", ErrValueConversion, s, err)
		}
		return out, nil
	}

	rv := reflect.ValueOf(&out).Elem()
	if rv.Kind() == reflect.Pointer {
		// pointer target, e.g. T = *File[C, L]: allocate and let the
		// pointee's Parse implementation consume the payload
		inst := reflect.New(rv.Type().Elem())
		if custom, ok := inst.Interface().(Parse); ok {
			if err := custom.FromString(s); err != nil {
				return out, fmt.Errorf("%w: %q: %v", ErrValueConversion, s, err)
			}
			rv.Set(inst)
			return out, nil
		}
	}
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return out, conversionErr(s, rv.Type())
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return out, conversionErr(s, rv.Type())
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return out, conversionErr(s, rv.Type())
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return out, conversionErr(s, rv.Type())
		}
		rv.SetFloat(f)
	default:
		return out, fmt.Errorf("%w: unsupported type %v", ErrValueConversion, rv.Type())
	}
	return out, nil
}

func conversionErr(s string, t reflect.Type) error {
	return fmt.Errorf("%w: %q as %v", ErrValueConversion, s, t)
}
