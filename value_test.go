package arggo

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hostPort struct {
	host string
	port string
}

func (a *hostPort) FromString(s string) error {
	host, port, found := strings.Cut(s, ":")
	if !found {
		return errors.New("expected host:port")
	}
	a.host = host
	a.port = port
	return nil
}

var _ Parse = &hostPort{}

func parseOne(t *testing.T, raw string) *Parser {
	t.Helper()
	p := NewParser()
	p.AddOptional(Abbr("value", "v"), "")
	require.NoError(t, p.ParseArgs([]string{"-v", raw}))
	return p
}

func TestConvertScalars(t *testing.T) {
	p := parseOne(t, "42")

	i, err := Value[int](p, "value")
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	i8, err := Value[int8](p, "value")
	require.NoError(t, err)
	assert.Equal(t, int8(42), i8)

	u16, err := Value[uint16](p, "value")
	require.NoError(t, err)
	assert.Equal(t, uint16(42), u16)

	f, err := Value[float64](p, "value")
	require.NoError(t, err)
	assert.Equal(t, 42.0, f)

	s, err := Value[string](p, "value")
	require.NoError(t, err)
	assert.Equal(t, "42", s, "string conversion is the identity")
}

func TestConvertBool(t *testing.T) {
	b, err := Value[bool](parseOne(t, "true"), "value")
	require.NoError(t, err)
	assert.True(t, b)
}

func TestConvertOverflow(t *testing.T) {
	_, err := Value[int8](parseOne(t, "300"), "value")
	assert.ErrorIs(t, err, ErrValueConversion)
	_, err = Value[uint](parseOne(t, "-1"), "value")
	assert.ErrorIs(t, err, ErrValueConversion)
}

func TestConvertFailureDoesNotAbortParse(t *testing.T) {
	p := NewParser()
	p.AddOptional(Abbr("count", "c"), "")
	require.NoError(t, p.ParseArgs([]string{"-c:abc"}), "parse succeeds, only the read fails")

	_, err := Value[int](p, "count")
	assert.ErrorIs(t, err, ErrValueConversion)
	assert.NotErrorIs(t, err, ErrNotParsed, "unconvertible is distinct from never supplied")

	s, err := Value[string](p, "count")
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestValueNotSupplied(t *testing.T) {
	p := NewParser()
	p.AddOptional(Abbr("count", "c"), "")
	require.NoError(t, p.ParseArgs(nil))

	_, err := Value[int](p, "count")
	assert.ErrorIs(t, err, ErrNotParsed)
	_, err = Value[int](p, "no-such-key")
	assert.ErrorIs(t, err, ErrNotParsed)
}

func TestValueLookupSpellings(t *testing.T) {
	p := NewParser()
	p.AddMandatory(Abbr("output", "o"), "")
	require.NoError(t, p.ParseArgs([]string{"--output", "x"}))

	for _, key := range []string{"output", "o", "--output", "-o"} {
		v, err := Value[string](p, key)
		require.NoError(t, err)
		assert.Equal(t, "x", v)
	}
}

func TestValueOr(t *testing.T) {
	p := NewParser()
	p.AddOptional(Abbr("level", "l"), "")
	require.NoError(t, p.ParseArgs(nil))
	assert.Equal(t, 3, ValueOr(p, "level", 3))

	require.NoError(t, p.ParseArgs([]string{"-l:9"}))
	assert.Equal(t, 9, ValueOr(p, "level", 3))
}

func TestConvertCustomType(t *testing.T) {
	a, err := Value[hostPort](parseOne(t, "127.0.0.1:8000"), "value")
	require.NoError(t, err)
	assert.Equal(t, hostPort{host: "127.0.0.1", port: "8000"}, a)

	_, err = Value[hostPort](parseOne(t, "nocolon"), "value")
	assert.ErrorIs(t, err, ErrValueConversion)
}

func TestConvertUnsupportedType(t *testing.T) {
	_, err := Value[struct{ X int }](parseOne(t, "x"), "value")
	assert.ErrorIs(t, err, ErrValueConversion)
}
