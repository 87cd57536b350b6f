package ipv4

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in        string
		value     uint32
		prefixLen int
		hasPrefix bool
	}{
		{"10.20.30.40/24", 0x0a141e28, 24, true},
		{"10.20.30.40", 0x0a141e28, 0, false},
		{"169090600", 0x0a141e28, 0, false},
		{"0169090600", 0x0a141e28, 0, false},
		{"0x0a141e28", 0x0a141e28, 0, false},
		{"0XA141E28", 0x0a141e28, 0, false},
		{"0.0.0.0/0", 0, 0, true},
		{"255.255.255.255/32", 0xffffffff, 32, true},
		{"4294967295", 0xffffffff, 0, false},
		{"0", 0, 0, false},
		{"10.0.0.1/08", 0x0a000001, 8, true},
		{"10.20.30.40/024", 0x0a141e28, 24, true},
	}

	for _, tcase := range cases {
		tok, err := Parse(tcase.in)
		require.NoError(t, err, tcase.in)

		assert.Equal(t, tcase.in, tok.Text)
		assert.Equal(t, tcase.value, tok.Value, tcase.in)
		assert.Equal(t, tcase.prefixLen, tok.PrefixLen, tcase.in)
		assert.Equal(t, tcase.hasPrefix, tok.HasPrefix, tcase.in)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"",
		"10.20.30",
		"10.20.30.40.50",
		"10.20.30.256",
		"10.20.30.-1",
		"10.020.30.40",
		"10.20.30.40/33",
		"10.20.30.40/033",
		"10.20.30.40/",
		"10.20.30.40/24/8",
		"10.20.30.40/99999999999999999999",
		"/24",
		"4294967296",
		"0x",
		"0x123456789",
		"0xzz",
		"foo",
		"-1",
		"10..30.40",
	}

	for _, in := range cases {
		_, err := Parse(in)
		require.Error(t, err, in)

		var afe *AddressFormatError
		assert.True(t, errors.As(err, &afe), in)
		assert.Equal(t, in, afe.Token)
	}
}

func TestParseMaskLen(t *testing.T) {
	for n := 0; n <= 32; n++ {
		got, err := ParseMaskLen(fmt.Sprint(n))
		assert.NoError(t, err)
		assert.Equal(t, n, got)
	}

	for in, want := range map[string]int{"08": 8, "00": 0, "032": 32} {
		got, err := ParseMaskLen(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"33", "-1", "", "x", "+8", "255.255.255.0"} {
		_, err := ParseMaskLen(bad)
		require.Error(t, err, bad)

		var afe *AddressFormatError
		require.True(t, errors.As(err, &afe), bad)
		assert.Equal(t, "mask", afe.Kind)
		assert.Contains(t, err.Error(), "invalid mask ", bad)
	}
}

func TestOctetsRoundTrip(t *testing.T) {
	samples := [][4]byte{
		{0, 0, 0, 0},
		{10, 20, 30, 40},
		{192, 168, 1, 254},
		{255, 255, 255, 255},
		{1, 0, 0, 1},
	}

	for _, o := range samples {
		s := fmt.Sprintf("%d.%d.%d.%d", o[0], o[1], o[2], o[3])
		tok, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, o, Octets(tok.Value))
		assert.Equal(t, tok.Value, FromOctets(o))
	}
}
