package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_ReadsLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("90210\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Zip code", &out)
	require.NoError(t, err)
	require.Equal(t, "90210", got)
	require.Contains(t, out.String(), "Zip code")
}

func TestGetSimpleText_TrimsWhitespace(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  condo  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Property type", &out)
	require.NoError(t, err)
	require.Equal(t, "condo", got)
}

func TestGetSimpleText_EOFAfterPartialLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("300000"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Max price", &out)
	require.NoError(t, err)
	require.Equal(t, "300000", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(reader, "Anything", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()

	readPassword = func(fd int) ([]byte, error) {
		return []byte("hunter22"), nil
	}

	var out bytes.Buffer
	got, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("hunter22"), got)
	require.Contains(t, out.String(), "Enter password")
}
