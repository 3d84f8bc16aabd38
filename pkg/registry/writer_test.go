package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	entries := []Entry{
		{Addr: 0x10, Size: 4, Name: "foo", Status: StatusMatching},
		{Addr: 0x20, Size: 8, Name: "", Status: StatusNotDecompiled},
	}
	path := filepath.Join(t.TempDir(), "functions.csv")

	require.NoError(t, NewWriter(testBase, zerolog.Nop()).Write(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "Address,Quality,Size,Name\n" +
		"0x0000007100000010,O,000004,foo\n" +
		"0x0000007100000020,U,000008,\n"
	assert.Equal(t, want, string(data))
}

func TestWriter_Write_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "functions.csv")

	require.NoError(t, NewWriter(testBase, zerolog.Nop()).Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Address,Quality,Size,Name\n", string(data))
}

func TestWriter_RoundTrip(t *testing.T) {
	entries := []Entry{
		{Addr: 0x10, Size: 4, Name: "foo", Status: StatusMatching},
		{Addr: 0x20, Size: 8, Name: "", Status: StatusNotDecompiled},
		{Addr: 0x1234, Size: 256, Name: "ns::Klass::method", Status: StatusNonMatchingMajor},
		{Addr: 0xffffffff, Size: 999999, Name: "_Z3quxv", Status: StatusWip},
		{Addr: 0x2000, Size: 7654321, Name: "big", Status: StatusMatching},
	}
	path := filepath.Join(t.TempDir(), "functions.csv")

	require.NoError(t, NewWriter(testBase, zerolog.Nop()).Write(path, entries))

	loaded, err := NewLoader(testBase, zerolog.Nop()).Load(path)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestWriter_Write_RejectsUnencodableNames(t *testing.T) {
	tests := []struct {
		name     string
		funcName string
	}{
		{name: "comma", funcName: "foo,bar"},
		{name: "newline", funcName: "foo\nbar"},
		{name: "carriage return", funcName: "foo\rbar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []Entry{{Addr: 0x10, Size: 4, Name: tt.funcName, Status: StatusMatching}}
			path := filepath.Join(t.TempDir(), "functions.csv")

			err := NewWriter(testBase, zerolog.Nop()).Write(path, entries)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestWriter_Write_FullRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "functions.csv")
	writer := NewWriter(testBase, zerolog.Nop())

	big := []Entry{
		{Addr: 0x10, Size: 4, Name: "one", Status: StatusMatching},
		{Addr: 0x20, Size: 4, Name: "two", Status: StatusMatching},
		{Addr: 0x30, Size: 4, Name: "three", Status: StatusMatching},
	}
	require.NoError(t, writer.Write(path, big))

	// A shorter snapshot must fully replace the previous file, not be
	// patched into it.
	small := big[:1]
	require.NoError(t, writer.Write(path, small))

	loaded, err := NewLoader(testBase, zerolog.Nop()).Load(path)
	require.NoError(t, err)
	assert.Equal(t, small, loaded)
}
