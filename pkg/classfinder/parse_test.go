package classfinder

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "a.B\nc.D\n", []string{"a.B", "c.D"}},
		{"no trailing newline", "a.B\nc.D", []string{"a.B", "c.D"}},
		{"blank lines dropped", "a.B\n\n\nc.D\n\n", []string{"a.B", "c.D"}},
		{"whitespace trimmed", "  a.B  \n\tc.D\t\n", []string{"a.B", "c.D"}},
		{"crlf", "a.B\r\nc.D\r\n", []string{"a.B", "c.D"}},
		{"empty", "", nil},
		{"only whitespace", " \n\t\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIndex(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// errReader fails after yielding some content.
type errReader struct {
	read bool
}

func (r *errReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, "a.B\n"), nil
	}
	return 0, errors.New("stream broke")
}

func TestParseIndexReadError(t *testing.T) {
	_, err := parseIndex(&errReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream broke")
}

// trackedResource records whether its stream was closed.
type trackedResource struct {
	content  io.Reader
	openErr  error
	closed   bool
	closeErr error
}

func (r *trackedResource) Open() (io.ReadCloser, error) {
	if r.openErr != nil {
		return nil, r.openErr
	}
	return &trackedCloser{r: r}, nil
}

func (r *trackedResource) Origin() string { return "test-resource" }

type trackedCloser struct {
	r *trackedResource
}

func (c *trackedCloser) Read(p []byte) (int, error) { return c.r.content.Read(p) }

func (c *trackedCloser) Close() error {
	c.r.closed = true
	return c.r.closeErr
}

func TestReadResourceClosesStream(t *testing.T) {
	res := &trackedResource{content: strings.NewReader("a.B\n")}

	names, op, err := readResource(res)
	require.NoError(t, err)
	assert.Empty(t, op)
	assert.Equal(t, []string{"a.B"}, names)
	assert.True(t, res.closed)
}

func TestReadResourceClosesStreamOnParseError(t *testing.T) {
	res := &trackedResource{content: &errReader{}}

	_, op, err := readResource(res)
	require.Error(t, err)
	assert.Equal(t, "read", op)
	assert.True(t, res.closed)
}

func TestReadResourceOpenError(t *testing.T) {
	res := &trackedResource{openErr: errors.New("gone")}

	_, op, err := readResource(res)
	require.Error(t, err)
	assert.Equal(t, "open", op)
	assert.False(t, res.closed)
}
