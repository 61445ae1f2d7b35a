package extraction

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	name   string
	args   []string
	write  []byte
	stderr []byte
	err    error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = args
	if s.err != nil {
		return nil, s.stderr, s.err
	}
	if s.write != nil {
		root := args[len(args)-1]
		if err := os.WriteFile(root+".png", s.write, 0o600); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func TestPdftoppmRasterizer_FirstPage(t *testing.T) {
	runner := &stubRunner{write: []byte("PNGDATA")}
	r := NewPdftoppmRasterizer("", 0, runner, nil)

	png, err := r.FirstPage(context.Background(), []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, []byte("PNGDATA"), png)
	assert.Equal(t, "pdftoppm", runner.name)
	assert.Equal(t, []string{"-r", "150", "-png", "-f", "1", "-l", "1", "-singlefile"}, runner.args[:8])
}

func TestPdftoppmRasterizer_CommandFails(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1"), stderr: []byte("Syntax Error: Couldn't read xref table\n")}
	r := NewPdftoppmRasterizer("/usr/bin/pdftoppm", 200, runner, nil)

	_, err := r.FirstPage(context.Background(), []byte("not a pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xref table")
	assert.Equal(t, "200", runner.args[1])
}

func TestPdftoppmRasterizer_NoImage(t *testing.T) {
	r := NewPdftoppmRasterizer("pdftoppm", 150, &stubRunner{}, nil)

	_, err := r.FirstPage(context.Background(), []byte("%PDF-1.4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no image")
}
