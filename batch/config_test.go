package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	src := t.TempDir()
	file := filepath.Join(src, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	absent := filepath.Join(t.TempDir(), "new")

	tests := []struct {
		name string
		in   Input
		err  error
	}{
		{"ok", Input{Source: src, Dest: src, Size: "1920", Quality: "80"}, nil},
		{"trimmed", Input{Source: " " + src + " ", Dest: src, Size: " 10 ", Quality: "95"}, nil},
		{"absent dest", Input{Source: src, Dest: absent, Size: "10", Quality: "1"}, ErrInvalidDest},
		{"absent dest with overwrite", Input{Source: src, Dest: absent, Size: "10", Quality: "1", Overwrite: true}, nil},
		{"overwrite ignores dest", Input{Source: src, Size: "10", Quality: "50", Overwrite: true}, nil},
		{"empty source", Input{Dest: src, Size: "10", Quality: "80"}, ErrInvalidSource},
		{"source is a file", Input{Source: file, Dest: src, Size: "10", Quality: "80"}, ErrInvalidSource},
		{"empty dest", Input{Source: src, Size: "10", Quality: "80"}, ErrInvalidDest},
		{"dest is a file", Input{Source: src, Dest: file, Size: "10", Quality: "80"}, ErrInvalidDest},
		{"size zero", Input{Source: src, Dest: src, Size: "0", Quality: "80"}, ErrInvalidSize},
		{"size negative", Input{Source: src, Dest: src, Size: "-5", Quality: "80"}, ErrInvalidSize},
		{"size word", Input{Source: src, Dest: src, Size: "big", Quality: "80"}, ErrInvalidSize},
		{"size float", Input{Source: src, Dest: src, Size: "10.5", Quality: "80"}, ErrInvalidSize},
		{"quality zero", Input{Source: src, Dest: src, Size: "10", Quality: "0"}, ErrInvalidQuality},
		{"quality high", Input{Source: src, Dest: src, Size: "10", Quality: "96"}, ErrInvalidQuality},
		{"quality empty", Input{Source: src, Dest: src, Size: "10", Quality: ""}, ErrInvalidQuality},
		{"source before size", Input{Size: "x", Quality: "x"}, ErrInvalidSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInput(tt.in)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestParseInputValues(t *testing.T) {
	src := t.TempDir()
	c, err := ParseInput(Input{Source: src, Size: "800", Quality: "65", Overwrite: true})
	require.NoError(t, err)
	assert.Equal(t, Config{Source: src, MaxSide: 800, Quality: 65, Overwrite: true}, c)
}

func TestErrorLine(t *testing.T) {
	assert.Equal(t, "Error: Invalid source folder.", ErrorLine(ErrInvalidSource))
	assert.Equal(t, "Error: Invalid destination folder.", ErrorLine(ErrInvalidDest))
	assert.Equal(t, "Error: Please enter a valid number greater than 0 for the image size.", ErrorLine(ErrInvalidSize))
	assert.Equal(t, "Error: Image quality must be a number between 1 and 95.", ErrorLine(ErrInvalidQuality))
}

func TestOutputPath(t *testing.T) {
	c := Config{Source: "/in", Dest: "/out"}
	assert.Equal(t, filepath.Join("/out", "a.jpg"), c.OutputPath("/in/a.jpg"))
	c.Overwrite = true
	assert.Equal(t, "/in/a.jpg", c.OutputPath("/in/a.jpg"))
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.PNG", "a.jpg", "c.jpeg", "d.webp", "e"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "f.jpg"), 0755))

	elsewhere := filepath.Join(t.TempDir(), "real.jpg")
	require.NoError(t, os.WriteFile(elsewhere, nil, 0644))
	require.NoError(t, os.Symlink(elsewhere, filepath.Join(dir, "g.jpg")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.jpg"), filepath.Join(dir, "h.jpg")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "f.jpg"), filepath.Join(dir, "i.jpg")))

	files, err := ListImages(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.PNG"),
		filepath.Join(dir, "c.jpeg"),
		filepath.Join(dir, "g.jpg"),
	}, files)

	_, err = ListImages(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
