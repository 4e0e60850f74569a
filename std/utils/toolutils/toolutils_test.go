package toolutils_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/flagcell/flagcell/std/utils/toolutils"
	"github.com/stretchr/testify/require"
)

func TestStatusPrinter(t *testing.T) {
	buf := &bytes.Buffer{}
	p := toolutils.StatusPrinter{File: buf, Padding: 8}
	p.Print("enabled", true)
	p.Print("very-long-key", 1)
	require.Equal(t, " enabled=true\nvery-long-key=1\n", buf.String())
}

func TestReadYaml(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.yml")
	require.NoError(t, os.WriteFile(file, []byte("name: cell\ncount: 3\n"), 0o644))

	conf := struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}{}
	require.NoError(t, toolutils.ReadYaml(&conf, file))
	require.Equal(t, "cell", conf.Name)
	require.Equal(t, 3, conf.Count)

	require.NoError(t, os.WriteFile(file, []byte("bogus: 1\n"), 0o644))
	require.Error(t, toolutils.ReadYaml(&conf, file))
	require.Error(t, toolutils.ReadYaml(&conf, filepath.Join(dir, "missing.yml")))
}
