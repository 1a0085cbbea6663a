package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdoc = `<?xml version="1.0"?>
<GCC_XML>
  <Namespace id="_1" name="::" members="_2"/>
  <Class id="_2" name="Foo" context="_1" members="_10 _11"/>
  <FundamentalType id="_20" name="int" size="32" align="32"/>
  <FundamentalType id="_21" name="double" size="64" align="64"/>
  <Method id="_10" name="get" returns="_20" const="1" context="_2" access="public"/>
  <Method id="_11" name="scale" returns="_21" context="_2" access="public">
    <Argument name="f" type="_21"/>
  </Method>
</GCC_XML>
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "t.xml")
	require.NoError(t, os.WriteFile(input, []byte(testdoc), 0o644))
	out := filepath.Join(dir, "gen")

	var stderr bytes.Buffer
	err := run([]string{"-pkg", "mylib", "-header", "mylib.hh", "-o", out, input}, &stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "mylib_cxxgo.go"))
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, "package mylib")
	assert.Contains(t, src, "type Foo interface {")
	assert.Contains(t, src, "Get() int32")
	assert.Contains(t, src, "Scale(f float64) float64")
}

func TestRunNoPackage(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "t.xml")
	require.NoError(t, os.WriteFile(input, []byte(testdoc), 0o644))

	var stderr bytes.Buffer
	assert.ErrorContains(t, run([]string{input}, &stderr), "no package name")
}

// EOF
