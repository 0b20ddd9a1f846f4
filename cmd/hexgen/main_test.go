package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExprCommand(t *testing.T) {
	out, err := execute(t, "expr", "010aff")
	assert.Nil(t, err)
	assert.Equal(t, "[3]byte{0x01, 0x0a, 0xff}\n", out)
}

func TestExprCommand_InvalidHex(t *testing.T) {
	_, err := execute(t, "expr", "123")
	assert.NotNil(t, err)
}

func TestConstCommand(t *testing.T) {
	out, err := execute(t, "const", "Key", "abcd")
	assert.Nil(t, err)
	assert.Equal(t, "var Key = [2]byte{0xab, 0xcd} // abcd\n", out)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.Nil(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunGenerate(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "hexgen.toml")
	output := filepath.Join(dir, "keys_gen.go")
	writeFile(t, manifest, `
package = "keys"
output = "`+output+`"

[[constant]]
name = "AESKey"
hex = "000102030405060708090a0b0c0d0e0f"
`)

	err := runGenerate(manifest, false, false, io.Discard)
	assert.Nil(t, err)

	src, err := os.ReadFile(output)
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(string(src), "// Code generated by hexgen. DO NOT EDIT."))
	assert.Contains(t, string(src), "var AESKey = [16]byte{")

	// A file hexgen wrote itself is regenerated without --force.
	assert.Nil(t, runGenerate(manifest, false, false, io.Discard))
}

func TestRunGenerate_RefusesForeignFile(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "hexgen.toml")
	output := filepath.Join(dir, "keys.go")
	writeFile(t, manifest, `
package = "keys"
output = "`+output+`"

[[constant]]
name = "Key"
hex = "abcd"
`)
	writeFile(t, output, "package keys\n\nvar handWritten = true\n")

	err := runGenerate(manifest, false, false, io.Discard)
	assert.ErrorContains(t, err, "not written by hexgen")

	// --force overwrites.
	assert.Nil(t, runGenerate(manifest, false, true, io.Discard))
	src, err := os.ReadFile(output)
	assert.Nil(t, err)
	assert.Contains(t, string(src), "var Key = [2]byte{0xab, 0xcd}")
}

func TestRunGenerate_Stdout(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "hexgen.toml")
	output := filepath.Join(dir, "keys.go")
	writeFile(t, manifest, `
package = "keys"
output = "`+output+`"

[[constant]]
name = "Key"
hex = "abcd"
`)

	var out bytes.Buffer
	assert.Nil(t, runGenerate(manifest, true, false, &out))
	assert.Contains(t, out.String(), "var Key = [2]byte{0xab, 0xcd}")

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestRunGenerate_InvalidHexFailsGeneration(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "hexgen.toml")
	writeFile(t, manifest, `
package = "keys"

[[constant]]
name = "Key"
hex = "11X1"
`)

	err := runGenerate(manifest, false, false, io.Discard)
	assert.NotNil(t, err)
}
