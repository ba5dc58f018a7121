package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestREPL(t *testing.T) {
	in := strings.Join([]string{
		"2+3*4",
		"",
		"10/0",
		":tree 2^3^2",
		":tokens -5+2",
		":tree (1",
		":bogus",
		"-(3+4)",
		":quit",
		"1+1",
	}, "\n")
	out, err := run(t, in, "repl")
	require.NoError(t, err)
	assert.Equal(t, "14\n"+
		"Error: division by zero: 10 / 0\n"+
		"([2 ^ 3] ^ 2)\n"+
		"[-5 + 2]\n"+
		"Error: column 1: unbalanced parentheses: open paren with no close paren\n"+
		"Error: unknown command :bogus\n"+
		"-7\n", out)
}

func TestREPLEOF(t *testing.T) {
	out, err := run(t, "5 mod 3", "repl")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestREPLHelp(t *testing.T) {
	out, err := run(t, ":help\n", "repl")
	require.NoError(t, err)
	assert.Equal(t, replHelp+"\n", out)
}

func TestScanLines(t *testing.T) {
	l := scanLines{bufio.NewScanner(strings.NewReader("a\nb"))}
	s, err := l.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a", s)
	s, err = l.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "b", s)
	_, err = l.ReadLine()
	assert.Error(t, err)
}

func TestREPLLeadingSpace(t *testing.T) {
	// A - after a space is an operator, so the power binds first.
	out, err := run(t, " -5^2\n-5^2\n  :tree -5^2\n", "repl")
	require.NoError(t, err)
	assert.Equal(t, "-25\n25\n(-5 ^ 2)\n", out)
}
