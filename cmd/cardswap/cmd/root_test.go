package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "Carte mancanti:\n1 -- 2 -- 3\n\nCarte doppie:\n5\n\nUltima modifica: 18/10/2026, 10:00:00"

// run 执行一次命令并返回输出
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	if target, _, err := rootCmd.Find(args); err == nil {
		resetFlags(target)
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	err := rootCmd.Execute()
	return out.String(), err
}

// resetActive 每个测试从没有当前会话开始
func resetActive(t *testing.T) {
	t.Helper()
	active.id, active.file = "", ""
	t.Cleanup(func() {
		active.id, active.file = "", ""
	})
}

func writeList(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestGenerate(t *testing.T) {
	resetActive(t)
	path := filepath.Join(t.TempDir(), "nuova.txt")

	out, err := run(t, "generate", "4", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated a list of 4 items")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lists := checklist.Parse(string(data))
	assert.Equal(t, []checklist.Item{1, 2, 3, 4}, lists.Missing)
	assert.Empty(t, lists.Doubles)
}

func TestGenerate_InvalidCount(t *testing.T) {
	resetActive(t)

	_, err := run(t, "generate", "abc")
	assert.ErrorIs(t, err, checklist.ErrInvalidCount)

	_, err = run(t, "generate", "0")
	assert.ErrorIs(t, err, checklist.ErrInvalidCount)
}

func TestFound_WritesBack(t *testing.T) {
	resetActive(t)
	path := writeList(t, "lista.txt", sampleText)
	before := 0
	if sessionSvc != nil {
		before = sessionSvc.Len()
	}

	out, err := run(t, "found", "-f", path, "2", "9", "--write", "--markers")
	require.NoError(t, err)
	assert.Contains(t, out, "1 -- -2 -- 3")
	assert.Contains(t, out, "Carte non presenti tra le mancanti: 9")
	assert.Contains(t, out, "Saved to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []checklist.Item{1, 3}, checklist.Parse(string(data)).Missing)

	// 临时会话在命令结束后被删除
	assert.Equal(t, before, GetSessionService().Len())
}

func TestFound_WithoutWriteLeavesFile(t *testing.T) {
	resetActive(t)
	path := writeList(t, "lista.txt", sampleText)

	_, err := run(t, "found", "-f", path, "1")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(data))
}

func TestCommandsNeedSession(t *testing.T) {
	resetActive(t)

	_, err := run(t, "add", "7")
	assert.ErrorIs(t, err, errNoSession)

	_, err = run(t, "show")
	assert.ErrorIs(t, err, errNoSession)
}

func TestSessionWorkflow(t *testing.T) {
	resetActive(t)
	path := writeList(t, "lista.txt", sampleText)

	out, err := run(t, "load", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded "+path)
	id := active.id
	require.NotEmpty(t, id)
	t.Cleanup(func() { _ = GetSessionService().Delete(id) })

	out, err = run(t, "add", "7", "2", "--markers")
	require.NoError(t, err)
	assert.Contains(t, out, "Carte doppie:\n5 -- +7")
	assert.Contains(t, out, "Carte ancora mancanti, non aggiunte alle doppie: 2")

	out, err = run(t, "remove", "5", "--markers")
	require.NoError(t, err)
	assert.Contains(t, out, "-5 -- +7")

	out, err = run(t, "dismiss")
	require.NoError(t, err)
	assert.NotContains(t, out, "Carte ancora mancanti")

	out, err = run(t, "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Carte doppie:\n7\n")

	out, err = run(t, "sessions")
	require.NoError(t, err)
	assert.Contains(t, out, id)

	_, err = run(t, "edit", "--text", "Carte mancanti: 1", "--write")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lists := checklist.Parse(string(data))
	assert.Equal(t, []checklist.Item{1}, lists.Missing)
	assert.Empty(t, lists.Doubles)

	out, err = run(t, "close")
	require.NoError(t, err)
	assert.Contains(t, out, "Session "+id+" closed.")
	assert.Empty(t, active.id)
}

func TestEdit_RequiresSource(t *testing.T) {
	resetActive(t)
	path := writeList(t, "lista.txt", sampleText)

	_, err := run(t, "edit", "-f", path)
	assert.Error(t, err)

	edited := writeList(t, "modificata.txt", "Carte mancanti: 3")
	_, err = run(t, "edit", "-f", path, "--from", edited, "--text", "x")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	resetActive(t)
	anna := writeList(t, "anna.txt", "Carte doppie: 3 -- 3 -- 5 -- 9")
	bruno := writeList(t, "bruno.txt", "Carte doppie: 5, 7")

	out, err := run(t, "compare", anna, bruno)
	require.NoError(t, err)
	assert.Contains(t, out, "anna can give bruno:\n3 -- 9\n")
	assert.Contains(t, out, "bruno can give anna:\n7\n")

	empty := writeList(t, "vuota.txt", "  ")
	_, err = run(t, "compare", anna, empty)
	assert.ErrorIs(t, err, checklist.ErrEmptyInput)
}

func TestInteractiveMode(t *testing.T) {
	resetActive(t)
	path := writeList(t, "lista.txt", sampleText)

	input := strings.Join([]string{
		"load " + path,
		"found 1 3",
		"show --markers",
		"add 'not a number'",
		"interactive",
		"exit",
	}, "\n")

	var out, errOut bytes.Buffer
	runInteractiveMode(strings.NewReader(input), &out, &errOut)
	t.Cleanup(func() {
		if active.id != "" {
			_ = GetSessionService().Delete(active.id)
		}
	})

	assert.Contains(t, out.String(), "["+path+"]> ")
	assert.Contains(t, out.String(), "-1 -- 2 -- -3")
	assert.Contains(t, out.String(), "Exiting...")
	assert.Contains(t, errOut.String(), checklist.ErrEmptyInput.Error())
	assert.Contains(t, errOut.String(), "Already in interactive mode")
}

func TestMatch(t *testing.T) {
	resetActive(t)
	mine := writeList(t, "io.txt", "Carte mancanti: 1 -- 2\nCarte doppie: 9")
	anna := writeList(t, "anna.txt", "Carte mancanti: 9\nCarte doppie: 1 -- 2")
	bruno := writeList(t, "bruno.txt", "Carte doppie: 3")

	out, err := run(t, "match", mine, bruno, anna, "--workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "PARTNER")
	assert.Contains(t, lines[1], "anna")
	assert.Contains(t, lines[1], "1 -- 2")
	assert.Contains(t, lines[2], "bruno")
}
