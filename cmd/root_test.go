package cmd

import (
	"bytes"
	"os"
	"path"
	"strings"
	"testing"

	st "github.com/AustralianCyberSecurityCentre/azul-rmdup.git/settings"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// execute runs the cli with fresh flag state and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, c := range []*cobra.Command{rootCmd, hashCmd} {
		reset := func(f *pflag.Flag) {
			require.Nil(t, f.Value.Set(f.DefValue))
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootDefaults(t *testing.T) {
	defer st.ResetSettings()
	out, _, err := execute(t, "a\nb\na\nc\nb\n")
	require.Nil(t, err)
	require.Equal(t, "a\nb\nc\n", out)

	out, _, err = execute(t, "")
	require.Nil(t, err)
	require.Equal(t, "", out)

	out, _, err = execute(t, "\n\nx")
	require.Nil(t, err)
	require.Equal(t, "\nx\n", out)
}

func TestRootRejectsArgs(t *testing.T) {
	defer st.ResetSettings()
	_, _, err := execute(t, "a\n", "input.txt")
	require.ErrorContains(t, err, "unknown command")
}

func TestRootFlags(t *testing.T) {
	defer st.ResetSettings()
	in := "{\"id\":1,\"v\":\"a\"}\n{\"id\":2,\"v\":\"b\"}\n{\"id\":1,\"v\":\"c\"}\n"
	out, stderr, err := execute(t, in, "--key", "id", "--mode", "wide", "--stats")
	require.Nil(t, err)
	require.Equal(t, "{\"id\":1,\"v\":\"a\"}\n{\"id\":2,\"v\":\"b\"}\n", out)
	require.Equal(t, "id", st.Dedupe.Key)
	require.Equal(t, "wide", st.Dedupe.Mode)

	var stats map[string]int
	require.Nil(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &stats))
	require.Equal(t, 3, stats["lines"])
	require.Equal(t, 2, stats["emitted"])
	require.Equal(t, 1, stats["duplicates"])
	require.Equal(t, 2, stats["hashes"])
}

func TestRootBounded(t *testing.T) {
	defer st.ResetSettings()
	out, _, err := execute(t, "a\na\nb\n", "--mode", "bounded", "--cache-bytes", "1Ki", "--log-level", "error")
	require.Nil(t, err)
	require.Equal(t, "a\nb\n", out)
	require.Equal(t, st.HumanReadableBytes(1024), st.Dedupe.CacheBytes)

	_, _, err = execute(t, "a\n", "--cache-bytes", "lots")
	require.ErrorContains(t, err, "invalid byte size")

	_, _, err = execute(t, "a\n", "--mode", "md5")
	require.ErrorContains(t, err, "unknown dedupe mode")
}

func TestRootConfigAndDuplicatesLog(t *testing.T) {
	defer st.ResetSettings()
	dir := t.TempDir()
	conf := path.Join(dir, "rmdup.yaml")
	require.Nil(t, os.WriteFile(conf, []byte("log_path: "+dir+"\n"), 0600))

	out, _, err := execute(t, "x\ny\nx\nx\n", "--config", conf)
	require.Nil(t, err)
	require.Equal(t, "x\ny\n", out)

	raw, err := os.ReadFile(path.Join(dir, st.DuplicatesLogName))
	require.Nil(t, err)
	require.Equal(t, "x\nx\n", string(raw))
}
