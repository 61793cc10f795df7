package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--version"}, nil, &stdout, &stderr))
	require.Contains(t, stdout.String(), "dtdlint: using dtd version")
}

func TestUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 1, run([]string{"--no-such-flag"}, nil, &stdout, &stderr))
	require.Contains(t, stderr.String(), "Usage : dtdlint")
}

func TestStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{"--dump", "--no-color"}, strings.NewReader(`<!ELEMENT a (b | c)*>`), &stdout, &stderr)
	require.Equal(t, 0, status, "stderr: %s", stderr.String())
	require.Equal(t, "<!ELEMENT a (b|c)*>\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestErrorsAndWarnings(t *testing.T) {
	const input = "<!ELEMENT a EMPTY>\n<!ELEMENT a ANY>\n<!ENTITY % ext SYSTEM 'ext.mod'>\n%ext;"

	var stdout, stderr bytes.Buffer
	status := run([]string{"--no-color"}, strings.NewReader(input), &stdout, &stderr)
	require.Equal(t, 1, status)
	require.Equal(t, `-: error: element 'a' is declared more than once (line 2)
-: warning: external entity 'ext' (ext.mod) was referenced but external entities are not parsed (line 4)
`, stderr.String())
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.dtd")
	subset := filepath.Join(dir, "subset.dtd")
	require.NoError(t, os.WriteFile(good, []byte(`<!ELEMENT doc (%content;)><!ATTLIST doc id ID #IMPLIED>`), 0o644))
	require.NoError(t, os.WriteFile(subset, []byte(`<!ENTITY % content "#PCDATA">`), 0o644))

	t.Run("internal subset", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		status := run([]string{"--internal-subset", subset, "--dump", good}, nil, &stdout, &stderr)
		require.Equal(t, 0, status, "stderr: %s", stderr.String())
		require.Contains(t, stdout.String(), "<!ELEMENT doc (#PCDATA)>\n")
	})

	t.Run("missing internal subset", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		status := run([]string{"--internal-subset", filepath.Join(dir, "nope.dtd"), good}, nil, &stdout, &stderr)
		require.Equal(t, 1, status)
		require.Contains(t, stderr.String(), "failed to open")
	})

	t.Run("missing file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		status := run([]string{"--no-color", filepath.Join(dir, "nope.dtd")}, nil, &stdout, &stderr)
		require.Equal(t, 1, status)
		require.Contains(t, stderr.String(), "failed to open")
	})

	t.Run("tables", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		status := run([]string{"--internal-subset", subset, "--tables", good}, nil, &stdout, &stderr)
		require.Equal(t, 0, status)
		out := stdout.String()
		require.Contains(t, out, "ELEMENT")
		require.Contains(t, out, "#PCDATA")
		require.Contains(t, out, "%content")
	})

	t.Run("events", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		status := run([]string{"--internal-subset", subset, "--events", good}, nil, &stdout, &stderr)
		require.Equal(t, 0, status)
		require.Equal(t, `SAX.EntityDecl(content, InternalParameterEntity, "", "", "#PCDATA")
SAX.ElementDecl(doc, (#PCDATA), true)
SAX.AttributeDecl(doc, id, ID, #IMPLIED, "", [])
`, stdout.String())
	})

	t.Run("spew", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		status := run([]string{"--spew", good}, nil, &stdout, &stderr)
		require.Equal(t, 1, status, "content is undefined without the subset")
		require.Contains(t, stdout.String(), "dtd.DTD")
	})
}
