package dtd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lestrrat-go/dtd"
	"github.com/stretchr/testify/require"
)

func TestExternalEntities(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chap1.xml"), []byte("<p>chapter one</p>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "latin1.ent"), []byte("<?xml encoding=\"iso-8859-1\"?>caf\xE9"), 0o644))

	const text = `<!ENTITY chap1 SYSTEM "chap1.xml">
<!ENTITY missing SYSTEM "missing.xml">
<!ENTITY remote SYSTEM "http://example.com/remote.xml">
<!NOTATION gif SYSTEM "image/gif">
<!ENTITY logo SYSTEM "logo.gif" NDATA gif>`

	t.Run("disabled", func(t *testing.T) {
		d := parse(t, text, dtd.WithBaseDir(dir))
		require.Empty(t, d.Warnings(), "nothing is looked up unless enabled")
	})

	t.Run("enabled", func(t *testing.T) {
		d := parse(t, text, dtd.WithBaseDir(dir), dtd.WithExternalEntityLoading(true))
		requireValid(t, d)

		warnings := d.Warnings()
		require.Len(t, warnings, 3, "unparsed entities are never looked up: %v", warnings)

		require.Contains(t, warnings[0].Error(), "external entity 'chap1' ("+filepath.Join(dir, "chap1.xml")+") was found (18 characters) but external entities are not parsed (line 1)")
		require.Contains(t, warnings[1].Error(), "external entity 'missing'")
		require.Contains(t, warnings[1].Error(), "could not be loaded")
		require.Contains(t, warnings[2].Error(), "could not be resolved: unsupported scheme 'http'")

		var target dtd.WarnExternalEntity
		require.ErrorAs(t, warnings[0], &target)
		require.Equal(t, "chap1", target.Name)
	})

	t.Run("file URL and encoding", func(t *testing.T) {
		d := parse(t, `<!ENTITY % latin SYSTEM "file:latin1.ent">`, dtd.WithBaseDir(dir), dtd.WithExternalEntityLoading(true))
		requireValid(t, d)
		warnings := d.Warnings()
		require.Len(t, warnings, 1)
		require.Contains(t, warnings[0].Error(), "was found (33 characters)")
	})

	t.Run("reference to external parameter entity", func(t *testing.T) {
		d := parse(t, "<!ENTITY % ext SYSTEM \"ext.ent\">\n%ext;\n<!ELEMENT a (%ext;)>")
		requireValid(t, d)
		warnings := d.Warnings()
		require.Len(t, warnings, 2)
		require.Equal(t, "external entity 'ext' (ext.ent) was referenced but external entities are not parsed (line 2)", warnings[0].Error())
		require.Equal(t, 3, warnings[1].LineNumber)
	})
}
