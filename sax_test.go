package dtd_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/lestrrat-go/dtd"
	"github.com/lestrrat-go/dtd/sax"
	"github.com/stretchr/testify/require"
)

func newEventEmitter(out io.Writer) *sax.SAX2 {
	s := sax.New()
	s.AttributeDeclHandler = func(_ sax.Context, elem string, name string, typ int, def int, defaultValue string, tree sax.Enumeration) error {
		fmt.Fprintf(out, "SAX.AttributeDecl(%s, %s, %d, %d, %s, %v)\n", elem, name, typ, def, defaultValue, []string(tree))
		return nil
	}
	s.ElementDeclHandler = func(_ sax.Context, name string, spec string, mixed bool) error {
		fmt.Fprintf(out, "SAX.ElementDecl(%s, %s, %t)\n", name, spec, mixed)
		return nil
	}
	s.EntityDeclHandler = func(_ sax.Context, name string, typ int, publicID string, systemID string, content string) error {
		fmt.Fprintf(out, "SAX.EntityDecl(%s, %d, %s, %s, %s)\n", name, typ, publicID, systemID, content)
		return nil
	}
	s.NotationDeclHandler = func(_ sax.Context, name string, publicID string, systemID string) error {
		fmt.Fprintf(out, "SAX.NotationDecl(%s, %s, %s)\n", name, publicID, systemID)
		return nil
	}
	s.ProcessingInstructionHandler = func(_ sax.Context, target string, data string) error {
		fmt.Fprintf(out, "SAX.ProcessingInstruction(%s, %s)\n", target, data)
		return nil
	}
	s.UnparsedEntityDeclHandler = func(_ sax.Context, name string, publicID string, systemID string, notation string) error {
		fmt.Fprintf(out, "SAX.UnparsedEntityDecl(%s, %s, %s, %s)\n", name, publicID, systemID, notation)
		return nil
	}
	s.ErrorHandler = func(_ sax.Context, message string) error {
		fmt.Fprintf(out, "SAX.Error(%s)\n", message)
		return nil
	}
	s.WarningHandler = func(_ sax.Context, message string) error {
		fmt.Fprintf(out, "SAX.Warning(%s)\n", message)
		return nil
	}
	return s
}

func TestHandlerEvents(t *testing.T) {
	const input = `<?app data?>
<!NOTATION gif SYSTEM "image/gif">
<!ENTITY % inline "em">
<!ENTITY logo SYSTEM "logo.gif" NDATA gif>
<!ENTITY copy "(c)">
<!ELEMENT p (#PCDATA|%inline;)*>
<!ATTLIST p align (left|right) "left" id ID #IMPLIED>
<!ATTLIST p align CDATA #IMPLIED>
<!ELEMENT p EMPTY>`

	var out strings.Builder
	d := dtd.Parse(context.Background(), input, dtd.WithHandler(newEventEmitter(&out)))
	require.Len(t, d.Errors(), 1)

	const expected = `SAX.ProcessingInstruction(app, data)
SAX.NotationDecl(gif, , image/gif)
SAX.EntityDecl(inline, 4, , , em)
SAX.UnparsedEntityDecl(logo, , logo.gif, gif)
SAX.EntityDecl(copy, 1, , , (c))
SAX.ElementDecl(p, (#PCDATA|em)*, true)
SAX.AttributeDecl(p, align, 9, 0, left, [left right])
SAX.AttributeDecl(p, id, 2, 2, , [])
SAX.Error(element 'p' is declared more than once (line 9))
`
	require.Equal(t, expected, out.String())
}

func TestHandlerUnspecified(t *testing.T) {
	// a handler with no callbacks must not produce errors
	d := dtd.Parse(context.Background(), `<!ELEMENT a EMPTY><!ATTLIST a b CDATA #IMPLIED>`, dtd.WithHandler(sax.New()))
	requireValid(t, d)
}

func TestHandlerFailure(t *testing.T) {
	errBoom := errors.New("boom")

	s := sax.New()
	s.ElementDeclHandler = func(_ sax.Context, name string, _ string, _ bool) error {
		if name == "bad" {
			return errBoom
		}
		return nil
	}

	d := dtd.Parse(context.Background(), "<!ELEMENT good EMPTY>\n<!ELEMENT bad EMPTY>", dtd.WithHandler(s))
	diag := requireSingleError(t, d, "declaration handler ElementDecl failed: boom (line 2)")
	require.ErrorIs(t, diag, errBoom)

	var herr dtd.ErrHandler
	require.ErrorAs(t, diag, &herr)
	require.Equal(t, "ElementDecl", herr.Event)

	_, ok := d.LookupElement("bad")
	require.True(t, ok, "the declaration is recorded before the handler is called")
}

func TestHandlerContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")

	var got interface{}
	s := sax.New()
	s.ElementDeclHandler = func(c sax.Context, _ string, _ string, _ bool) error {
		got = c.(context.Context).Value(key{})
		return nil
	}
	dtd.Parse(ctx, `<!ELEMENT a EMPTY>`, dtd.WithHandler(s))
	require.Equal(t, "value", got)
}
