package sax_test

import (
	"testing"

	"github.com/lestrrat-go/dtd/sax"
	"github.com/stretchr/testify/require"
)

func TestInterface(t *testing.T) {
	var h sax.Handler = sax.New()
	_ = h

	var hv sax.Handler = sax.SAX2{}
	_ = hv
}

func TestUnspecified(t *testing.T) {
	s := sax.New()
	require.ErrorIs(t, s.ElementDecl(nil, "a", "EMPTY", false), sax.ErrHandlerUnspecified)
	require.ErrorIs(t, s.AttributeDecl(nil, "a", "b", 1, 2, "", nil), sax.ErrHandlerUnspecified)
	require.ErrorIs(t, s.EntityDecl(nil, "a", 1, "", "", "x"), sax.ErrHandlerUnspecified)
	require.ErrorIs(t, s.UnparsedEntityDecl(nil, "a", "", "a.gif", "gif"), sax.ErrHandlerUnspecified)
	require.ErrorIs(t, s.NotationDecl(nil, "gif", "", "image/gif"), sax.ErrHandlerUnspecified)
	require.ErrorIs(t, s.ProcessingInstruction(nil, "pi", ""), sax.ErrHandlerUnspecified)
	require.ErrorIs(t, s.Error(nil, "oops"), sax.ErrHandlerUnspecified)
	require.ErrorIs(t, s.Warning(nil, "hmm"), sax.ErrHandlerUnspecified)
}

func TestCallbacks(t *testing.T) {
	var got []string
	s := sax.New()
	s.ElementDeclHandler = func(_ sax.Context, name string, spec string, mixed bool) error {
		got = append(got, name+" "+spec)
		return nil
	}
	s.NotationDeclHandler = func(_ sax.Context, name, publicID, systemID string) error {
		got = append(got, name+" "+publicID+" "+systemID)
		return nil
	}

	require.NoError(t, s.ElementDecl(nil, "doc", "(#PCDATA)", true))
	require.NoError(t, s.NotationDecl(nil, "gif", "-//GIF//EN", "image/gif"))
	require.Equal(t, []string{"doc (#PCDATA)", "gif -//GIF//EN image/gif"}, got)
}
