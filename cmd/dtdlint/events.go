package main

import (
	"fmt"
	"io"

	"github.com/lestrrat-go/dtd"
	"github.com/lestrrat-go/dtd/sax"
)

// newEventEmitter returns a handler that prints every declaration event
func newEventEmitter(out io.Writer) *sax.SAX2 {
	s := sax.New()
	s.AttributeDeclHandler = func(_ sax.Context, elem string, name string, typ int, def int, defaultValue string, tree sax.Enumeration) error {
		_, err := fmt.Fprintf(out, "SAX.AttributeDecl(%s, %s, %s, %s, %q, %v)\n", elem, name, dtd.AttributeType(typ), dtd.AttributeDefault(def), defaultValue, []string(tree))
		return err
	}
	s.ElementDeclHandler = func(_ sax.Context, name string, spec string, mixed bool) error {
		_, err := fmt.Fprintf(out, "SAX.ElementDecl(%s, %s, %t)\n", name, spec, mixed)
		return err
	}
	s.EntityDeclHandler = func(_ sax.Context, name string, typ int, publicID string, systemID string, content string) error {
		_, err := fmt.Fprintf(out, "SAX.EntityDecl(%s, %s, %q, %q, %q)\n", name, dtd.EntityType(typ), publicID, systemID, content)
		return err
	}
	s.NotationDeclHandler = func(_ sax.Context, name string, publicID string, systemID string) error {
		_, err := fmt.Fprintf(out, "SAX.NotationDecl(%s, %q, %q)\n", name, publicID, systemID)
		return err
	}
	s.ProcessingInstructionHandler = func(_ sax.Context, target string, data string) error {
		_, err := fmt.Fprintf(out, "SAX.ProcessingInstruction(%s, %q)\n", target, data)
		return err
	}
	s.UnparsedEntityDeclHandler = func(_ sax.Context, name string, publicID string, systemID string, notation string) error {
		_, err := fmt.Fprintf(out, "SAX.UnparsedEntityDecl(%s, %q, %q, %s)\n", name, publicID, systemID, notation)
		return err
	}
	return s
}
