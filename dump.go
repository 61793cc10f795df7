package dtd

import (
	"io"
	"strings"
)

// Dumper writes a parsed DTD back out as DTD text. The output is
// normalized: parameter entity references are already expanded,
// comments are gone, and declarations come out grouped by kind in the
// order processing instructions, notations, parameter entities,
// general entities and elements. Each element is followed by the
// ATTLIST declaration of its attributes, if it has any.
type Dumper struct{}

func (d *Dumper) writeString(out io.Writer, content string) error {
	_, err := io.WriteString(out, content)
	return err
}

func (d *Dumper) writeStrings(out io.Writer, list ...string) error {
	for _, s := range list {
		if err := d.writeString(out, s); err != nil {
			return err
		}
	}
	return nil
}

// DumpDTD writes dtd to out
func DumpDTD(out io.Writer, dtd *DTD) error {
	var d Dumper
	return d.DumpDTD(out, dtd)
}

func (d *Dumper) DumpDTD(out io.Writer, dtd *DTD) error {
	for _, pi := range dtd.pis {
		if err := d.DumpProcessingInstruction(out, pi); err != nil {
			return err
		}
	}
	for _, n := range dtd.notations.Range() {
		if err := d.DumpNotation(out, n); err != nil {
			return err
		}
	}
	for _, e := range dtd.pentities.Range() {
		if err := d.DumpEntity(out, e); err != nil {
			return err
		}
	}
	for _, e := range dtd.entities.Range() {
		if err := d.DumpEntity(out, e); err != nil {
			return err
		}
	}
	for _, e := range dtd.elements.Range() {
		if err := d.DumpElement(out, e); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dumper) DumpProcessingInstruction(out io.Writer, pi *ProcessingInstruction) error {
	if pi.data == "" {
		return d.writeStrings(out, "<?", pi.target, "?>\n")
	}
	return d.writeStrings(out, "<?", pi.target, " ", pi.data, "?>\n")
}

func (d *Dumper) DumpNotation(out io.Writer, n *Notation) error {
	if err := d.writeStrings(out, "<!NOTATION ", n.name); err != nil {
		return err
	}
	if err := d.dumpExternalID(out, n.publicID, n.hasPub, n.systemID, n.hasSys); err != nil {
		return err
	}
	return d.writeString(out, ">\n")
}

func (d *Dumper) DumpEntity(out io.Writer, e *Entity) error {
	if err := d.writeString(out, "<!ENTITY "); err != nil {
		return err
	}
	if e.IsParameter() {
		if err := d.writeString(out, "% "); err != nil {
			return err
		}
	}
	if err := d.writeString(out, e.name); err != nil {
		return err
	}

	if !e.IsExternal() {
		if err := d.writeStrings(out, " ", quoteLiteral(e.content)); err != nil {
			return err
		}
		return d.writeString(out, ">\n")
	}

	if err := d.dumpExternalID(out, e.publicID, e.hasPub, e.systemID, e.hasSys); err != nil {
		return err
	}
	if e.etype == ExternalGeneralUnparsedEntity {
		if err := d.writeStrings(out, " NDATA ", e.notation); err != nil {
			return err
		}
	}
	return d.writeString(out, ">\n")
}

func (d *Dumper) dumpExternalID(out io.Writer, pub string, hasPub bool, sys string, hasSys bool) error {
	if hasPub {
		if err := d.writeStrings(out, " PUBLIC ", quoteLiteral(pub)); err != nil {
			return err
		}
		if hasSys {
			return d.writeStrings(out, " ", quoteLiteral(sys))
		}
		return nil
	}
	if hasSys {
		return d.writeStrings(out, " SYSTEM ", quoteLiteral(sys))
	}
	return nil
}

// DumpElement writes the ELEMENT declaration of e, if it has a content
// specification, followed by its ATTLIST declaration. An element that
// has neither is written as an empty ATTLIST so that it is not lost.
func (d *Dumper) DumpElement(out io.Writer, e *Element) error {
	if e.hasContentSpec {
		if err := d.writeStrings(out, "<!ELEMENT ", e.name, " ", e.contentSpec, ">\n"); err != nil {
			return err
		}
		if e.attributes.Len() == 0 {
			return nil
		}
	}

	if err := d.writeStrings(out, "<!ATTLIST ", e.name); err != nil {
		return err
	}
	for _, attr := range e.attributes.Values() {
		if err := d.writeString(out, "\n  "); err != nil {
			return err
		}
		if err := d.DumpAttribute(out, attr); err != nil {
			return err
		}
	}
	return d.writeString(out, ">\n")
}

func (d *Dumper) DumpAttribute(out io.Writer, attr *Attribute) error {
	if err := d.writeStrings(out, attr.name, " "); err != nil {
		return err
	}

	switch attr.atype {
	case AttrEnumeration:
		if err := d.writeStrings(out, "(", strings.Join(attr.tree, "|"), ")"); err != nil {
			return err
		}
	case AttrNotation:
		if err := d.writeStrings(out, "NOTATION (", strings.Join(attr.tree, "|"), ")"); err != nil {
			return err
		}
	default:
		if err := d.writeString(out, attr.atype.String()); err != nil {
			return err
		}
	}

	switch attr.def {
	case AttrDefaultRequired, AttrDefaultImplied:
		return d.writeStrings(out, " ", attr.def.String())
	case AttrDefaultFixed:
		return d.writeStrings(out, " #FIXED ", quoteLiteral(attr.defaultValue))
	default:
		return d.writeStrings(out, " ", quoteLiteral(attr.defaultValue))
	}
}

// quoteLiteral picks the quote character that does not appear in s.
// If both do, double quotes inside s are written as &#34;
func quoteLiteral(s string) string {
	switch {
	case !strings.ContainsRune(s, '"'):
		return `"` + s + `"`
	case !strings.ContainsRune(s, '\''):
		return `'` + s + `'`
	default:
		return `"` + strings.ReplaceAll(s, `"`, "&#34;") + `"`
	}
}
