// Package gpxfile implements the GPX file adapter on top of a mutable
// XML document tree. It owns all parsing, tree mutation, and
// serialization; namespace declarations and node order pass through
// the tree untouched.
package gpxfile

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"

	"gpxcolor/internal/application"
)

// Namespace is the GPX 1.1 namespace. Input documents declare it on
// the root, either as the default xmlns or under a prefix; elements
// appended by the annotator reuse the waypoint's prefix, so no new
// declarations are emitted.
const Namespace = "http://www.topografix.com/GPX/1/1"

const (
	waypointTag   = "wpt"
	trackTag      = "trk"
	routeTag      = "rte"
	nameTag       = "name"
	extensionsTag = "extensions"
	vendorTag     = "gpx"
	colorTag      = "color"
)

// Document wraps a parsed GPX tree.
type Document struct {
	tree *etree.Document
}

// Parse reads a GPX document from r.
func Parse(r io.Reader) (*Document, error) {
	tree := etree.NewDocument()
	if _, err := tree.ReadFrom(r); err != nil {
		return nil, err
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("no root element")
	}
	return &Document{tree: tree}, nil
}

// Load reads a GPX document from a file. Parse failures are returned
// as *application.ParseError; no tree is produced.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &application.ParseError{Path: path, Err: err}
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, &application.ParseError{Path: path, Err: err}
	}
	return doc, nil
}

// Waypoints returns the wpt elements of the document in document order.
// Selection is namespace-aware: prefixed documents (<g:gpx><g:wpt>)
// resolve the same as default-namespace ones, and elements from
// foreign namespaces are skipped.
func (d *Document) Waypoints() []*etree.Element {
	var wpts []*etree.Element
	for _, el := range d.tree.Root().ChildElements() {
		if el.Tag == waypointTag && inGPXNamespace(el) {
			wpts = append(wpts, el)
		}
	}
	return wpts
}

// WaypointName returns the text of a waypoint's name element, or ""
// when the element is absent or empty.
func WaypointName(wpt *etree.Element) string {
	name := findChild(wpt, nameTag)
	if name == nil {
		return ""
	}
	return name.Text()
}

// findChild returns the first direct child with the given local name
// in the GPX namespace.
func findChild(parent *etree.Element, tag string) *etree.Element {
	for _, el := range parent.ChildElements() {
		if el.Tag == tag && inGPXNamespace(el) {
			return el
		}
	}
	return nil
}

// createChild appends a child with the given local name, carrying the
// parent's namespace prefix so new nodes stay in the same namespace in
// both default-namespace and prefixed documents.
func createChild(parent *etree.Element, tag string) *etree.Element {
	child := parent.CreateElement(tag)
	child.Space = parent.Space
	return child
}

// inGPXNamespace reports whether an element resolves to the GPX
// namespace. Elements with no namespace in scope are accepted too, so
// undeclared documents keep working.
func inGPXNamespace(el *etree.Element) bool {
	uri := namespaceURI(el)
	return uri == Namespace || uri == ""
}

// namespaceURI resolves an element's namespace by walking xmlns
// declarations up the ancestor chain.
func namespaceURI(el *etree.Element) string {
	prefix := el.Space
	for e := el; e != nil; e = e.Parent() {
		if prefix == "" {
			if attr := e.SelectAttr("xmlns"); attr != nil {
				return attr.Value
			}
		} else {
			if attr := e.SelectAttr("xmlns:" + prefix); attr != nil {
				return attr.Value
			}
		}
	}
	return ""
}

// Creator returns the root creator attribute.
func (d *Document) Creator() string {
	return d.tree.Root().SelectAttrValue("creator", "")
}

// Version returns the root version attribute.
func (d *Document) Version() string {
	return d.tree.Root().SelectAttrValue("version", "")
}

// CountElements returns the number of direct root children with the
// given local name in the GPX namespace.
func (d *Document) CountElements(tag string) int {
	count := 0
	for _, el := range d.tree.Root().ChildElements() {
		if el.Tag == tag && inGPXNamespace(el) {
			count++
		}
	}
	return count
}

// WriteTo serializes the document. A leading XML declaration is
// guaranteed even when the input had none.
func (d *Document) WriteTo(w io.Writer) error {
	d.ensureDeclaration()
	_, err := d.tree.WriteTo(w)
	return err
}

// String renders the document for structural comparison in tests.
func (d *Document) String() (string, error) {
	d.ensureDeclaration()
	return d.tree.WriteToString()
}

func (d *Document) ensureDeclaration() {
	for _, child := range d.tree.Child {
		if pi, ok := child.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	decl := etree.NewProcInst("xml", `version="1.0" encoding="UTF-8"`)
	d.tree.InsertChildAt(0, decl)
}
