package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
	"github.com/atreyakamat/VistaraBI-sub002/ports"
)

var _ ports.Extractor = (*XMLExtractor)(nil)

// maxMarkupDepth bounds both tree building and the record-set search so
// adversarial nesting cannot blow the stack. Markup decoders do not produce
// true cycles, but the traversal is guarded anyway.
const maxMarkupDepth = 100

// XMLExtractor decodes generic markup into a nested mapping (attributes
// merged into the owning element) and searches depth-first for the first
// sequence-valued descendant to use as the record set. The heuristic is
// intentionally shallow: it has no schema awareness of the source markup.
type XMLExtractor struct{}

// NewXML creates a generic markup extractor.
func NewXML() *XMLExtractor { return &XMLExtractor{} }

// Extract decodes the document and locates its record set. When no sequence
// exists anywhere, the whole decoded document becomes a single record.
func (e *XMLExtractor) Extract(ctx context.Context, r io.Reader) (*record.ParsedDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, unreadable(err, "XML")
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	root, err := parseMarkupTree(data)
	if err != nil {
		return nil, malformed(err, "XML")
	}

	var records []record.Record
	if seq := findSequence(root, 0); seq != nil {
		records = make([]record.Record, 0, len(seq))
		for _, el := range seq {
			records = append(records, record.FromValue(nodeValue(el)))
		}
	} else {
		doc := record.Record{root.name: nodeValue(root)}
		records = []record.Record{record.Flatten(doc)}
	}

	return &record.ParsedDocument{
		Records: records,
		Metadata: record.Metadata{
			"rootKeys":    []string{root.name},
			"recordCount": len(records),
		},
	}, nil
}

// markupNode is an element in document order: attributes, child elements
// and accumulated character data.
type markupNode struct {
	name     string
	attrs    []xml.Attr
	children []*markupNode
	text     strings.Builder
}

// parseMarkupTree builds the element tree for a whole document.
func parseMarkupTree(data []byte) (*markupNode, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return parseMarkupElement(decoder, start, 0)
		}
	}
}

func parseMarkupElement(decoder *xml.Decoder, start xml.StartElement, depth int) (*markupNode, error) {
	node := &markupNode{name: start.Name.Local, attrs: start.Attr}

	if depth >= maxMarkupDepth {
		if err := decoder.Skip(); err != nil {
			return nil, err
		}
		return node, nil
	}

	for {
		tok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseMarkupElement(decoder, t, depth+1)
			if err != nil {
				return nil, err
			}
			node.children = append(node.children, child)
		case xml.CharData:
			node.text.Write(t)
		case xml.EndElement:
			return node, nil
		}
	}
}

// nodeValue converts an element to its decoded form: a bare string when it
// holds only text, nil when empty, otherwise a mapping with attributes
// merged in and repeated child names grouped into sequences.
func nodeValue(n *markupNode) any {
	text := strings.TrimSpace(n.text.String())
	if len(n.children) == 0 && len(n.attrs) == 0 {
		if text == "" {
			return nil
		}
		return text
	}

	out := make(map[string]any, len(n.children)+len(n.attrs))
	for _, attr := range n.attrs {
		out[attr.Name.Local] = attr.Value
	}
	for name, group := range groupChildren(n) {
		if len(group) == 1 {
			out[name] = nodeValue(group[0])
		} else {
			seq := make([]any, len(group))
			for i, child := range group {
				seq[i] = nodeValue(child)
			}
			out[name] = seq
		}
	}
	if text != "" {
		out["#text"] = text
	}
	return out
}

// groupChildren buckets child elements by name.
func groupChildren(n *markupNode) map[string][]*markupNode {
	groups := make(map[string][]*markupNode)
	for _, child := range n.children {
		groups[child.name] = append(groups[child.name], child)
	}
	return groups
}

// findSequence walks the tree depth-first in document order and returns the
// first run of repeated sibling elements - the decoded document's first
// sequence-valued descendant.
func findSequence(n *markupNode, depth int) []*markupNode {
	if depth >= maxMarkupDepth {
		return nil
	}

	groups := groupChildren(n)
	seenFirst := make(map[string]bool, len(groups))
	for _, child := range n.children {
		if seenFirst[child.name] {
			continue
		}
		seenFirst[child.name] = true
		if group := groups[child.name]; len(group) > 1 {
			return group
		}
		if found := findSequence(child, depth+1); found != nil {
			return found
		}
	}
	return nil
}
