package gexf

import "encoding/xml"

// GEXF 1.3 namespaces written on export.
const (
	Namespace      = "http://gexf.net/1.3"
	VizNamespace   = "http://gexf.net/1.3/viz"
	XSINamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaLocation = "http://gexf.net/1.3 http://gexf.net/1.3/gexf.xsd"
	Version        = "1.3"
)

// =============================================================================
// Decoding
// =============================================================================

// Field tags carry local names only so that every GEXF namespace matches.

type rawDocument struct {
	XMLName xml.Name  `xml:"gexf"`
	Graph   *rawGraph `xml:"graph"`
}

type rawGraph struct {
	ID              string          `xml:"id,attr"`
	DefaultEdgeType string          `xml:"defaultedgetype,attr"`
	Mode            string          `xml:"mode,attr"`
	Attributes      []rawAttributes `xml:"attributes"`
	Nodes           *rawNodes       `xml:"nodes"`
	Edges           *rawEdges       `xml:"edges"`
}

type rawAttributes struct {
	Class      string         `xml:"class,attr"`
	Attributes []rawAttribute `xml:"attribute"`
}

type rawAttribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type rawNodes struct {
	Nodes []rawNode `xml:"node"`
}

type rawEdges struct {
	Edges []rawEdge `xml:"edge"`
}

type rawNode struct {
	ID        string       `xml:"id,attr"`
	Label     string       `xml:"label,attr"`
	Start     string       `xml:"start,attr"`
	End       string       `xml:"end,attr"`
	AttValues rawAttValues `xml:"attvalues"`
	Color     *rawColor    `xml:"color"`
	Position  *rawPosition `xml:"position"`
	Size      *rawValue    `xml:"size"`
	Shape     *rawValue    `xml:"shape"`
}

type rawEdge struct {
	ID        string       `xml:"id,attr"`
	Source    string       `xml:"source,attr"`
	Target    string       `xml:"target,attr"`
	Label     string       `xml:"label,attr"`
	Type      string       `xml:"type,attr"`
	Weight    string       `xml:"weight,attr"`
	Start     string       `xml:"start,attr"`
	End       string       `xml:"end,attr"`
	AttValues rawAttValues `xml:"attvalues"`
	Color     *rawColor    `xml:"color"`
	Thickness *rawValue    `xml:"thickness"`
	Shape     *rawValue    `xml:"shape"`
}

type rawAttValues struct {
	Values []rawAttValue `xml:"attvalue"`
}

type rawAttValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type rawColor struct {
	R   *string `xml:"r,attr"`
	G   *string `xml:"g,attr"`
	B   *string `xml:"b,attr"`
	Hex string  `xml:"hex,attr"`
}

type rawPosition struct {
	X *string `xml:"x,attr"`
	Y *string `xml:"y,attr"`
	Z *string `xml:"z,attr"`
}

type rawValue struct {
	Value string `xml:"value,attr"`
}

// =============================================================================
// Encoding
// =============================================================================

type outDocument struct {
	XMLName        xml.Name `xml:"gexf"`
	Xmlns          string   `xml:"xmlns,attr"`
	XmlnsViz       string   `xml:"xmlns:viz,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	Version        string   `xml:"version,attr"`
	Meta           outMeta  `xml:"meta"`
	Graph          outGraph `xml:"graph"`
}

type outMeta struct {
	Creator string `xml:"creator"`
}

type outGraph struct {
	ID              string          `xml:"id,attr,omitempty"`
	DefaultEdgeType string          `xml:"defaultedgetype,attr"`
	Mode            string          `xml:"mode,attr"`
	Attributes      []outAttributes `xml:"attributes"`
	Nodes           outNodes        `xml:"nodes"`
	Edges           outEdges        `xml:"edges"`
}

type outAttributes struct {
	Class      string         `xml:"class,attr"`
	Mode       string         `xml:"mode,attr"`
	Attributes []outAttribute `xml:"attribute"`
}

type outAttribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type outNodes struct {
	Nodes []outNode `xml:"node"`
}

type outEdges struct {
	Edges []outEdge `xml:"edge"`
}

type outNode struct {
	ID        string        `xml:"id,attr"`
	Label     string        `xml:"label,attr,omitempty"`
	Start     string        `xml:"start,attr,omitempty"`
	End       string        `xml:"end,attr,omitempty"`
	AttValues *outAttValues `xml:"attvalues"`
	Color     *outColor     `xml:"viz:color"`
	Position  *outPosition  `xml:"viz:position"`
	Size      *outValue     `xml:"viz:size"`
	Shape     *outValue     `xml:"viz:shape"`
}

type outEdge struct {
	ID        string        `xml:"id,attr"`
	Source    string        `xml:"source,attr"`
	Target    string        `xml:"target,attr"`
	Label     string        `xml:"label,attr,omitempty"`
	Type      string        `xml:"type,attr,omitempty"`
	Weight    string        `xml:"weight,attr,omitempty"`
	Start     string        `xml:"start,attr,omitempty"`
	End       string        `xml:"end,attr,omitempty"`
	AttValues *outAttValues `xml:"attvalues"`
	Color     *outColor     `xml:"viz:color"`
	Thickness *outValue     `xml:"viz:thickness"`
	Shape     *outValue     `xml:"viz:shape"`
}

type outAttValues struct {
	Values []outAttValue `xml:"attvalue"`
}

type outAttValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type outColor struct {
	R uint8 `xml:"r,attr"`
	G uint8 `xml:"g,attr"`
	B uint8 `xml:"b,attr"`
}

type outPosition struct {
	X string `xml:"x,attr,omitempty"`
	Y string `xml:"y,attr,omitempty"`
	Z string `xml:"z,attr,omitempty"`
}

type outValue struct {
	Value string `xml:"value,attr"`
}
