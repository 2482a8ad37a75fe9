package graphml

import "encoding/xml"

// Namespaces written on export.
const (
	Namespace      = "http://graphml.graphdrawing.org/xmlns"
	XSINamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaLocation = "http://graphml.graphdrawing.org/xmlns http://graphml.graphdrawing.org/xmlns/1.0/graphml.xsd"
)

type rawDocument struct {
	XMLName xml.Name  `xml:"graphml"`
	Keys    []rawKey  `xml:"key"`
	Graph   *rawGraph `xml:"graph"`
}

type rawKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

type rawGraph struct {
	ID          string    `xml:"id,attr"`
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []rawNode `xml:"node"`
	Edges       []rawEdge `xml:"edge"`
}

type rawNode struct {
	ID   string    `xml:"id,attr"`
	Data []rawData `xml:"data"`
}

type rawEdge struct {
	ID       string    `xml:"id,attr"`
	Source   string    `xml:"source,attr"`
	Target   string    `xml:"target,attr"`
	Directed string    `xml:"directed,attr"`
	Data     []rawData `xml:"data"`
}

type rawData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type outDocument struct {
	XMLName        xml.Name `xml:"graphml"`
	Xmlns          string   `xml:"xmlns,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	Keys           []outKey `xml:"key"`
	Graph          outGraph `xml:"graph"`
}

type outKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

type outGraph struct {
	ID          string    `xml:"id,attr"`
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []outNode `xml:"node"`
	Edges       []outEdge `xml:"edge"`
}

type outNode struct {
	ID   string    `xml:"id,attr"`
	Data []outData `xml:"data"`
}

type outEdge struct {
	ID       string    `xml:"id,attr,omitempty"`
	Source   string    `xml:"source,attr"`
	Target   string    `xml:"target,attr"`
	Directed string    `xml:"directed,attr,omitempty"`
	Data     []outData `xml:"data"`
}

type outData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}
