// Package graphml reads and writes GraphML documents.
//
// Keys become schema descriptors named by attr.name (the key id when the
// name is missing) with the type mapping
//
//	int, long, double, float  -> number
//	boolean                   -> boolean
//	anything else             -> string
//
// Keys for the structural fields id, source and target are ignored. Keys
// naming a reserved field are not declared; their data is promoted onto the
// element instead, with r, g and b recombined into a color. If several keys
// name the same field, the last one wins and the others stay attributes.
//
// On export every descriptor gets a key, followed by one synthesized key per
// reserved field that some element carries or a descriptor's name shadows
// (coordinates, size and weight as float, colors as int r/g/b components,
// text fields as string). Key ids are unique across the document; a key
// whose id is already taken is prefixed with "e_". The mutual edge type has no GraphML equivalent and
// is written as edgedefault="directed".
package graphml
