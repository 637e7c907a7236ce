package hbt

// nodeInfo is one decoded entry from the nodes section: the node's name
// (as a bucket/offset pair into the string lists), its parent, and the
// first attribute in its attribute chain.
type nodeInfo struct {
	nameIndex          int32
	nameOffset         int32
	parentIndex        int32
	firstAttributeIndex int32
}

// attributeInfo is one decoded entry from the attributes section.
type attributeInfo struct {
	nameIndex           int32
	nameOffset          int32
	typeID              uint32
	length              uint32
	dataOffset          uint32
	nextAttributeIndex  int32
}
