package arcoffset

// idParentSentinel marks an id with no parent: the primitive is an
// original, not a fragment produced by splitting or a connector.
const idParentSentinel = uint32(0xFFFFFFFF)

// idConnectorPadding is added to a source id to build a connector's id,
// keeping connector ids out of the range of raw offset ids they're built
// alongside. Raw ids count up from zero per offset run, so any boundary
// with fewer primitives than this can't collide.
const idConnectorPadding = uint32(1 << 20)

// IDGenerator hands out monotonically increasing original ids. Each
// offset run owns its own generator, so two runs never share or race
// over id state and output stays deterministic regardless of call order.
type IDGenerator struct {
	next uint32
}

// NewIDGenerator returns a generator starting at zero.
func NewIDGenerator() *IDGenerator { return &IDGenerator{} }

// Next returns the next original id, packed with the sentinel parent.
func (g *IDGenerator) Next() uint64 {
	id := g.next
	g.next++
	return packID(id, idParentSentinel)
}

// packID packs originalID into the low 32 bits and parentID into the
// high 32 bits of a 64-bit primitive id.
func packID(originalID, parentID uint32) uint64 {
	return uint64(parentID)<<32 | uint64(originalID)
}

// unpackID splits a 64-bit primitive id back into (originalID, parentID).
func unpackID(id uint64) (originalID, parentID uint32) {
	return uint32(id), uint32(id >> 32)
}

// effectiveID is the id a fragment's children should inherit as parent:
// its own original id if it has no parent yet, or its parent's id if it
// is itself already a fragment. This is how the splitter keeps parent
// chains resolving back to the original primitive instead of growing one
// link longer at every split.
func effectiveID(id uint64) uint32 {
	original, parent := unpackID(id)
	if parent == idParentSentinel {
		return original
	}
	return parent
}

// connectorID builds the id a connector inherits from the raw offset it
// bridges from.
func connectorID(sourceID uint64) uint64 {
	original, _ := unpackID(sourceID)
	return packID(idConnectorPadding+original, idParentSentinel)
}

// childID builds the id a split fragment inherits from the primitive it
// was cut from: both the original-id and parent-id slots carry the
// resolved chain-root id, so effectiveID keeps resolving to the same
// root no matter how many generations of splitting a fragment has been
// through, and lineage comparisons (siblings, self-skip in the pruner)
// stay a simple equality test at any depth.
func childID(sourceID uint64) uint64 {
	root := effectiveID(sourceID)
	return packID(root, root)
}
