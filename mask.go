package carousel

// SetMask clips this node's subtree to the alpha of maskNode. The mask is not
// part of the scene tree; its transform is relative to the masked node, so a
// slot-sized rectangle at (0, 0) crops a slide to its slot.
func (n *Node) SetMask(maskNode *Node) {
	n.mask = maskNode
}

// ClearMask removes the mask from this node.
func (n *Node) ClearMask() {
	n.mask = nil
}

// Mask returns the current mask node, or nil.
func (n *Node) Mask() *Node {
	return n.mask
}
