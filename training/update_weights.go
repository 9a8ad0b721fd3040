package training

// updateHiddenWeights moves the incoming weights of every hidden node except the bias,
// which has none.
func (n *Network) updateHiddenWeights(deltaI []float64) {
	eta := n.config.Eta
	for t := 0; t < len(n.hiddenNodes)-1; t++ {
		for _, p := range n.hiddenNodes[t].parents {
			p.Weight += eta * p.Node.Output() * deltaI[t]
		}
	}
}

// updateOutputWeights moves the incoming weights of the output nodes. The last output node
// is not updated.
func (n *Network) updateOutputWeights(deltaJ []float64) {
	eta := n.config.Eta
	for t := 0; t < len(n.outputNodes)-1; t++ {
		for _, p := range n.outputNodes[t].parents {
			p.Weight += eta * p.Node.Output() * deltaJ[t]
		}
	}
}
