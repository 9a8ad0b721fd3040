package training

// Relu is the activation of every hidden and output node. Applied to a node's sum it is
// also the local gradient factor in DeltaJ and DeltaI.
func Relu(x float64) float64 {
	if x < 0 {
		return 0.0
	}
	return x
}
