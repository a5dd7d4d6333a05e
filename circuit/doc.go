// Package circuit records an ordered list of gate applications on a fixed
// register and runs it through any engine.Engine.
//
// A Circuit is built with chained calls and checked as a whole before the
// first gate touches the vector:
//
//	c := circuit.New(2).H(0).CNOT(0, 1)
//	v, err := circuit.Simulate(c, engine.NewTensorEngine())
//
// Builder methods never fail; problems (bad indices, wrong gate sizes,
// a two-qubit gate passed to Controlled) are reported together by Validate,
// and Run refuses to start on an invalid circuit.
package circuit
