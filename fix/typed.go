package fix

// Typed variants for composition sites where the signature is known. The
// generator receives the derived function itself as its first argument.

// I1O1 is the typed fixed point for unary functions.
func I1O1[I1, O1 any](g func(self func(I1) O1, i1 I1) O1) func(I1) O1 {
	var self func(I1) O1
	self = func(i1 I1) O1 {
		return g(self, i1)
	}
	return self
}

// I2O1 is the typed fixed point for binary functions.
func I2O1[I1, I2, O1 any](g func(self func(I1, I2) O1, i1 I1, i2 I2) O1) func(I1, I2) O1 {
	var self func(I1, I2) O1
	self = func(i1 I1, i2 I2) O1 {
		return g(self, i1, i2)
	}
	return self
}

// I3O1 is the typed fixed point for ternary functions.
func I3O1[I1, I2, I3, O1 any](g func(self func(I1, I2, I3) O1, i1 I1, i2 I2, i3 I3) O1) func(I1, I2, I3) O1 {
	var self func(I1, I2, I3) O1
	self = func(i1 I1, i2 I2, i3 I3) O1 {
		return g(self, i1, i2, i3)
	}
	return self
}
