package tensor

// Backend is the compute-kernel interface consumed by the graph engine.
//
// Kernels are shape-checked: binary operations apply NumPy-style broadcasting
// and panic on incompatible shapes (callers validate shapes at graph
// construction, so a kernel-level failure indicates a scheduling bug).
// Kernels never mutate their inputs. Most operations allocate their result;
// Reshape, Unsqueeze, and Squeeze return zero-copy views, and the explicitly
// in-place Axpy and Scale mutate their destination for gradient accumulation
// and parameter updates.
//
// Kernel-internal parallelism is allowed but must not be observable: results
// are bitwise independent of the worker count.
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise unary operations.
	Neg(x *RawTensor) *RawTensor
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor
	Pow(x *RawTensor, exponent float64) *RawTensor
	MulScalar(x *RawTensor, s float64) *RawTensor
	AddScalar(x *RawTensor, s float64) *RawTensor

	// GreaterScalar returns a 0/1 mask marking elements strictly greater
	// than s.
	GreaterScalar(x *RawTensor, s float64) *RawTensor

	// Activations.
	ReLU(x *RawTensor) *RawTensor
	Sigmoid(x *RawTensor) *RawTensor
	Tanh(x *RawTensor) *RawTensor
	Softmax(x *RawTensor, axis int) *RawTensor

	// Linear algebra. MatMul multiplies two 2-D tensors.
	MatMul(a, b *RawTensor) *RawTensor

	// Reductions.
	Sum(x *RawTensor) *RawTensor
	Mean(x *RawTensor) *RawTensor
	SumAxis(x *RawTensor, axis int, keepDim bool) *RawTensor

	// Shape manipulation.
	Reshape(x *RawTensor, shape Shape) *RawTensor
	Transpose(x *RawTensor, axes ...int) *RawTensor
	Unsqueeze(x *RawTensor, axis int) *RawTensor
	Squeeze(x *RawTensor, axis int) *RawTensor
	Cat(xs []*RawTensor, axis int) *RawTensor

	// Narrow copies the slice of x covering [start, start+length) along
	// axis. It is the inverse access pattern of Cat.
	Narrow(x *RawTensor, axis, start, length int) *RawTensor

	// In-place updates. Axpy computes dst += alpha*x; Scale computes
	// x *= alpha. Shapes must match exactly (no broadcasting).
	Axpy(alpha float64, x, dst *RawTensor)
	Scale(alpha float64, x *RawTensor)

	// Name identifies the backend in logs and error messages.
	Name() string
}
