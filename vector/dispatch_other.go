//go:build !amd64 && !arm64

package vector

func detect() (DispatchLevel, int) {
	return DispatchScalar, scalarBits
}
