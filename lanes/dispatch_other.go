//go:build !amd64 && !arm64

package lanes

func init() {
	// Other architectures have no detected capabilities and always fall back.
	applyConfig()
}
