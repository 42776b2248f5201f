//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of yee2d requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/fdtd`, or try ./cmd/fdtd-term or ./cmd/fdtd-sweep.")
	os.Exit(2)
}
