package main

import (
	"fmt"
	"os"

	"github.com/garrettbslone/flux-core/internal/mini"
)

func main() {
	if err := mini.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
