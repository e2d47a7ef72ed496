package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/fsimage/cmd/fsimage"
	"github.com/arthur-debert/fsimage/pkg/style"
)

func main() {
	rootCmd := fsimage.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
