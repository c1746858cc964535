package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BaizeAI/volume-loader/internal/cmd/volumeloader"
)

func main() {
	cmd := volumeloader.NewCommand()
	err := cmd.Execute()
	if err == nil {
		return
	}

	if errors.Is(err, volumeloader.ErrNotRestored) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Fprintf(os.Stderr, "failed to restore volume: %s\n", err)
	os.Exit(1)
}
