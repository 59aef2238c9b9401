package main

import (
	"os"

	"github.com/motcom/g/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()
	os.Exit(cmd.Execute(rootCmd, os.Stderr))
}
