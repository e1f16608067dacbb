package main

import "github.com/pverdi/omniassist/internal/cmd"

func main() {
	cmd.Execute()
}
