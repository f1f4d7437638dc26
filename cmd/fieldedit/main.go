package main

import "fieldedit/cmd/fieldedit/cmd"

func main() {
	cmd.Execute()
}
