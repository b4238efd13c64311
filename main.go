package main

import "github.com/Taichi-iskw/transqa/cmd"

func main() {
	cmd.Execute()
}
