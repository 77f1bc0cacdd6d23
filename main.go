package main

import "next-target-mock/cmd"

// @title           Next-Target Mock API
// @version         1.0
// @description     Mock personnel backend for front-end development.
// @BasePath        /
func main() {
	cmd.Execute()
}
