package main

func main() {
	Execute() // initialize cobra commands
}
