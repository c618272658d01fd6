// Command qccgen drives the AST construction and lowering pipeline
// against a JSON program description, for manual inspection and
// pipeline smoke-testing.
package main

func main() {
	execute()
}
