// Command srixctl inspects and edits SRIX4K tag images through the cached
// tag layer.
package main

func main() {
	execute()
}
