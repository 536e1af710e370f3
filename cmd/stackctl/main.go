// Command stackctl exercises the nodestack container under a chosen
// allocation strategy.
package main

func main() {
	execute()
}
