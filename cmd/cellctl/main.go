// Command cellctl demonstrates and scripts aliasing heap cells.
package main

func main() {
	execute()
}
