// Command perihelion plays Higher or Lower with the bodies of the Solar System.
package main

import "github.com/papapumpkin/perihelion/cmd"

func main() {
	cmd.Execute()
}
