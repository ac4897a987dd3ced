// Command mdscan prints the text elements a markdown scanner sees.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
