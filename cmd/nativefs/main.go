// Command nativefs inspects and changes file metadata and symbolic links.
package main

import "github.com/jmgilman/go/native/internal/cli"

func main() {
	cli.Execute()
}
