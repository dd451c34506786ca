// frename - a rename tool, like Finder, but cli
//
// frename renames every entry of one or more directories in one pass:
//
//	frename append -t _v2 photos        photos/a.jpg -> photos/a_v2.jpg
//	frename replace -f " " -t _ .       my file.txt  -> my_file.txt
//	frename format -f index -p before -c _ -n 001 .
//	frename case snake -r true .
//
// Errors are printed to standard output and exit with status 1.
package main

import (
	"fmt"
	"os"

	"github.com/alctny/frename/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
