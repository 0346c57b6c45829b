// Command labsheet generates printable lab signature sheets and the
// matching summary attendance workbook from a Canvas roster export.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
