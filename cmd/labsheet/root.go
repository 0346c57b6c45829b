package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labsheet",
	Short: "Lab roster signature sheets from a Canvas export",
	Long: `labsheet turns a Canvas-exported class roster into printable
signature/attendance sheets: one PDF page per section, students shuffled
into numbered lab groups, plus a summary attendance workbook for data
entry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(rostersCmd)
	rootCmd.AddCommand(editConfigCmd)
	rootCmd.AddCommand(resetCmd)
}
